package generator

import (
	"fmt"
	"hash/crc32"

	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// buildPaletteIndices assigns every color variable its palette index in
// declaration order. The ordering fixes the binary cache layout, so it
// must be stable across runs.
func (g *Generator) buildPaletteIndices() error {
	if len(g.paletteNames) != 0 {
		return nil
	}
	for i, variable := range g.module.Variables() {
		if variable.Value.Type().Tag != structure.TagColor {
			return fmt.Errorf("%w: palette variable %q is not a color",
				styerrors.ErrInvalidType, variable.Name)
		}
		name := variable.Name.Back()
		g.paletteIndices[name] = i
		g.paletteNames = append(g.paletteNames, name)
	}

	return nil
}

// colorFallbackName returns the name a color inherits from: the alias
// target for copies, the declared fallback otherwise.
func colorFallbackName(value structure.Value) string {
	if copyOf := value.CopyOf(); len(copyOf) != 0 {
		return copyOf.Back()
	}

	return value.Color().Fallback
}

// Checksum computes the CRC-32 digest over the serialized palette
// declaration. Identical declarations always produce identical sums;
// any literal change produces a different one.
func (g *Generator) Checksum() (int32, error) {
	var serialized []byte
	for _, variable := range g.module.Variables() {
		code, err := g.valueAssignmentCode(variable.Value)
		if err != nil {
			return 0, err
		}
		serialized = append(serialized, '&')
		serialized = append(serialized, variable.Name.Back()...)
		serialized = append(serialized, ':')
		serialized = append(serialized, code...)
	}

	return int32(crc32.ChecksumIEEE(serialized)), nil
}

func (g *Generator) writePaletteHeader() error {
	if err := g.buildPaletteIndices(); err != nil {
		return err
	}
	count := len(g.paletteNames)

	g.header.WriteString(`class palette {
public:
	palette() = default;
	palette(const palette &other) = delete;

	std::string save() const;
	bool load(const std::string &cache);
	bool setColor(std::string_view name, unsigned char r, unsigned char g, unsigned char b, unsigned char a);
	bool setColor(std::string_view name, std::string_view from);

	// Created not inited, should be finalized before usage.
	void finalize();

`)
	for index, name := range g.paletteNames {
		g.header.Printf("\tinline const color &%s() const { return _colors[%d]; };\n", name, index)
	}

	g.header.Printf(`
	palette &operator=(const palette &other) {
		auto wasReady = _ready;
		for (int i = 0; i != %[1]d; ++i) {
			if (other._status[i] == Status::Loaded) {
				if (_status[i] == Status::Initial) {
					new (data(i)) internal::ColorData(*other.data(i));
				} else {
					*data(i) = *other.data(i);
				}
				_status[i] = Status::Loaded;
			} else if (_status[i] != Status::Initial) {
				data(i)->~ColorData();
				_status[i] = Status::Initial;
				_ready = false;
			}
		}
		if (wasReady && !_ready) {
			finalize();
		}
		return *this;
	}

	static int32_t Checksum();

	~palette() {
		for (int i = 0; i != %[1]d; ++i) {
			if (_status[i] != Status::Initial) {
				data(i)->~ColorData();
			}
		}
	}

private:
	struct TempColorData { unsigned char r, g, b, a; };
	void compute(int index, int fallbackIndex, TempColorData value) {
		if (_status[index] == Status::Initial) {
			if (fallbackIndex >= 0 && _status[fallbackIndex] == Status::Loaded) {
				_status[index] = Status::Loaded;
				new (data(index)) internal::ColorData(*data(fallbackIndex));
			} else {
				_status[index] = Status::Created;
				new (data(index)) internal::ColorData(value.r, value.g, value.b, value.a);
			}
		}
	}

	internal::ColorData *data(int index) {
		return reinterpret_cast<internal::ColorData*>(_data) + index;
	}

	const internal::ColorData *data(int index) const {
		return reinterpret_cast<const internal::ColorData*>(_data) + index;
	}

	void setData(int index, const internal::ColorData &value) {
		if (_status[index] == Status::Initial) {
			new (data(index)) internal::ColorData(value);
		} else {
			*data(index) = value;
		}
		_status[index] = Status::Loaded;
	}

	enum class Status {
		Initial,
		Created,
		Loaded,
	};

	alignas(alignof(internal::ColorData)) char _data[sizeof(internal::ColorData) * %[1]d];

	color _colors[%[1]d] = {
`, count)
	for index := range g.paletteNames {
		g.header.Printf("\t\tdata(%d),\n", index)
	}
	g.header.Printf(`	};
	Status _status[%d] = { Status::Initial };
	bool _ready = false;

};

namespace main_palette {

std::string save();
bool load(const std::string &cache);
bool setColor(std::string_view name, unsigned char r, unsigned char g, unsigned char b, unsigned char a);
bool setColor(std::string_view name, std::string_view from);
void apply(const palette &other);

} // namespace main_palette
`, count)
	g.header.Newline()

	return nil
}

func (g *Generator) writePaletteSource() error {
	if err := g.buildPaletteIndices(); err != nil {
		return err
	}
	count := len(g.paletteNames)

	g.source.Newline()
	g.source.WriteString("void palette::finalize() {\n\tif (_ready) return;\n\t_ready = true;\n\n")
	for index, variable := range g.module.Variables() {
		color := variable.Value.Color()
		fallbackIndex := -1
		if fallback := colorFallbackName(variable.Value); fallback != "" {
			if i, ok := g.paletteIndices[fallback]; ok && i < index {
				fallbackIndex = i
			}
		}
		g.source.Printf("\tcompute(%d, %d, {%d, %d, %d, %d});\n",
			index, fallbackIndex, color.Red, color.Green, color.Blue, color.Alpha)
	}
	checksum, err := g.Checksum()
	if err != nil {
		return err
	}
	g.source.Printf("}\n\nint32_t palette::Checksum() {\n\treturn %d;\n}\n", checksum)

	g.source.Newline().PushNamespace("").Newline()
	g.source.WriteString(BuildMatcher(g.paletteIndices).EmitCpp("getPaletteIndex"))
	g.source.Newline().PopNamespace().Newline()

	g.source.Printf(`std::string palette::save() const {
	if (!_ready) const_cast<palette*>(this)->finalize();

	auto result = std::string(%[1]d, char(0));
	for (auto i = 0, index = 0; i != %[2]d; ++i) {
		result[index++] = static_cast<char>(data(i)->c.red());
		result[index++] = static_cast<char>(data(i)->c.green());
		result[index++] = static_cast<char>(data(i)->c.blue());
		result[index++] = static_cast<char>(data(i)->c.alpha());
	}
	return result;
}

bool palette::load(const std::string &cache) {
	if (cache.size() != %[1]d) return false;

	auto p = reinterpret_cast<const unsigned char*>(cache.data());
	for (auto i = 0; i != %[2]d; ++i) {
		setData(i, { p[i * 4 + 0], p[i * 4 + 1], p[i * 4 + 2], p[i * 4 + 3] });
	}
	return true;
}

bool palette::setColor(std::string_view name, unsigned char r, unsigned char g, unsigned char b, unsigned char a) {
	auto index = getPaletteIndex(name);
	if (index >= 0) {
		setData(index, { r, g, b, a });
		return true;
	}
	return false;
}

bool palette::setColor(std::string_view name, std::string_view from) {
	auto nameIndex = getPaletteIndex(name);
	auto fromIndex = getPaletteIndex(from);
	if (nameIndex >= 0 && fromIndex >= 0 && _status[fromIndex] == Status::Loaded) {
		setData(nameIndex, *data(fromIndex));
		return true;
	}
	return false;
}

namespace main_palette {

std::string save() {
	return _palette.save();
}

bool load(const std::string &cache) {
	if (_palette.load(cache)) {
		style::internal::resetIcons();
		return true;
	}
	return false;
}

bool setColor(std::string_view name, unsigned char r, unsigned char g, unsigned char b, unsigned char a) {
	return _palette.setColor(name, r, g, b, a);
}

bool setColor(std::string_view name, std::string_view from) {
	return _palette.setColor(name, from);
}

void apply(const palette &other) {
	_palette = other;
	style::internal::resetIcons();
}

} // namespace main_palette

`, count*4, count)

	return nil
}
