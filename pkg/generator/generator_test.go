package generator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/generator"
	"github.com/stylegen-io/stylegen/pkg/parser"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

const styleInput = `
boxPadding: 12px;
boxShift: 12px;
smallPad: 8px;
negativePad: -12px;
boxFont: font(13px, "Open Sans");
boxTitle: "Title";
`

const paletteInput = `
windowBg: #ffffff;
windowFg: #000000;
windowBgOver: windowBg;
windowBgRipple: #e0e0e0 | windowBgOver;
windowShade: #11223344;
`

func generate(t *testing.T, input, fileName string) (string, string) {
	t.Helper()

	module, err := parser.Parse(input, fileName, parser.NewLoader())
	require.NoError(t, err)

	dir := t.TempDir()
	base := "style_basic"
	if module.IsPalette() {
		base = "palette"
	}
	g := generator.New(module, filepath.Join(dir, base))
	require.NoError(t, g.WriteHeader())
	require.NoError(t, g.WriteSource())

	header, err := os.ReadFile(filepath.Join(dir, base+".h"))
	require.NoError(t, err)
	source, err := os.ReadFile(filepath.Join(dir, base+".cpp"))
	require.NoError(t, err)

	return string(header), string(source)
}

func TestGenerateStyleModule(t *testing.T) {
	t.Parallel()

	header, source := generate(t, styleInput, "basic.style")

	assert.Contains(t, header, "#pragma once")
	assert.Contains(t, header, "// WARNING! All changes made in this file will be lost!")
	assert.Contains(t, header, "void init_style_basic();")
	assert.Contains(t, header, "extern const int &boxPadding;")
	assert.Contains(t, header, "extern const style::font &boxFont;")
	assert.Contains(t, header, "extern const std::string &boxTitle;")

	assert.Contains(t, source, "#include \"style_basic.h\"")
	assert.Contains(t, source, "Module_style_basic registrator;")

	// Both 12px uses share one constant; the negative one is separate.
	assert.Equal(t, 1, strings.Count(source, "int px12 = 12;"))
	assert.Contains(t, source, "int pxm12 = -12;")
	assert.Contains(t, source, "int px8 = 8;")
	assert.Contains(t, source, "int px13 = 13;")

	// Scale adjustment uses sign-preserving round half away from zero.
	assert.Contains(t, source, "case style::Scale125:")
	assert.Contains(t, source, "px8 = 10;")
	assert.Contains(t, source, "px12 = 15;")
	assert.Contains(t, source, "pxm12 = -15;")
	assert.Contains(t, source, "case style::Scale150:")
	assert.Contains(t, source, "px8 = 12;")
	assert.Contains(t, source, "case style::Scale200:")
	assert.Contains(t, source, "px8 = 16;")
	assert.Contains(t, source, "px13 = 26;")

	assert.Contains(t, source,
		`font1index = style::internal::registerFontFamily("Open Sans");`)

	assert.Contains(t, source, "void init_style_basic() {")
	assert.Contains(t, source, "\tinitPxValues();\n")
	assert.Contains(t, source, "\tinitFontFamilies();\n")
	assert.Contains(t, source, "_boxPadding = px12;")
	assert.Contains(t, source, "_negativePad = pxm12;")
	assert.Contains(t, source, "_boxFont = { px13, 0, font1index };")
	assert.Contains(t, source, `_boxTitle = std::string("Title");`)
	assert.Contains(t, source, `const int &boxPadding(_boxPadding);`)
}

func TestGeneratePaletteModule(t *testing.T) {
	t.Parallel()

	header, source := generate(t, paletteInput, "colors.palette")

	assert.Contains(t, header, "class palette {")
	assert.Contains(t, header, "static int32_t Checksum();")
	assert.Contains(t, header, "inline const color &windowBg() const { return _colors[0]; };")
	assert.Contains(t, header, "inline const color &windowShade() const { return _colors[4]; };")

	// Five colors, four bytes each.
	assert.Contains(t, source, "cache.size() != 20")
	assert.Contains(t, source, "int getPaletteIndex(std::string_view name)")

	// finalize() computes colors in declaration order, each naming its
	// fallback slot.
	assert.Contains(t, source, "compute(0, -1, {255, 255, 255, 255});")
	assert.Contains(t, source, "compute(1, -1, {0, 0, 0, 255});")
	assert.Contains(t, source, "compute(2, 0, {255, 255, 255, 255});")
	assert.Contains(t, source, "compute(3, 2, {224, 224, 224, 255});")
	assert.Contains(t, source, "compute(4, -1, {17, 34, 51, 68});")

	assert.Contains(t, source, "style::palette _palette;")
	assert.Contains(t, source, "const style::color &windowBg(_palette.windowBg());")
	assert.Contains(t, source, "_palette.finalize();")
}

func TestGenerateIconModule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	newTestIcon(t, dir, 10, 10, 20, 20)

	input := `
iconColor: #ff0000;
boxIcon: icon{ {"icon", iconColor, point(2px, 3px)} };
sizeIcon: icon{ {"size://24,16", iconColor, point(0px, 0px)} };
`
	module, err := parser.Parse(input, filepath.Join(dir, "icons.style"), parser.NewLoader())
	require.NoError(t, err)

	g := generator.New(module, filepath.Join(dir, "style_icons"))
	require.NoError(t, g.WriteHeader())
	require.NoError(t, g.WriteSource())

	data, err := os.ReadFile(filepath.Join(dir, "style_icons.cpp"))
	require.NoError(t, err)
	source := string(data)

	// First-seen collection order: the file mask, then the size mask.
	assert.Contains(t, source, "const unsigned char iconMask1Data[] = {")
	assert.Contains(t, source, "IconMask iconMask1(iconMask1Data);")
	assert.Contains(t, source, "const unsigned char iconMask2Data[] = {")
	assert.Contains(t, source, "IconMask iconMask2(iconMask2Data);")

	// The composed atlas is embedded as PNG bytes.
	assert.Contains(t, source, "0x89, 0x50, 0x4e, 0x47")
	// The size mask blob starts with its tag and carries both
	// dimensions big-endian.
	assert.Contains(t, source, "0x47, 0x45, 0x4e, 0x45, 0x52, 0x41, 0x54, 0x45")
	assert.Contains(t, source, "0x00, 0x00, 0x00, 0x18")
	assert.Contains(t, source, "0x00, 0x00, 0x00, 0x10")

	assert.Contains(t, source,
		"_boxIcon = { MonoIcon{ &iconMask1, st::iconColor.clone(), { px2, px3 } } };")
	assert.Contains(t, source,
		"_sizeIcon = { MonoIcon{ &iconMask2, st::iconColor.clone(), { px0, px0 } } };")
}

func TestGenerateBadSizeSpec(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"TrailingComponent": "size://24,24,junk",
		"MissingHeight":     "size://24",
		"ZeroWidth":         "size://0,5",
		"NegativeHeight":    "size://8,-5",
	}
	for name, spec := range tcs {
		spec := spec
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			input := "badIcon: icon{ {\"" + spec + "\", #ff0000, point(0px, 0px)} };\n"
			module, err := parser.Parse(input, filepath.Join(dir, "icons.style"), parser.NewLoader())
			require.NoError(t, err)

			g := generator.New(module, filepath.Join(dir, "style_icons"))
			require.NoError(t, g.WriteHeader())
			require.ErrorIs(t, g.WriteSource(), styerrors.ErrBadIcon)
		})
	}
}

func TestChecksumStability(t *testing.T) {
	t.Parallel()

	checksumOf := func(input string) int32 {
		module, err := parser.Parse(input, "colors.palette", parser.NewLoader())
		require.NoError(t, err)
		g := generator.New(module, filepath.Join(t.TempDir(), "palette"))
		sum, err := g.Checksum()
		require.NoError(t, err)

		return sum
	}

	first := checksumOf(paletteInput)
	second := checksumOf(paletteInput)
	assert.Equal(t, first, second)

	changed := checksumOf(`
windowBg: #fffffe;
windowFg: #000000;
windowBgOver: windowBg;
windowBgRipple: #e0e0e0 | windowBgOver;
windowShade: #11223344;
`)
	assert.NotEqual(t, first, changed)
}

func TestWriteSampleTheme(t *testing.T) {
	t.Parallel()

	module, err := parser.Parse(paletteInput, "colors.palette", parser.NewLoader())
	require.NoError(t, err)

	dir := t.TempDir()
	g := generator.New(module, filepath.Join(dir, "palette"))
	themePath := filepath.Join(dir, "colors.theme")
	require.NoError(t, g.WriteSampleTheme(themePath))

	content, err := os.ReadFile(themePath)
	require.NoError(t, err)
	theme := string(content)

	assert.Contains(t, theme, "windowBg: #ffffff;\n")
	assert.Contains(t, theme, "windowFg: #000000;\n")
	// Identical to its fallback: written as the bare fallback name.
	assert.Contains(t, theme, "windowBgOver: windowBg;\n")
	// Differs from its fallback: value plus a fallback comment.
	assert.Contains(t, theme, "windowBgRipple: #e0e0e0; // windowBgOver;\n")
	assert.Contains(t, theme, "windowShade: #11223344;\n")

	// Rewriting identical content leaves the file untouched.
	info, err := os.Stat(themePath)
	require.NoError(t, err)
	require.NoError(t, g.WriteSampleTheme(themePath))
	after, err := os.Stat(themePath)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
}
