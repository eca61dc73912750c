package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stylegen-io/stylegen/pkg/cppfile"
	"github.com/stylegen-io/stylegen/pkg/structure"
)

// Generator produces the generated declarations/definitions pair (and,
// for palette modules, the sample theme) for one module. It is built for
// a single generation run and not reused.
type Generator struct {
	module   *structure.Module
	basePath string
	baseName string

	header *cppfile.File
	source *cppfile.File

	pxValues     map[int]bool
	fontFamilies map[string]int
	iconMasks    map[string]int

	paletteIndices map[string]int
	paletteNames   []string
}

// New creates a generator writing <destBasePath>.h/.cpp for module.
func New(module *structure.Module, destBasePath string) *Generator {
	return &Generator{
		module:         module,
		basePath:       destBasePath,
		baseName:       filepath.Base(destBasePath),
		pxValues:       map[int]bool{},
		fontFamilies:   map[string]int{},
		iconMasks:      map[string]int{},
		paletteIndices: map[string]int{},
	}
}

// WriteHeader generates the declarations file.
func (g *Generator) WriteHeader() error {
	g.header = cppfile.NewHeader(g.basePath+".h", g.module.FilePath())
	g.header.Include("style/style_core.h").Newline()

	if err := g.writeHeaderStyleNamespace(); err != nil {
		return err
	}
	if err := g.writeRefsDeclarations(); err != nil {
		return err
	}

	return g.header.Finalize()
}

// WriteSource generates the definitions file, including the collected
// shared tables, icon mask data, and (for palettes) the palette
// implementation.
func (g *Generator) WriteSource() error {
	g.source = cppfile.New(g.basePath+".cpp", g.module.FilePath())
	g.source.Include(g.baseName + ".h")
	g.writeIncludesInSource()
	g.source.Newline()

	if g.module.HasVariables() {
		g.source.PushNamespace("").Newline()
		g.writeModuleRegistrator()
		if g.module.IsPalette() {
			g.source.Newline().WriteString("style::palette _palette;\n")
		} else if err := g.writeVariableDefinitions(); err != nil {
			return err
		}
		g.source.Newline().PopNamespace()

		g.source.Newline().PushNamespace("st")
		if err := g.writeRefsDefinition(); err != nil {
			return err
		}
		g.source.PopNamespace().Newline().PushNamespace("style")

		if g.module.IsPalette() {
			if err := g.writePaletteSource(); err != nil {
				return err
			}
		}
		g.source.PushNamespace("internal").Newline()
		if err := g.writeVariableInit(); err != nil {
			return err
		}
		g.source.PopNamespace().PopNamespace()
	}

	return g.source.Finalize()
}

func (g *Generator) writeModuleRegistrator() {
	g.source.Printf(`bool inited = false;

class Module_%[1]s : public style::internal::ModuleBase {
public:
	Module_%[1]s() { style::internal::registerModule(this); }
	~Module_%[1]s() { style::internal::unregisterModule(this); }

	void start() override {
		style::internal::init_%[1]s();
	}
	void stop() override {
	}
};
Module_%[1]s registrator;
`, g.baseName)
}

func (g *Generator) writeHeaderStyleNamespace() error {
	if !g.module.HasStructs() && !g.module.HasVariables() {
		return nil
	}
	g.header.PushNamespace("style")

	if g.module.HasVariables() {
		g.header.PushNamespace("internal").Newline()
		g.header.Printf("void init_%s();\n\n", g.baseName)
		g.header.PopNamespace()
	}
	wroteForward := g.writeStructsForwardDeclarations()
	if g.module.HasStructs() {
		if !wroteForward {
			g.header.Newline()
		}
		if err := g.writeStructsDefinitions(); err != nil {
			return err
		}
	} else if g.module.IsPalette() {
		if !wroteForward {
			g.header.Newline()
		}
		if err := g.writePaletteHeader(); err != nil {
			return err
		}
	}
	g.header.PopNamespace().Newline()

	return nil
}

// writeStructsForwardDeclarations declares struct types used by this
// module's variables but defined in an included module. It reports
// whether any declaration was written.
func (g *Generator) writeStructsForwardDeclarations() bool {
	var external []string
	seen := map[string]bool{}
	for _, variable := range g.module.Variables() {
		typ := variable.Value.Type()
		if typ.Tag != structure.TagStruct {
			continue
		}
		if _, ok := g.module.LocalStruct(typ.Name); ok {
			continue
		}
		if !seen[typ.Name.Back()] {
			seen[typ.Name.Back()] = true
			external = append(external, typ.Name.Back())
		}
	}
	if len(external) == 0 {
		return false
	}

	g.header.Newline()
	for _, name := range external {
		g.header.Printf("struct %s;\n", name)
	}
	g.header.Newline()

	return true
}

func (g *Generator) writeStructsDefinitions() error {
	for _, s := range g.module.Structs() {
		clones := make([]string, 0, len(s.Fields))
		for _, field := range s.Fields {
			clone := field.Name.Back()
			if field.Type.Tag == structure.TagColor || field.Type.Tag == structure.TagStruct {
				clone += ".clone()"
			}
			clones = append(clones, clone)
		}
		g.header.Printf("struct %[1]s {\n\t%[1]s clone() const {\n\t\treturn { %[2]s };\n\t}\n",
			s.Name.Back(), strings.Join(clones, ", "))
		if len(s.Fields) != 0 {
			g.header.Newline()
		}
		for _, field := range s.Fields {
			typ, err := g.typeToString(field.Type)
			if err != nil {
				return err
			}
			g.header.Printf("\t%s %s;\n", typ, field.Name.Back())
		}
		g.header.WriteString("};\n\n")
	}

	return nil
}

func (g *Generator) writeRefsDeclarations() error {
	if !g.module.HasVariables() {
		return nil
	}
	g.header.PushNamespace("st")
	for _, variable := range g.module.Variables() {
		typ, err := g.typeToString(variable.Value.Type())
		if err != nil {
			return fmt.Errorf("variable %q: %w", variable.Name, err)
		}
		g.header.Printf("extern const %s &%s;\n", typ, variable.Name.Back())
	}
	g.header.PopNamespace()

	return nil
}

func (g *Generator) writeIncludesInSource() {
	for _, included := range g.module.Includes() {
		g.source.Include(included.BaseName() + ".h")
	}
}

func (g *Generator) writeVariableDefinitions() error {
	g.source.Newline()
	for _, variable := range g.module.Variables() {
		typ, err := g.typeToString(variable.Value.Type())
		if err != nil {
			return fmt.Errorf("variable %q: %w", variable.Name, err)
		}
		def, err := g.typeToDefaultValue(variable.Value.Type())
		if err != nil {
			return fmt.Errorf("variable %q: %w", variable.Name, err)
		}
		g.source.Printf("%s _%s = %s;\n", typ, variable.Name.Back(), def)
	}

	return nil
}

func (g *Generator) writeRefsDefinition() error {
	for _, variable := range g.module.Variables() {
		typ, err := g.typeToString(variable.Value.Type())
		if err != nil {
			return fmt.Errorf("variable %q: %w", variable.Name, err)
		}
		name := variable.Name.Back()
		if g.module.IsPalette() {
			g.source.Printf("const %s &%s(_palette.%s());\n", typ, name, name)
		} else {
			g.source.Printf("const %s &%s(_%s);\n", typ, name, name)
		}
	}

	return nil
}

func (g *Generator) writeVariableInit() error {
	if err := g.collectUniqueValues(); err != nil {
		return err
	}
	hasUnique := len(g.pxValues) != 0 || len(g.fontFamilies) != 0 || len(g.iconMasks) != 0
	if hasUnique {
		g.source.PushNamespace("")
		g.writePxValuesInit()
		g.writeFontFamiliesInit()
		if err := g.writeIconValues(); err != nil {
			return err
		}
		g.source.PopNamespace().Newline()
	}

	g.source.Printf("void init_%s() {\n\tif (inited) return;\n\tinited = true;\n\n", g.baseName)

	wroteInclude := false
	for _, included := range g.module.Includes() {
		if included.HasVariables() {
			g.source.Printf("\tinit_%s();\n", included.BaseName())
			wroteInclude = true
		}
	}
	if wroteInclude {
		g.source.Newline()
	}

	if len(g.pxValues) != 0 || len(g.fontFamilies) != 0 {
		if len(g.pxValues) != 0 {
			g.source.WriteString("\tinitPxValues();\n")
		}
		if len(g.fontFamilies) != 0 {
			g.source.WriteString("\tinitFontFamilies();\n")
		}
		g.source.Newline()
	}

	if g.module.IsPalette() {
		g.source.WriteString("\t_palette.finalize();\n")
	} else {
		for _, variable := range g.module.Variables() {
			value, err := g.valueAssignmentCode(variable.Value)
			if err != nil {
				return fmt.Errorf("variable %q: %w", variable.Name, err)
			}
			g.source.Printf("\t_%s = %s;\n", variable.Name.Back(), value)
		}
	}
	g.source.WriteString("}\n\n")

	return nil
}

func (g *Generator) writePxValuesInit() {
	if len(g.pxValues) == 0 {
		return
	}

	values := make([]int, 0, len(g.pxValues))
	for value := range g.pxValues {
		values = append(values, value)
	}
	sort.Ints(values)

	for _, value := range values {
		g.source.Printf("int %s = %d;\n", pxValueName(value), value)
	}
	g.source.WriteString("void initPxValues() {\n\tif (style::Retina()) return;\n\n\tswitch (style::CurrentScale()) {\n")
	for i := 1; i < len(structure.Scales); i++ {
		g.source.Printf("\tcase %s:\n", structure.ScaleNames[i])
		for _, value := range values {
			adjusted := structure.PxAdjust(value, structure.Scales[i])
			if adjusted != value {
				g.source.Printf("\t\t%s = %d;\n", pxValueName(value), adjusted)
			}
		}
		g.source.WriteString("\t\tbreak;\n")
	}
	g.source.WriteString("\t}\n}\n\n")
}

func (g *Generator) writeFontFamiliesInit() {
	if len(g.fontFamilies) == 0 {
		return
	}

	families := make([]string, 0, len(g.fontFamilies))
	for family := range g.fontFamilies {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		g.source.Printf("int font%dindex;\n", g.fontFamilies[family])
	}
	g.source.WriteString("void initFontFamilies() {\n")
	for _, family := range families {
		g.source.Printf("\tfont%dindex = style::internal::registerFontFamily(%s);\n",
			g.fontFamilies[family], EncodedString(family))
	}
	g.source.WriteString("}\n\n")
}

func (g *Generator) writeIconValues() error {
	if len(g.iconMasks) == 0 {
		return nil
	}

	specs := make([]string, 0, len(g.iconMasks))
	for spec := range g.iconMasks {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, spec := range specs {
		maskData, err := g.iconMaskData(spec)
		if err != nil {
			return err
		}
		index := g.iconMasks[spec]
		slog.Debug("composed icon mask",
			slog.String("spec", spec),
			slog.Int("index", index),
			slog.Int("bytes", len(maskData)))
		g.source.Printf("const unsigned char iconMask%dData[] = %s;\n", index, BinaryArray(maskData))
		g.source.Printf("IconMask iconMask%d(iconMask%dData);\n\n", index, index)
	}

	return nil
}
