package structure

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
)

// Module owns an ordered set of variables, an ordered set of struct
// declarations, and an ordered set of included modules. Include edges
// must be acyclic; that is enforced by the parser, not here.
type Module struct {
	filePath  string
	includes  []*Module
	structs   []Struct
	variables []Variable
	varIndex  map[string]int
}

// NewModule creates an empty module for the given source file path.
func NewModule(filePath string) *Module {
	return &Module{
		filePath: filePath,
		varIndex: map[string]int{},
	}
}

// FilePath returns the source file path the module was parsed from.
func (m *Module) FilePath() string {
	return m.filePath
}

// IsPalette reports whether the module is a palette declaration.
func (m *Module) IsPalette() bool {
	return strings.TrimPrefix(filepath.Ext(m.filePath), ".") == "palette"
}

// BaseName returns the name used for generated files and init entry
// points: "palette" for palette modules, "style_<name>" otherwise.
func (m *Module) BaseName() string {
	base := filepath.Base(m.filePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if m.IsPalette() {
		return "palette"
	}

	return "style_" + strcase.ToSnake(base)
}

// AddInclude appends a dependency module.
func (m *Module) AddInclude(included *Module) {
	m.includes = append(m.includes, included)
}

// AddStruct appends a struct declaration.
func (m *Module) AddStruct(s Struct) error {
	if _, ok := m.LocalStruct(s.Name); ok {
		return fmt.Errorf("duplicate struct %q", s.Name)
	}
	m.structs = append(m.structs, s)

	return nil
}

// AddVariable appends a variable declaration.
func (m *Module) AddVariable(v Variable) error {
	name := v.Name.Back()
	if _, ok := m.varIndex[name]; ok {
		return fmt.Errorf("duplicate variable %q", v.Name)
	}
	m.varIndex[name] = len(m.variables)
	m.variables = append(m.variables, v)

	return nil
}

func (m *Module) HasIncludes() bool  { return len(m.includes) != 0 }
func (m *Module) HasStructs() bool   { return len(m.structs) != 0 }
func (m *Module) HasVariables() bool { return len(m.variables) != 0 }

// Includes returns the included modules in declaration order.
func (m *Module) Includes() []*Module {
	return m.includes
}

// Structs returns the struct declarations in declaration order.
func (m *Module) Structs() []Struct {
	return m.structs
}

// Variables returns the variables in declaration order.
func (m *Module) Variables() []Variable {
	return m.variables
}

// LocalStruct finds a struct declared in this module itself.
func (m *Module) LocalStruct(name FullName) (Struct, bool) {
	for _, s := range m.structs {
		if s.Name.Back() == name.Back() {
			return s, true
		}
	}

	return Struct{}, false
}

// FindStruct finds a struct declared in this module or, recursively, in
// any included module.
func (m *Module) FindStruct(name FullName) (Struct, bool) {
	if s, ok := m.LocalStruct(name); ok {
		return s, true
	}
	for _, included := range m.includes {
		if s, ok := included.FindStruct(name); ok {
			return s, true
		}
	}

	return Struct{}, false
}

// LocalVariable finds a variable declared in this module itself.
func (m *Module) LocalVariable(name FullName) (Variable, bool) {
	if i, ok := m.varIndex[name.Back()]; ok {
		return m.variables[i], true
	}

	return Variable{}, false
}

// FindVariable finds a variable declared in this module or, recursively,
// in any included module.
func (m *Module) FindVariable(name FullName) (Variable, bool) {
	if v, ok := m.LocalVariable(name); ok {
		return v, true
	}
	for _, included := range m.includes {
		if v, ok := included.FindVariable(name); ok {
			return v, true
		}
	}

	return Variable{}, false
}
