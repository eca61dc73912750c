package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// typeToString maps a value type to its generated storage type name.
func (g *Generator) typeToString(typ structure.Type) (string, error) {
	switch typ.Tag {
	case structure.TagInt, structure.TagPixels:
		return "int", nil
	case structure.TagDouble:
		return "double", nil
	case structure.TagString:
		return "std::string", nil
	case structure.TagColor:
		return "style::color", nil
	case structure.TagPoint:
		return "style::point", nil
	case structure.TagSize:
		return "style::size", nil
	case structure.TagCursor:
		return "style::cursor", nil
	case structure.TagAlign:
		return "style::align", nil
	case structure.TagMargins:
		return "style::margins", nil
	case structure.TagFont:
		return "style::font", nil
	case structure.TagIcon:
		return "style::icon", nil
	case structure.TagStruct:
		if _, ok := g.module.FindStruct(typ.Name); !ok {
			return "", fmt.Errorf("%w: %q", styerrors.ErrStructNotFound, typ.Name)
		}

		return "style::" + typ.Name.Back(), nil
	}

	return "", fmt.Errorf("%w: tag %d", styerrors.ErrInvalidType, typ.Tag)
}

// typeToDefaultValue maps a value type to the literal its storage is
// default-initialized with.
func (g *Generator) typeToDefaultValue(typ structure.Type) (string, error) {
	switch typ.Tag {
	case structure.TagInt, structure.TagPixels:
		return "0", nil
	case structure.TagDouble:
		return "0.", nil
	case structure.TagString:
		return "std::string()", nil
	case structure.TagColor, structure.TagFont, structure.TagIcon:
		return "{ style::Uninitialized }", nil
	case structure.TagPoint, structure.TagSize:
		return "{ 0, 0 }", nil
	case structure.TagCursor:
		return "style::cur_default", nil
	case structure.TagAlign:
		return "style::al_topleft", nil
	case structure.TagMargins:
		return "{ 0, 0, 0, 0 }", nil
	case structure.TagStruct:
		shape, ok := g.module.FindStruct(typ.Name)
		if !ok {
			return "", fmt.Errorf("%w: %q", styerrors.ErrStructNotFound, typ.Name)
		}
		fields := make([]string, 0, len(shape.Fields))
		for _, field := range shape.Fields {
			value, err := g.typeToDefaultValue(field.Type)
			if err != nil {
				return "", err
			}
			fields = append(fields, value)
		}

		return "{ " + strings.Join(fields, ", ") + " }", nil
	}

	return "", fmt.Errorf("%w: tag %d", styerrors.ErrInvalidType, typ.Tag)
}

// valueAssignmentCode renders the expression a variable is assigned at
// init time. Aliases become references by name, with an explicit deep
// copy for kinds that own backing storage.
func (g *Generator) valueAssignmentCode(value structure.Value) (string, error) {
	if copyOf := value.CopyOf(); len(copyOf) != 0 {
		result := "st::" + copyOf.Back()
		// Sharing backing storage between two declared names is not
		// allowed for colors and structs.
		if tag := value.Type().Tag; tag == structure.TagColor || tag == structure.TagStruct {
			result += ".clone()"
		}

		return result, nil
	}

	switch value.Type().Tag {
	case structure.TagInt:
		return strconv.Itoa(value.Int()), nil
	case structure.TagDouble:
		return strconv.FormatFloat(value.Double(), 'g', -1, 64), nil
	case structure.TagPixels:
		return pxValueName(value.Int()), nil
	case structure.TagString:
		return fmt.Sprintf("std::string(%s)", EncodedString(value.String())), nil
	case structure.TagColor:
		v := value.Color()

		return fmt.Sprintf("{ %d, %d, %d, %d }", v.Red, v.Green, v.Blue, v.Alpha), nil
	case structure.TagPoint:
		v := value.Point()

		return fmt.Sprintf("{ %s, %s }", pxValueName(v.X), pxValueName(v.Y)), nil
	case structure.TagSize:
		v := value.Size()

		return fmt.Sprintf("{ %s, %s }", pxValueName(v.Width), pxValueName(v.Height)), nil
	case structure.TagCursor:
		return "style::cur_" + value.String(), nil
	case structure.TagAlign:
		return "style::al_" + value.String(), nil
	case structure.TagMargins:
		v := value.Margins()

		return fmt.Sprintf("{ %s, %s, %s, %s }",
			pxValueName(v.Left), pxValueName(v.Top),
			pxValueName(v.Right), pxValueName(v.Bottom)), nil
	case structure.TagFont:
		v := value.Font()
		family := "0"
		if v.Family != "" {
			familyIndex, ok := g.fontFamilies[v.Family]
			if !ok {
				return "", fmt.Errorf("%w: %q", styerrors.ErrFamilyNotFound, v.Family)
			}
			family = fmt.Sprintf("font%dindex", familyIndex)
		}

		return fmt.Sprintf("{ %s, %d, %s }", pxValueName(v.Size), v.Flags, family), nil
	case structure.TagIcon:
		v := value.Icon()
		if len(v.Parts) == 0 {
			return "{}", nil
		}
		parts := make([]string, 0, len(v.Parts))
		for _, part := range v.Parts {
			maskIndex, ok := g.iconMasks[part.Filename]
			if !ok {
				return "", fmt.Errorf("%w: %q", styerrors.ErrMaskNotFound, part.Filename)
			}
			color, err := g.valueAssignmentCode(part.Color)
			if err != nil {
				return "", err
			}
			offset, err := g.valueAssignmentCode(part.Offset)
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("MonoIcon{ &iconMask%d, %s, %s }", maskIndex, color, offset))
		}

		return "{ " + strings.Join(parts, ", ") + " }", nil
	case structure.TagStruct:
		fields := value.Fields()
		if fields == nil {
			return "", fmt.Errorf("%w: %q has no fields", styerrors.ErrStructNotFound, value.Type().Name)
		}
		rendered := make([]string, 0, len(fields))
		for _, field := range fields {
			code, err := g.valueAssignmentCode(field.Variable.Value)
			if err != nil {
				return "", err
			}
			rendered = append(rendered, code)
		}

		return "{ " + strings.Join(rendered, ", ") + " }", nil
	}

	return "", fmt.Errorf("%w: tag %d", styerrors.ErrInvalidType, value.Type().Tag)
}
