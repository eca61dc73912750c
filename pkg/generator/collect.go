package generator

import (
	"fmt"

	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// collectUniqueValues walks every variable's value tree and populates
// the shared tables: distinct pixel values, font family indices, and
// icon mask indices. It must run before any assignment emission, which
// fails rather than guesses when an index is missing.
func (g *Generator) collectUniqueValues() error {
	fontFamilyIndex := 0
	iconMaskIndex := 0

	var collect func(variable structure.Variable) error
	collect = func(variable structure.Variable) error {
		value := variable.Value
		if value.IsCopy() {
			// An alias's resources were collected where the value was
			// first declared.
			return nil
		}

		switch value.Type().Tag {
		case structure.TagPixels:
			g.pxValues[value.Int()] = true
		case structure.TagPoint:
			v := value.Point()
			g.pxValues[v.X] = true
			g.pxValues[v.Y] = true
		case structure.TagSize:
			v := value.Size()
			g.pxValues[v.Width] = true
			g.pxValues[v.Height] = true
		case structure.TagMargins:
			v := value.Margins()
			g.pxValues[v.Left] = true
			g.pxValues[v.Top] = true
			g.pxValues[v.Right] = true
			g.pxValues[v.Bottom] = true
		case structure.TagFont:
			v := value.Font()
			g.pxValues[v.Size] = true
			if v.Family != "" {
				if _, ok := g.fontFamilies[v.Family]; !ok {
					fontFamilyIndex++
					g.fontFamilies[v.Family] = fontFamilyIndex
				}
			}
		case structure.TagIcon:
			for _, part := range value.Icon().Parts {
				if !part.Offset.IsCopy() {
					offset := part.Offset.Point()
					g.pxValues[offset.X] = true
					g.pxValues[offset.Y] = true
				}
				if _, ok := g.iconMasks[part.Filename]; !ok {
					iconMaskIndex++
					g.iconMasks[part.Filename] = iconMaskIndex
				}
			}
		case structure.TagStruct:
			fields := value.Fields()
			if fields == nil {
				return fmt.Errorf("%w: %q has no fields",
					styerrors.ErrStructNotFound, value.Type().Name)
			}
			for _, field := range fields {
				if err := collect(field.Variable); err != nil {
					return err
				}
			}
		}

		return nil
	}

	for _, variable := range g.module.Variables() {
		if err := collect(variable); err != nil {
			return err
		}
	}

	return nil
}
