package generator

import (
	"fmt"
	"strings"

	"github.com/stylegen-io/stylegen/pkg/output"
	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// paletteColorValue renders a color as lowercase hex, with the alpha
// channel appended only when it differs from 255.
func paletteColorValue(c structure.Color) string {
	result := fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
	if c.Alpha != 255 {
		result += fmt.Sprintf("%02x", c.Alpha)
	}

	return result
}

// SampleTheme renders the sample theme text: one line per color in
// declaration order.
func (g *Generator) SampleTheme() ([]byte, error) {
	if err := g.buildPaletteIndices(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(`//
// This is a sample theme file.
// It was generated from the '` + g.module.FilePath() + `' style file.
//
// To distribute a theme, bundle this file (named 'colors.theme')
// together with an optional background image named 'background'
// (not tiled) or 'tiled' (tiled), as .jpg or .png, into a .theme
// zip archive.
//

`)

	for _, variable := range g.module.Variables() {
		if variable.Value.Type().Tag != structure.TagColor {
			return nil, fmt.Errorf("%w: palette variable %q is not a color",
				styerrors.ErrInvalidType, variable.Name)
		}
		name := variable.Name.Back()
		colorString := paletteColorValue(variable.Value.Color())

		fallbackIndex := -1
		if fallback := colorFallbackName(variable.Value); fallback != "" {
			if i, ok := g.paletteIndices[fallback]; ok {
				fallbackIndex = i
			}
		}
		if fallbackIndex < 0 {
			fmt.Fprintf(&b, "%s: #%s;\n", name, colorString)

			continue
		}

		fallbackVariable, ok := g.module.FindVariable(
			structure.FullName{g.paletteNames[fallbackIndex]})
		if !ok || fallbackVariable.Value.Type().Tag != structure.TagColor {
			return nil, fmt.Errorf("%w: fallback of %q", styerrors.ErrUnknownName, name)
		}
		fallbackName := fallbackVariable.Name.Back()
		if colorString == paletteColorValue(fallbackVariable.Value.Color()) {
			fmt.Fprintf(&b, "%s: %s;\n", name, fallbackName)
		} else {
			fmt.Fprintf(&b, "%s: #%s; // %s;\n", name, colorString, fallbackName)
		}
	}

	return []byte(b.String()), nil
}

// WriteSampleTheme writes the sample theme text file. Writing is
// skipped when the target already holds identical content.
func (g *Generator) WriteSampleTheme(filePath string) error {
	theme, err := g.SampleTheme()
	if err != nil {
		return err
	}
	if _, err := output.WriteFileIfChanged(filePath, theme); err != nil {
		return err
	}

	return nil
}
