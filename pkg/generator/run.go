package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/stylegen-io/stylegen/pkg/parser"
	"github.com/stylegen-io/stylegen/pkg/project"
	"github.com/stylegen-io/stylegen/pkg/themepack"
)

// RunProject compiles every style file in the manifest into its
// generated pair under the output directory. Palette modules also get
// their sample theme written, and the theme pack when one is
// configured.
func RunProject(c *project.Config) error {
	for _, styleFile := range c.StyleFiles {
		loader := parser.NewLoader(
			append([]string{filepath.Dir(styleFile)}, c.IncludePaths...)...)
		module, err := loader.Load(styleFile)
		if err != nil {
			return err
		}

		g := New(module, filepath.Join(c.OutputDir, module.BaseName()))
		if err := g.WriteHeader(); err != nil {
			return fmt.Errorf("%s: %w", styleFile, err)
		}
		if err := g.WriteSource(); err != nil {
			return fmt.Errorf("%s: %w", styleFile, err)
		}
		slog.Info("generated module",
			slog.String("source", styleFile),
			slog.String("name", module.BaseName()))

		if !module.IsPalette() {
			continue
		}
		if err := g.WriteSampleTheme(
			filepath.Join(c.OutputDir, themepack.ThemeFileName)); err != nil {
			return fmt.Errorf("%s: %w", styleFile, err)
		}
		if c.Theme == nil {
			continue
		}
		theme, err := g.SampleTheme()
		if err != nil {
			return fmt.Errorf("%s: %w", styleFile, err)
		}
		if err := themepack.Write(c.Theme.Output, themepack.Options{
			Theme:      theme,
			Background: c.Theme.Background,
			Tiled:      c.Theme.Tiled,
		}); err != nil {
			return err
		}
		slog.Info("wrote theme pack", slog.String("path", c.Theme.Output))
	}

	return nil
}
