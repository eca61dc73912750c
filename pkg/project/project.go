package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// Theme configures the optional theme pack built from a palette
// module's sample theme.
type Theme struct {
	// Output is the path of the .theme archive to write.
	Output string `yaml:"output"`
	// Background is an optional .jpg or .png bundled into the archive.
	Background string `yaml:"background,omitempty"`
	// Tiled stores the background under the tiling name.
	Tiled bool `yaml:"tiled,omitempty"`
}

// Config is the parsed project manifest.
type Config struct {
	// StyleFiles lists the .style and .palette files to compile, in
	// order.
	StyleFiles []string `yaml:"styleFiles"`
	// IncludePaths lists directories searched for included modules.
	// The directory of each style file is always searched first.
	IncludePaths []string `yaml:"includePaths,omitempty"`
	// OutputDir receives the generated file pairs. Defaults to the
	// manifest's own directory.
	OutputDir string `yaml:"outputDir,omitempty"`
	// Theme, when set, requests a theme pack. The manifest must then
	// include exactly one .palette file.
	Theme *Theme `yaml:"theme,omitempty"`
}

// Load reads, parses, and validates the manifest at path. Relative
// paths inside the manifest are resolved against the manifest's
// directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", styerrors.ErrFileNotFound, err)
	}

	c := &Config{}
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", styerrors.ErrInvalidManifest, path, err)
	}

	baseDir := filepath.Dir(path)
	for i, styleFile := range c.StyleFiles {
		c.StyleFiles[i] = resolve(baseDir, styleFile)
	}
	for i, includePath := range c.IncludePaths {
		c.IncludePaths[i] = resolve(baseDir, includePath)
	}
	if c.OutputDir == "" {
		c.OutputDir = baseDir
	} else {
		c.OutputDir = resolve(baseDir, c.OutputDir)
	}
	if c.Theme != nil {
		c.Theme.Output = resolve(baseDir, c.Theme.Output)
		if c.Theme.Background != "" {
			c.Theme.Background = resolve(baseDir, c.Theme.Background)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", styerrors.ErrInvalidManifest, path, err)
	}

	return c, nil
}

// Validate reports every manifest problem at once.
func (c *Config) Validate() error {
	var merr error

	if len(c.StyleFiles) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("no style files listed"))
	}
	palettes := 0
	for _, styleFile := range c.StyleFiles {
		switch filepath.Ext(styleFile) {
		case ".style":
		case ".palette":
			palettes++
		default:
			merr = multierror.Append(merr,
				fmt.Errorf("%q is neither a .style nor a .palette file", styleFile))
		}
	}
	if palettes > 1 {
		merr = multierror.Append(merr,
			fmt.Errorf("%d palette files listed, at most one is allowed", palettes))
	}
	if c.Theme != nil {
		if c.Theme.Output == "" {
			merr = multierror.Append(merr, fmt.Errorf("theme output path is empty"))
		}
		if palettes == 0 {
			merr = multierror.Append(merr,
				fmt.Errorf("theme requested but no palette file is listed"))
		}
	}

	return merr
}

// PaletteFile returns the single palette file, or "" when the manifest
// has none.
func (c *Config) PaletteFile() string {
	for _, styleFile := range c.StyleFiles {
		if filepath.Ext(styleFile) == ".palette" {
			return styleFile
		}
	}

	return ""
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}
