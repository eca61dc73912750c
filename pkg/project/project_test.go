package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/project"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stylegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
styleFiles:
  - colors.palette
  - basic.style
includePaths:
  - shared
outputDir: gen
theme:
  output: out/day.theme
  background: assets/bg.jpg
  tiled: true
`)
	baseDir := filepath.Dir(path)

	c, err := project.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(baseDir, "colors.palette"),
		filepath.Join(baseDir, "basic.style"),
	}, c.StyleFiles)
	assert.Equal(t, []string{filepath.Join(baseDir, "shared")}, c.IncludePaths)
	assert.Equal(t, filepath.Join(baseDir, "gen"), c.OutputDir)
	require.NotNil(t, c.Theme)
	assert.Equal(t, filepath.Join(baseDir, "out/day.theme"), c.Theme.Output)
	assert.Equal(t, filepath.Join(baseDir, "assets/bg.jpg"), c.Theme.Background)
	assert.True(t, c.Theme.Tiled)
	assert.Equal(t, filepath.Join(baseDir, "colors.palette"), c.PaletteFile())
}

func TestLoadDefaultsOutputDir(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "styleFiles:\n  - basic.style\n")

	c, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(path), c.OutputDir)
	assert.Empty(t, c.PaletteFile())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		content string
		wantIn  string
	}{
		"Empty": {
			content: "styleFiles: []\n",
			wantIn:  "no style files",
		},
		"UnknownExtension": {
			content: "styleFiles:\n  - basic.txt\n",
			wantIn:  "neither a .style nor a .palette",
		},
		"TwoPalettes": {
			content: "styleFiles:\n  - day.palette\n  - night.palette\n",
			wantIn:  "at most one",
		},
		"ThemeWithoutPalette": {
			content: "styleFiles:\n  - basic.style\ntheme:\n  output: day.theme\n",
			wantIn:  "no palette file",
		},
		"UnknownField": {
			content: "styleFiles:\n  - basic.style\nbogus: true\n",
			wantIn:  "bogus",
		},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := project.Load(writeManifest(t, tc.content))
			require.ErrorIs(t, err, styerrors.ErrInvalidManifest)
			assert.Contains(t, err.Error(), tc.wantIn)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := project.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, styerrors.ErrFileNotFound)
}

func TestValidateAggregates(t *testing.T) {
	t.Parallel()

	c := &project.Config{
		StyleFiles: []string{"a.txt", "b.palette", "c.palette"},
		Theme:      &project.Theme{},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.txt")
	assert.Contains(t, err.Error(), "at most one")
	assert.Contains(t, err.Error(), "theme output path is empty")
}
