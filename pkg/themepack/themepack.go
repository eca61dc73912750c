package themepack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/stylegen-io/stylegen/pkg/output"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// ThemeFileName is the archive entry holding the palette text.
const ThemeFileName = "colors.theme"

// Options describes one theme pack.
type Options struct {
	// Theme is the sample theme text, stored as colors.theme.
	Theme []byte
	// Background is an optional .jpg or .png image path.
	Background string
	// Tiled stores the background under the tiling entry name.
	Tiled bool
}

// Write builds the .theme zip archive at path. The write is atomic;
// a failed build leaves no partial archive behind.
func Write(path string, opts Options) error {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	entry, err := w.Create(ThemeFileName)
	if err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWrite, err)
	}
	if _, err := entry.Write(opts.Theme); err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWrite, err)
	}

	if opts.Background != "" {
		if err := addBackground(w, opts.Background, opts.Tiled); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWrite, err)
	}

	return output.WriteFile(path, buf.Bytes())
}

func addBackground(w *zip.Writer, imagePath string, tiled bool) error {
	name, err := backgroundEntryName(imagePath, tiled)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrFileNotFound, err)
	}
	entry, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWrite, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWrite, err)
	}

	return nil
}

// backgroundEntryName maps the image to its in-archive name: the plain
// background entry, or the tiled one.
func backgroundEntryName(imagePath string, tiled bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(imagePath))
	if ext != ".jpg" && ext != ".png" {
		return "", fmt.Errorf("%w: background %q must be a .jpg or .png file",
			styerrors.ErrInvalidFormat, imagePath)
	}
	if tiled {
		return "tiled" + ext, nil
	}

	return "background" + ext, nil
}
