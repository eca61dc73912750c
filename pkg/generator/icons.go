package generator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/stylegen-io/stylegen/pkg/modifiers"
	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// sizeSpecPrefix marks a mask declared by dimensions only, with no
// bitmap: "size://W,H".
const sizeSpecPrefix = "size://"

// iconMaskData produces the embedded byte blob for one mask file spec:
// a tagged width/height blob for pseudo-paths, a composed multi-
// resolution atlas otherwise. File paths are resolved relative to the
// module's own directory.
func (g *Generator) iconMaskData(spec string) ([]byte, error) {
	if strings.HasPrefix(spec, sizeSpecPrefix) {
		width, height, err := parseSizeSpec(spec)
		if err != nil {
			return nil, err
		}

		return SizeMask(width, height), nil
	}

	filePath, modifierNames := splitFileSpec(spec)
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(filepath.Dir(g.module.FilePath()), filePath)
	}

	return ComposeAtlas(filePath, modifierNames)
}

// splitFileSpec separates "path/name-mod1-mod2" into the path and its
// modifier names.
func splitFileSpec(spec string) (string, []string) {
	parts := strings.Split(spec, "-")

	return parts[0], parts[1:]
}

func parseSizeSpec(spec string) (int, int, error) {
	dimensions := strings.Split(strings.TrimPrefix(spec, sizeSpecPrefix), ",")
	if len(dimensions) != 2 {
		return 0, 0, fmt.Errorf("%w: bad dimensions in %q", styerrors.ErrBadIcon, spec)
	}
	width, err := strconv.Atoi(dimensions[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: bad dimensions in %q", styerrors.ErrBadIcon, spec)
	}
	height, err := strconv.Atoi(dimensions[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: bad dimensions in %q", styerrors.ErrBadIcon, spec)
	}

	return width, height, nil
}

// SizeMask encodes a blank W×H mask declaration: a "GENERATE:SIZE:" tag
// followed by both dimensions as big-endian int32.
func SizeMask(width, height int) []byte {
	var buf bytes.Buffer
	buf.WriteString("GENERATE:SIZE:")
	_ = binary.Write(&buf, binary.BigEndian, int32(width))
	_ = binary.Write(&buf, binary.BigEndian, int32(height))

	return buf.Bytes()
}

// ComposeAtlas loads <path>.png and <path>@2x.png, applies the named
// modifiers to both in order, derives 125% and 150% variants from the
// 2x source, and returns the composed atlas encoded as PNG.
//
// The canvas is (w200+w100)×(h200+h150), pre-filled opaque black and
// blitted with source-replacing composition, so padding content is
// deterministic:
//
//	200% at (0,0),      100% at (w200,0),
//	150% at (0,h200),   125% at (w150,h200).
func ComposeAtlas(filePath string, modifierNames []string) ([]byte, error) {
	base, baseFormat, err := loadPng(filePath + ".png")
	if err != nil {
		return nil, err
	}
	double, doubleFormat, err := loadPng(filePath + "@2x.png")
	if err != nil {
		return nil, err
	}
	if baseFormat != doubleFormat {
		return nil, fmt.Errorf("%w: %s: 1x and 2x have different formats (%s, %s)",
			styerrors.ErrBadIcon, filePath, baseFormat, doubleFormat)
	}
	baseSize := base.Bounds().Size()
	doubleSize := double.Bounds().Size()
	if baseSize.X*2 != doubleSize.X || baseSize.Y*2 != doubleSize.Y {
		return nil, fmt.Errorf("%w: %s: bad sizes, 1x: %dx%d, 2x: %dx%d",
			styerrors.ErrBadIcon, filePath,
			baseSize.X, baseSize.Y, doubleSize.X, doubleSize.Y)
	}

	for _, name := range modifierNames {
		modifier, ok := modifiers.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", styerrors.ErrModifierNotFound, name)
		}
		modifier(base, double)
	}

	scaled125 := resample(double, structure.PxAdjust(baseSize.X, 125), structure.PxAdjust(baseSize.Y, 125))
	scaled150 := resample(double, structure.PxAdjust(baseSize.X, 150), structure.PxAdjust(baseSize.Y, 150))

	composed := image.NewNRGBA(image.Rect(0, 0,
		doubleSize.X+baseSize.X,
		doubleSize.Y+scaled150.Bounds().Dy()))
	draw.Draw(composed, composed.Bounds(),
		image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)
	blit(composed, double, 0, 0)
	blit(composed, base, doubleSize.X, 0)
	blit(composed, scaled150, 0, doubleSize.Y)
	blit(composed, scaled125, scaled150.Bounds().Dx(), doubleSize.Y)

	var buf bytes.Buffer
	if err := png.Encode(&buf, composed); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", styerrors.ErrBadIcon, filePath, err)
	}

	return buf.Bytes(), nil
}

// loadPng decodes a PNG into NRGBA, returning the decoded pixel format
// name for the 1x/2x consistency check.
func loadPng(path string) (*image.NRGBA, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", styerrors.ErrFileNotFound, err)
	}
	defer func() {
		_ = file.Close()
	}()

	decoded, err := png.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", styerrors.ErrBadIcon, path, err)
	}

	result := image.NewNRGBA(image.Rect(0, 0, decoded.Bounds().Dx(), decoded.Bounds().Dy()))
	draw.Draw(result, result.Bounds(), decoded, decoded.Bounds().Min, draw.Src)

	return result, fmt.Sprintf("%T", decoded), nil
}

// resample derives a variant via high-quality linear resampling.
func resample(src *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst
}

func blit(dst *image.NRGBA, src *image.NRGBA, x, y int) {
	bounds := src.Bounds()
	target := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(dst, target, src, bounds.Min, draw.Src)
}
