package modifiers

import "image"

// Modifier mutates a base and double-resolution image pair in place.
type Modifier func(base, double *image.NRGBA)

var registry = map[string]Modifier{
	"invert":          applyToBoth(invert),
	"flip_horizontal": applyToBoth(flipHorizontal),
	"flip_vertical":   applyToBoth(flipVertical),
}

// Get returns the modifier registered under name.
func Get(name string) (Modifier, bool) {
	m, ok := registry[name]

	return m, ok
}

// Names returns the registered modifier names, unordered.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}

func applyToBoth(f func(*image.NRGBA)) Modifier {
	return func(base, double *image.NRGBA) {
		f(base)
		f(double)
	}
}

// invert inverts the color channels, leaving alpha untouched.
func invert(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 255 - img.Pix[i+0]
		img.Pix[i+1] = 255 - img.Pix[i+1]
		img.Pix[i+2] = 255 - img.Pix[i+2]
	}
}

func flipHorizontal(img *image.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Min.X+bounds.Dx()/2; x++ {
			mirror := bounds.Max.X - 1 - (x - bounds.Min.X)
			a := img.PixOffset(x, y)
			b := img.PixOffset(mirror, y)
			for c := 0; c < 4; c++ {
				img.Pix[a+c], img.Pix[b+c] = img.Pix[b+c], img.Pix[a+c]
			}
		}
	}
}

func flipVertical(img *image.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Min.Y+bounds.Dy()/2; y++ {
		mirror := bounds.Max.Y - 1 - (y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := img.PixOffset(x, y)
			b := img.PixOffset(x, mirror)
			for c := 0; c < 4; c++ {
				img.Pix[a+c], img.Pix[b+c] = img.Pix[b+c], img.Pix[a+c]
			}
		}
	}
}
