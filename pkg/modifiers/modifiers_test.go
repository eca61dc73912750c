package modifiers_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/modifiers"
)

func TestGet(t *testing.T) {
	t.Parallel()

	_, ok := modifiers.Get("invert")
	assert.True(t, ok)

	_, ok = modifiers.Get("unknown_modifier")
	assert.False(t, ok)
}

func TestInvert(t *testing.T) {
	t.Parallel()

	base := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	double := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	base.Pix[0], base.Pix[1], base.Pix[2], base.Pix[3] = 0, 10, 255, 128

	invert, ok := modifiers.Get("invert")
	require.True(t, ok)
	invert(base, double)

	assert.Equal(t, []uint8{255, 245, 0, 128}, []uint8(base.Pix[:4]))
}

func TestFlipHorizontal(t *testing.T) {
	t.Parallel()

	base := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	double := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	base.Pix[0] = 11  // left pixel red
	base.Pix[4] = 22  // right pixel red

	flip, ok := modifiers.Get("flip_horizontal")
	require.True(t, ok)
	flip(base, double)

	assert.Equal(t, uint8(22), base.Pix[0])
	assert.Equal(t, uint8(11), base.Pix[4])
}
