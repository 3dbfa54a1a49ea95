package keyer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineSmoothsAlphaEdges(t *testing.T) {
	// Hard 0/255 alpha edge: after the blur pass, pixels adjacent to the
	// boundary must carry intermediate alpha.
	img := alphaImage(32, 32)
	fillRect(img, image.Rect(0, 0, 16, 32), color.NRGBA{R: 255, A: 255})

	out := Refine(img, DefaultParams())

	require.Equal(t, img.Bounds(), out.Bounds())
	edge := alphaAt(out, 15, 16)
	outside := alphaAt(out, 16, 16)
	assert.Less(t, edge, uint8(255))
	assert.Greater(t, edge, uint8(0))
	assert.Greater(t, outside, uint8(0))
	assert.Less(t, outside, uint8(255))

	// Far from the edge the channel is untouched by the small-radius blur.
	assert.EqualValues(t, 255, alphaAt(out, 2, 16))
	assert.EqualValues(t, 0, alphaAt(out, 30, 16))
}

func TestRefineLeavesUniformAlphaAlone(t *testing.T) {
	img := alphaImage(24, 24) // uniform zero alpha
	out := Refine(img, DefaultParams())

	for i := 3; i < len(out.Pix); i += 4 {
		assert.EqualValues(t, 0, out.Pix[i])
	}
}

func TestRefineWithoutBlurKeepsAlphaExact(t *testing.T) {
	p := DefaultParams()
	p.AlphaBlurSigma = 0
	p.SharpenSigma = 0

	img := alphaImage(16, 16)
	setAlpha(img, 8, 8, 123)

	out := Refine(img, p)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestRefineDeterministic(t *testing.T) {
	img := checkerboard(48, 48, 6, gray(200), gray(220))
	fillRect(img, image.Rect(12, 12, 36, 36), color.NRGBA{R: 200, G: 30, B: 30, A: 220})

	p := DefaultParams()
	first := Refine(img, p)
	second := Refine(img, p)
	assert.Equal(t, first.Pix, second.Pix)
}
