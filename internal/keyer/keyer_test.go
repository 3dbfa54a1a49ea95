package keyer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprite-extractor/internal/raster"
)

func TestExtractDeterministic(t *testing.T) {
	img := checkerboard(128, 128, 8, gray(200), gray(220))
	fillRect(img, image.Rect(40, 40, 88, 88), color.NRGBA{R: 255, A: 255})
	p := DefaultParams().WithTarget(64)

	first := Extract(img, p)
	second := Extract(img, p)

	assert.Equal(t, first.Pix, second.Pix)
}

func TestExtractOutputShapeInvariant(t *testing.T) {
	p := DefaultParams().WithTarget(96)

	inputs := []image.Image{
		checkerboard(128, 128, 8, gray(200), gray(220)),
		checkerboard(300, 77, 8, gray(200), gray(220)),
		image.NewNRGBA(image.Rect(0, 0, 33, 190)),
	}
	for _, in := range inputs {
		out := Extract(in, p)
		assert.Equal(t, 96, out.Bounds().Dx())
		assert.Equal(t, 96, out.Bounds().Dy())
	}
}

func TestExtractPureCheckerboardGoesTransparent(t *testing.T) {
	// A bare two-shade gray checkerboard is all background: the alpha channel
	// collapses to zero, no content box is found, and the output is the full
	// image resized rather than cropped.
	img := checkerboard(128, 128, 8, gray(200), gray(220))
	p := DefaultParams().WithTarget(64)

	buf := raster.FromImage(img)
	bg := EstimateBackground(buf, p)
	scored := EstimateAlpha(buf, bg, p)
	refined := Refine(scored, p)
	_, hasContent := ContentBox(refined, p.AlphaThreshold)
	assert.False(t, hasContent)

	out := Extract(img, p)
	require.Equal(t, 64, out.Bounds().Dx())
	for i := 3; i < len(out.Pix); i += 4 {
		assert.EqualValues(t, 0, out.Pix[i])
	}
}

func TestExtractForegroundPreserved(t *testing.T) {
	// A saturated red square on the checkerboard survives with near-full
	// alpha, and the content box stays tight around it (within the blur and
	// padding tolerance).
	img := checkerboard(128, 128, 8, gray(200), gray(220))
	fillRect(img, image.Rect(40, 40, 88, 88), color.NRGBA{R: 255, A: 255})
	p := DefaultParams()

	buf := raster.FromImage(img)
	bg := EstimateBackground(buf, p)
	scored := EstimateAlpha(buf, bg, p)
	refined := Refine(scored, p)

	assert.EqualValues(t, 255, alphaAt(refined, 64, 64))

	box, hasContent := ContentBox(refined, p.AlphaThreshold)
	require.True(t, hasContent)
	// The box must contain the square and may only exceed it by the blur
	// support (a few pixels on each side).
	assert.LessOrEqual(t, box.X0, 40)
	assert.LessOrEqual(t, box.Y0, 40)
	assert.GreaterOrEqual(t, box.X1, 88)
	assert.GreaterOrEqual(t, box.Y1, 88)
	assert.GreaterOrEqual(t, box.X0, 34)
	assert.GreaterOrEqual(t, box.Y0, 34)
	assert.LessOrEqual(t, box.X1, 94)
	assert.LessOrEqual(t, box.Y1, 94)
}

func TestExtractHighlightSurvivesPipeline(t *testing.T) {
	img := checkerboard(128, 128, 8, gray(200), gray(220))
	fillRect(img, image.Rect(48, 48, 72, 72), color.NRGBA{R: 250, G: 246, B: 242, A: 255})
	p := DefaultParams().WithTarget(64)

	out := Extract(img, p)

	// The near-white patch is the only content, so the canvas center must be
	// strongly opaque after crop and resize.
	assert.Greater(t, alphaAt(out, 32, 32), uint8(120))
}

func TestExtractDropsSourceAlpha(t *testing.T) {
	// Inputs carrying an alpha channel are treated as opaque RGB: a
	// "transparent" saturated pixel is still foreground content.
	img := checkerboard(64, 64, 8, gray(200), gray(220))
	fillRect(img, image.Rect(24, 24, 40, 40), color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	p := DefaultParams()

	buf := raster.FromImage(img)
	bg := EstimateBackground(buf, p)
	scored := EstimateAlpha(buf, bg, p)
	assert.EqualValues(t, 255, alphaAt(scored, 32, 32))
}
