// Package keyer reconstructs a plausible alpha channel for sprites whose
// transparent background was baked into a neutral checkerboard during
// generation or export, and normalizes the result onto a fixed square canvas.
//
// The pipeline is strictly sequential per image: background-color discovery,
// per-pixel alpha scoring, edge refinement, content cropping, canvas
// normalization. A run holds no state across images, so callers may process
// many images in parallel with one Extract call each.
package keyer

import (
	"image"

	"sprite-extractor/internal/raster"
)

// Extract runs the full pipeline on a decoded image and returns the square
// RGBA canvas. Any alpha carried by the source is ignored. The function is
// deterministic: identical pixels and params produce byte-identical output.
func Extract(src image.Image, p Params) *image.NRGBA {
	buf := raster.FromImage(src)
	bg := EstimateBackground(buf, p)
	scored := EstimateAlpha(buf, bg, p)
	refined := Refine(scored, p)
	box, hasContent := ContentBox(refined, p.AlphaThreshold)
	return Normalize(refined, box, hasContent, p)
}
