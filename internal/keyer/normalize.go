package keyer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Normalize turns an arbitrary-aspect refined image into the canonical square
// output canvas. With no content box (fully transparent result) the whole
// image is resized directly; otherwise the box is padded, cropped, letterboxed
// into a transparent square, and resized. The result is always exactly
// TargetSize x TargetSize.
func Normalize(img *image.NRGBA, box Box, hasContent bool, p Params) *image.NRGBA {
	if !hasContent {
		return imaging.Resize(img, p.TargetSize, p.TargetSize, imaging.Lanczos)
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	padded := box.Pad(p.PadFrac, w, h)

	crop := imaging.Crop(img, image.Rect(padded.X0, padded.Y0, padded.X1, padded.Y1))
	cw := crop.Bounds().Dx()
	ch := crop.Bounds().Dy()

	side := cw
	if ch > side {
		side = ch
	}

	// Letterbox: equal margins on the shorter axis, integer-floor centering.
	canvas := imaging.New(side, side, color.Transparent)
	canvas = imaging.Paste(canvas, crop, image.Pt((side-cw)/2, (side-ch)/2))

	return imaging.Resize(canvas, p.TargetSize, p.TargetSize, imaging.Lanczos)
}
