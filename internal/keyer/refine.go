package keyer

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

// Refine smooths the alpha channel with a small Gaussian blur, then runs an
// unsharp mask over the full composite. The blur removes the stair-stepped
// edges left by independent per-pixel scoring; the sharpen counteracts the
// softening from that blur and from the later resize. Blur-then-sharpen,
// applied once.
func Refine(img *image.NRGBA, p Params) *image.NRGBA {
	out := blurAlpha(img, p.AlphaBlurSigma)

	if p.SharpenSigma > 0 && p.SharpenAmount > 0 {
		g := gift.New(gift.UnsharpMask(
			float32(p.SharpenSigma),
			float32(p.SharpenAmount),
			float32(p.SharpenThreshold),
		))
		sharpened := image.NewNRGBA(g.Bounds(out.Bounds()))
		g.Draw(sharpened, out)
		out = sharpened
	}
	return out
}

// blurAlpha Gaussian-blurs only the alpha channel, leaving RGB untouched.
func blurAlpha(img *image.NRGBA, sigma float64) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, img.Pix)
	if sigma <= 0 {
		return out
	}

	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Pix[mask.PixOffset(x, y)] = img.Pix[img.PixOffset(x, y)+3]
		}
	}

	blurred := imaging.Blur(mask, sigma)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[out.PixOffset(x, y)+3] = blurred.Pix[blurred.PixOffset(x, y)]
		}
	}
	return out
}
