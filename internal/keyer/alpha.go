package keyer

import (
	"image"
	"math"

	"sprite-extractor/internal/raster"
	"sprite-extractor/pkg/colorutil"
)

// EstimateAlpha assigns every pixel an opacity in [0,255] expressing how much
// it looks like foreground rather than checkerboard background. Four
// independent heuristics are combined with max, so a pixel stays opaque if
// any one of them flags it as content:
//
//   - distance from the nearest background centroid (colored or off-shade pixels)
//   - saturation (colored foreground near gray)
//   - non-neutrality (textured background noise)
//   - bright-highlight preservation, damped by neutrality so the background's
//     own light tiles are not kept
//
// Favoring recall like this leaves faint halos rather than eating real
// content; the refinement and thresholded crop downstream clean those up.
// The pass is a pure per-pixel map: no pixel depends on another.
func EstimateAlpha(buf *raster.Buffer, bg BackgroundColors, p Params) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, buf.W, buf.H))

	c1 := normalizeCentroid(bg.C1)
	c2 := normalizeCentroid(bg.C2)

	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			r, g, b, _ := buf.RGBA(x, y)
			fr, fg, fb := float64(r), float64(g), float64(b)
			_, s, v := colorutil.RGBToHSV(fr, fg, fb)
			neutral := colorutil.Neutrality(fr, fg, fb)

			px := [3]float64{fr / 255.0, fg / 255.0, fb / 255.0}
			dist := math.Min(distTo(px, c1), distTo(px, c2))

			a := (dist - p.DistKnee) / p.DistRange
			a = math.Max(a, (s-p.SatKnee)/p.SatRange)
			a = math.Max(a, (p.NeutralityKnee-neutral)/p.NeutralityKnee)
			a = math.Max(a, (v-p.HighlightKnee)/p.HighlightRange*(1.0-neutral)*p.HighlightGain)

			off := out.PixOffset(x, y)
			out.Pix[off] = r
			out.Pix[off+1] = g
			out.Pix[off+2] = b
			out.Pix[off+3] = uint8(colorutil.Clamp01(a) * 255)
		}
	}
	return out
}

func normalizeCentroid(c [3]float64) [3]float64 {
	return [3]float64{c[0] / 255.0, c[1] / 255.0, c[2] / 255.0}
}

func distTo(a, b [3]float64) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
