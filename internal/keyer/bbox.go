package keyer

import "image"

// Box is a half-open content rectangle in source-image coordinates:
// x in [X0, X1), y in [Y0, Y1).
type Box struct {
	X0, Y0, X1, Y1 int
}

// Width returns the box width in pixels.
func (b Box) Width() int { return b.X1 - b.X0 }

// Height returns the box height in pixels.
func (b Box) Height() int { return b.Y1 - b.Y0 }

// Pad expands the box on all sides by round(max(width, height) * frac),
// clamped to a w x h image. Padding never shrinks the box.
func (b Box) Pad(frac float64, w, h int) Box {
	longer := b.Width()
	if b.Height() > longer {
		longer = b.Height()
	}
	pad := int(float64(longer)*frac + 0.5)

	b.X0 -= pad
	b.Y0 -= pad
	b.X1 += pad
	b.Y1 += pad
	if b.X0 < 0 {
		b.X0 = 0
	}
	if b.Y0 < 0 {
		b.Y0 = 0
	}
	if b.X1 > w {
		b.X1 = w
	}
	if b.Y1 > h {
		b.Y1 = h
	}
	return b
}

// ContentBox returns the tightest rectangle enclosing every pixel whose alpha
// is strictly greater than threshold. The second return is false when no
// pixel qualifies: a fully transparent result is legitimate, not an error.
func ContentBox(img *image.NRGBA, threshold int) (Box, bool) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := img.PixOffset(0, y)
		for x := 0; x < w; x++ {
			if int(img.Pix[row+x*4+3]) > threshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < 0 {
		return Box{}, false
	}
	return Box{X0: minX, Y0: minY, X1: maxX + 1, Y1: maxY + 1}, true
}
