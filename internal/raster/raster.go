// Package raster provides an owned, bounds-checked RGBA pixel buffer that the
// pipeline operates on, independent of any particular codec library.
package raster

import "image"

// Buffer is a width x height grid of 8-bit RGBA pixels stored interleaved.
// Accessors are bounds-checked: reads outside the grid return black, writes
// outside the grid are dropped.
type Buffer struct {
	W, H int
	Pix  []uint8 // Interleaved R,G,B,A, len = W*H*4
}

// New returns a fully transparent buffer of the given size.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// FromImage copies a decoded image into a buffer. Any alpha carried by the
// source is discarded: inputs are treated as opaque RGB.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := buf.offset(x, y)
			buf.Pix[off] = uint8(r >> 8)
			buf.Pix[off+1] = uint8(g >> 8)
			buf.Pix[off+2] = uint8(b >> 8)
			buf.Pix[off+3] = 255
		}
	}
	return buf
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// RGBA returns the pixel at (x, y), or opaque black outside the buffer.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	if !b.In(x, y) {
		return 0, 0, 0, 255
	}
	off := b.offset(x, y)
	return b.Pix[off], b.Pix[off+1], b.Pix[off+2], b.Pix[off+3]
}

// SetRGBA stores the pixel at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	if !b.In(x, y) {
		return
	}
	off := b.offset(x, y)
	b.Pix[off] = r
	b.Pix[off+1] = g
	b.Pix[off+2] = bl
	b.Pix[off+3] = a
}

// ToNRGBA copies the buffer into a standard non-premultiplied image.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	copy(img.Pix, b.Pix)
	return img
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.W + x) * 4
}
