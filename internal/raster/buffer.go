package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Buffer holds a page raster as a flat slice for cache locality.
// Pixels are non-premultiplied RGBA, row-major, with no row padding.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewBuffer allocates a zeroed (transparent black) buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// FromImage copies any image into a new buffer with its origin at (0,0).
func FromImage(src image.Image) *Buffer {
	b := src.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	if n, ok := src.(*image.NRGBA); ok && n.Stride == 4*b.Dx() {
		copy(buf.Pix, n.Pix[n.PixOffset(b.Min.X, b.Min.Y):])
		return buf
	}
	draw.Draw(buf.Image(), buf.Image().Bounds(), src, b.Min, draw.Src)
	return buf
}

// Image returns an NRGBA view sharing the buffer's pixels.
// Writes through the view are visible in the buffer and vice versa.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Valid reports whether the dimensions agree with the pixel slice.
func (b *Buffer) Valid() bool {
	return b != nil && b.Width > 0 && b.Height > 0 && len(b.Pix) == b.Width*b.Height*4
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Offset returns the index of the R channel of (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// RGBA returns the four channels at (x, y). The caller checks bounds.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set writes the four channels at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	if !b.In(x, y) {
		return
	}
	i := b.Offset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}

// Clear sets every pixel to the given color.
func (b *Buffer) Clear(r, g, bl, a uint8) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
		b.Pix[i+3] = a
	}
}
