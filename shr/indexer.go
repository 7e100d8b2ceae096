package shr

import (
	"image"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// IndexStream holds one palette index per source pixel, in scanline order,
// row 0 first and left to right within a row. The drawing code relies on
// this exact order for its line-wrap arithmetic.
type IndexStream []uint8

// Hex renders the stream as one hex digit per pixel.
func (s IndexStream) Hex() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, i := range s {
		b.WriteByte(hexDigits[i&0x0f])
	}
	return b.String()
}

// IndexImage walks m in scanline order building the palette and the
// per-pixel indices in one pass.
//
// A pixel whose quantized color is not among the active palette entries
// falls back to index 0. That only happens once an image has produced more
// than ColorsPerPalette distinct colors; the image comes out wrong on the
// hardware either way, so the fallback keeps the output well-formed instead
// of failing.
func IndexImage(m image.Image) (*Palette, IndexStream) {
	b := m.Bounds()

	p := NewPalette()
	stream := make(IndexStream, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := m.At(x, y).RGBA()

			c := QuantizeColor(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
			p.Add(c)

			i, _ := p.Index(c)
			stream = append(stream, uint8(i))
		}
	}

	return p, stream
}
