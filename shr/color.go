package shr

import "fmt"

// Color is a hardware color, four bits per channel.
type Color struct {
	R, G, B uint8
}

// Quantize reduces an 8-bit channel value to the four bits the hardware
// keeps. The offset makes the division round to nearest instead of
// truncating, so 0 still maps to 0 and 255 to 15 while everything in
// between picks the closer of its two neighbours.
func Quantize(v uint8) uint8 {
	return uint8((uint32(v)*channelMax + 135) / 256)
}

// QuantizeColor quantizes an 8-bit RGB triple, one channel at a time.
func QuantizeColor(r, g, b uint8) Color {
	return Color{Quantize(r), Quantize(g), Quantize(b)}
}

// RGB returns the color as three hex digits, one per channel, in the order
// the hardware packs them into a palette entry.
func (c Color) RGB() string {
	return fmt.Sprintf("%X%X%X", c.R&0x0f, c.G&0x0f, c.B&0x0f)
}
