/*
Package shr implements the pixel side of converting a truecolor image to the
Apple IIgs super hi-res display format.

Super hi-res stores four bits per pixel, so a scanline can use at most 16
colors out of a hardware palette table. An image is converted in a single
scanline-order pass that quantizes every pixel down to the hardware's four
bits per channel, collects the distinct colors into a palette in order of
first appearance and records one palette index per pixel.
*/
package shr

import "errors"

// ErrPaletteOverflow is returned in strict mode when an image uses more
// distinct quantized colors than fit in one hardware palette.
var ErrPaletteOverflow = errors.New("shr: too many colors for one palette")

const (
	// ColorsPerPalette is the number of entries in one hardware palette.
	ColorsPerPalette = 16

	channelMax = 15
)
