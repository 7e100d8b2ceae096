/*
Package asm renders 65816 source that redraws a converted image on the
Apple IIgs super hi-res screen.

The output is built from independent text blocks: a draw routine that
copies the packed pixel data into screen memory with per-scanline wrap
arithmetic, a palette-initialization routine, a constant subroutine that
writes one palette entry, and the packed pixel data itself as hex
directives. Each block is produced by a pure function over fully resolved
data so the caller composes them by simple concatenation.
*/
package asm

import "errors"

const (
	// Super hi-res memory layout.
	screenBase  = 0xE12000 // pixel data, 160 bytes per scanline
	paletteBase = 0xE19E00 // palette table, two bytes per entry
	lineStride  = 0xA0     // byte distance between scanline starts

	pixelsPerByte  = 2 // two 4-bit indices per data byte
	pixelsPerWrite = 4 // one 16-bit store moves two data bytes

	// DefaultLabel names the generated routines and data block when the
	// caller does not supply a label.
	DefaultLabel = "PIC"

	maxLabelLen = 16

	labelColumn = 10
)

// ErrUnsupportedWidth is returned in strict mode for image widths the draw
// routine arithmetic cannot represent.
var ErrUnsupportedWidth = errors.New("asm: image width must be a multiple of 8 pixels")

// Label normalizes a routine label: an empty label becomes DefaultLabel and
// anything longer than 16 characters is silently truncated.
func Label(s string) string {
	if s == "" {
		return DefaultLabel
	}
	if len(s) > maxLabelLen {
		return s[:maxLabelLen]
	}
	return s
}
