package asm

import (
	"fmt"
	"strings"
)

// DrawParams are the loop constants the draw routine is generated around.
// Each loop iteration performs one 16-bit store, moving two data bytes and
// so four packed pixels.
type DrawParams struct {
	TotalWrites int // stores to cover the whole image
	LineWrites  int // stores to cover one scanline
	LineSkip    int // added to the screen cursor at a scanline wrap
	LineBack    int // bytes already advanced within the finished scanline
}

// ParamsFor derives the draw loop constants from the image width in pixels
// and the total pixel count. Integer division throughout; the caller is
// expected to supply a width that is a multiple of 8 pixels (see
// ErrUnsupportedWidth).
func ParamsFor(width, pixels int) DrawParams {
	return DrawParams{
		TotalWrites: pixels / pixelsPerWrite,
		LineWrites:  width / pixelsPerWrite,
		LineSkip:    lineStride,
		LineBack:    width / pixelsPerByte,
	}
}

// DrawRoutine generates DRAW<label>, which copies the packed data block
// into screen memory. The caller passes the starting screen offset in the
// X register; the routine assumes 16-bit accumulator and index registers.
//
// The screen cursor lives at direct page $00, the remaining total store
// count at $02 and the remaining stores for the current scanline at $04.
// After finishing a scanline the cursor has already advanced by the bytes
// written, so the wrap adds the scanline stride and subtracts them again
// to land on the start of the next line.
func DrawRoutine(label string, width, pixels int) string {
	p := ParamsFor(width, pixels)

	loop := "LOOP" + label
	done := "DONE" + label

	var b strings.Builder

	line(&b, "DRAW"+label, "STX $00", "screen cursor")
	line(&b, "", fmt.Sprintf("LDA #$%04X", p.TotalWrites), "stores for the whole image")
	line(&b, "", "STA $02", "")
	line(&b, "", fmt.Sprintf("LDA #$%04X", p.LineWrites), "stores per scanline")
	line(&b, "", "STA $04", "")
	line(&b, "", "LDY #$0000", "graphic offset")
	line(&b, loop, fmt.Sprintf("LDA %s,Y", label), "")
	line(&b, "", "LDX $00", "")
	line(&b, "", fmt.Sprintf("STA $%06X,X", screenBase), "")
	line(&b, "", "DEC $02", "")
	line(&b, "", "BEQ "+done, "")
	line(&b, "", "INY", "")
	line(&b, "", "INY", "")
	line(&b, "", "INX", "")
	line(&b, "", "INX", "")
	line(&b, "", "STX $00", "")
	line(&b, "", "DEC $04", "")
	line(&b, "", "BNE "+loop, "")
	line(&b, "", "LDA $00", "scanline wrap")
	line(&b, "", "CLC", "")
	line(&b, "", fmt.Sprintf("ADC #$%04X", p.LineSkip), "")
	line(&b, "", "SEC", "")
	line(&b, "", fmt.Sprintf("SBC #$%04X", p.LineBack), "")
	line(&b, "", "STA $00", "")
	line(&b, "", fmt.Sprintf("LDA #$%04X", p.LineWrites), "")
	line(&b, "", "STA $04", "")
	line(&b, "", "BRA "+loop, "")
	line(&b, done, "RTS", "")

	return b.String()
}

// line writes one source line with the label blank-padded to a fixed
// column and an optional trailing comment. A label too long for the column
// still gets a separating space.
func line(b *strings.Builder, label, code, comment string) {
	if len(label) >= labelColumn {
		label += " "
	}
	if comment == "" {
		fmt.Fprintf(b, "%-*s%s\n", labelColumn, label, code)
		return
	}
	fmt.Fprintf(b, "%-*s%-18s ; %s\n", labelColumn, label, code, comment)
}
