package asm

import (
	"fmt"
	"strings"

	"github.com/yoshisuga/IIgsImageTool/shr"
)

// PaletteRoutine generates SETPAL<label>, which loads every active palette
// entry into the hardware palette table by calling SETCOLOR once per
// color: the packed color value in the accumulator, the table slot in X.
func PaletteRoutine(label string, colors []shr.Color) string {
	var b strings.Builder

	routine := "SETPAL" + label
	for i, c := range colors {
		line(&b, routine, fmt.Sprintf("LDA #$0%s", c.RGB()), "")
		line(&b, "", fmt.Sprintf("LDX #$%04X", i), "")
		line(&b, "", "JSR SETCOLOR", "")
		routine = ""
	}
	line(&b, "", "RTS", "")

	return b.String()
}

// SetColorSubroutine is the constant helper the palette routine calls for
// each entry. It is independent of the image and emitted verbatim every
// time: the offset in X is doubled because a palette entry occupies two
// bytes, then the color saved on the stack is written to the table.
func SetColorSubroutine() string {
	var b strings.Builder

	line(&b, "SETCOLOR", "PHA", "color arrives in the accumulator")
	line(&b, "", "TXA", "")
	line(&b, "", "ASL", "palette entries are two bytes wide")
	line(&b, "", "TAX", "")
	line(&b, "", "PLA", "")
	line(&b, "", fmt.Sprintf("STA $%06X,X", paletteBase), "")
	line(&b, "", "RTS", "")

	return b.String()
}
