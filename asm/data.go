package asm

import (
	"fmt"
	"strings"

	"github.com/yoshisuga/IIgsImageTool/shr"
)

const digitsPerLine = 20 // ten data bytes per hex directive

// DataBlock renders the index stream as hex directives, two pixels per
// byte and ten bytes per line. The first line carries the label so the
// draw routine can reference the data by name; a final partial run becomes
// its own shorter line.
func DataBlock(label string, stream shr.IndexStream) string {
	digits := stream.Hex()

	var b strings.Builder
	for len(digits) > 0 {
		n := digitsPerLine
		if len(digits) < n {
			n = len(digits)
		}
		line(&b, label, "HEX "+digits[:n], "")
		digits = digits[n:]
		label = ""
	}

	return b.String()
}

// Rows renders the index stream wrapped at the image width, one source row
// per text line. The draw routine never consumes this; it exists so a
// generated image can be eyeballed in the source.
func Rows(stream shr.IndexStream, width int) string {
	if width < 1 {
		return ""
	}
	digits := stream.Hex()

	var b strings.Builder
	for len(digits) > 0 {
		n := width
		if len(digits) < n {
			n = len(digits)
		}
		fmt.Fprintf(&b, "%s\n", digits[:n])
		digits = digits[n:]
	}

	return b.String()
}
