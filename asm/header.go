package asm

import (
	"fmt"
	"strings"
)

// Header describes the conversion a generated file came from.
type Header struct {
	Source   string
	Width    int
	Height   int
	Colors   int
	Checksum uint32
}

// CommentHeader renders the comment block at the top of the generated
// source.
func (h Header) CommentHeader() string {
	var b strings.Builder

	fmt.Fprintf(&b, "* %s, %dx%d pixels, %d colors\n", h.Source, h.Width, h.Height, h.Colors)
	fmt.Fprintf(&b, "* pixel data CRC32 %08x\n", h.Checksum)

	return b.String()
}
