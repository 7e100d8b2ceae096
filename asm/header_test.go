package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentHeader(t *testing.T) {
	h := Header{
		Source:   "lake.png",
		Width:    320,
		Height:   200,
		Colors:   12,
		Checksum: 0xdeadbeef,
	}

	assert.Equal(t, "* lake.png, 320x200 pixels, 12 colors\n* pixel data CRC32 deadbeef\n", h.CommentHeader())
}
