package iigsimage

import (
	"fmt"
	"hash/crc32"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yoshisuga/IIgsImageTool/asm"
	"github.com/yoshisuga/IIgsImageTool/shr"
)

// Convert runs the pipeline on a decoded image and writes the generated
// source to w. name only appears in the header comment.
func (c *Converter) Convert(name string, m image.Image, w io.Writer) error {
	m = c.preprocess(m)
	b := m.Bounds()

	palette, stream := shr.IndexImage(m)

	c.logger.Printf("%s: %dx%d pixels, %d colors\n", name, b.Dx(), b.Dy(), palette.Len())

	if c.options.Strict {
		if palette.Overflowed() {
			return fmt.Errorf("converting %q: %w", name, shr.ErrPaletteOverflow)
		}
		if b.Dx()%8 != 0 {
			return fmt.Errorf("converting %q: %w", name, asm.ErrUnsupportedWidth)
		}
	} else if palette.Overflowed() {
		c.logger.Printf("%s: %d colors do not fit one palette, overflow pixels fall back to color 0\n", name, palette.Len())
	}

	if rows := asm.Rows(stream, b.Dx()); rows != "" {
		c.logger.Printf("pixel rows for %s:\n%s", name, rows)
	}

	label := asm.Label(c.options.Label)

	header := asm.Header{
		Source:   name,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Colors:   len(palette.Colors()),
		Checksum: crc32.ChecksumIEEE([]byte(stream.Hex())),
	}

	blocks := []string{
		header.CommentHeader(),
		asm.DrawRoutine(label, b.Dx(), len(stream)),
		asm.PaletteRoutine(label, palette.Colors()),
		asm.SetColorSubroutine(),
		asm.DataBlock(label, stream),
	}

	if _, err := io.WriteString(w, strings.Join(blocks, "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// ConvertFile decodes the image at path and writes the generated source to
// w. An unreadable or undecodable file is the one fatal condition of a
// conversion run.
func (c *Converter) ConvertFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening image '%s': %w", path, err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding image '%s': %w", path, err)
	}

	return c.Convert(filepath.Base(path), m, w)
}
