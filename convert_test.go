package iigsimage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yoshisuga/IIgsImageTool/asm"
	"github.com/yoshisuga/IIgsImageTool/shr"
)

// twoRows returns an 8x2 image, the first row red and the second black.
func twoRows() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 8, 2))
	for x := 0; x < 8; x++ {
		m.Set(x, 0, color.RGBA{255, 0, 0, 255})
		m.Set(x, 1, color.RGBA{0, 0, 0, 255})
	}
	return m
}

func TestConvert(t *testing.T) {
	var buf bytes.Buffer
	c := New(Options{}, nil)

	assert.NoError(t, c.Convert("test.png", twoRows(), &buf))
	got := buf.String()

	assert.Contains(t, got, "* test.png, 8x2 pixels, 2 colors")
	assert.Contains(t, got, "DRAWPIC")
	assert.Contains(t, got, "SETPALPIC LDA #$0F00")
	assert.Contains(t, got, "SETCOLOR  PHA")
	assert.Contains(t, got, "PIC       HEX 0000000011111111")

	// Blocks appear in a fixed order, blank-line separated.
	header := strings.Index(got, "* test.png")
	draw := strings.Index(got, "DRAWPIC")
	pal := strings.Index(got, "SETPALPIC")
	sub := strings.Index(got, "SETCOLOR  PHA")
	data := strings.Index(got, "PIC       HEX")
	assert.True(t, header < draw && draw < pal && pal < sub && sub < data)
	assert.Contains(t, got, "\n\nDRAWPIC")
}

func TestConvertLabel(t *testing.T) {
	var buf bytes.Buffer
	c := New(Options{Label: "TITLESCREENIMAGE001"}, nil)

	assert.NoError(t, c.Convert("test.png", twoRows(), &buf))

	// Truncated to 16 characters.
	assert.Contains(t, buf.String(), "DRAWTITLESCREENIMAGE")
	assert.NotContains(t, buf.String(), "TITLESCREENIMAGE001")
}

func TestConvertStrictOverflow(t *testing.T) {
	// A red ramp of 16 distinct quantized colors plus one green pixel row
	// tail pushes the palette past the hardware limit.
	m := image.NewRGBA(image.Rect(0, 0, 24, 1))
	for x := 0; x < 16; x++ {
		m.Set(x, 0, color.RGBA{uint8(x * 17), 0, 0, 255})
	}
	for x := 16; x < 24; x++ {
		m.Set(x, 0, color.RGBA{0, 255, 0, 255})
	}

	c := New(Options{Strict: true}, nil)
	var buf bytes.Buffer
	err := c.Convert("test.png", m, &buf)
	assert.ErrorIs(t, err, shr.ErrPaletteOverflow)

	// The default mode degrades silently instead.
	buf.Reset()
	assert.NoError(t, New(Options{}, nil).Convert("test.png", m, &buf))
}

func TestConvertStrictWidth(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 10, 2))

	c := New(Options{Strict: true}, nil)
	var buf bytes.Buffer
	err := c.Convert("test.png", m, &buf)
	assert.ErrorIs(t, err, asm.ErrUnsupportedWidth)

	buf.Reset()
	assert.NoError(t, New(Options{}, nil).Convert("test.png", m, &buf))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.png")

	f, err := os.Create(file)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(f, twoRows()))
	assert.NoError(t, f.Close())

	var buf bytes.Buffer
	c := New(Options{}, nil)
	assert.NoError(t, c.ConvertFile(file, &buf))
	assert.Contains(t, buf.String(), "DRAWPIC")
}

func TestConvertFileUnreadable(t *testing.T) {
	c := New(Options{}, nil)
	var buf bytes.Buffer

	assert.Error(t, c.ConvertFile(filepath.Join(t.TempDir(), "missing.png"), &buf))

	// A file that exists but does not decode is just as fatal.
	file := filepath.Join(t.TempDir(), "garbage.png")
	assert.NoError(t, os.WriteFile(file, []byte("not an image"), 0644))
	assert.Error(t, c.ConvertFile(file, &buf))
}
