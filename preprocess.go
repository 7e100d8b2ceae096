package iigsimage

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"

	"github.com/KononK/resize"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/esimov/colorquant"

	"github.com/yoshisuga/IIgsImageTool/shr"
)

// Floyd-Steinberg error diffusion weights.
var ditherer = colorquant.Dither{
	Filter: [][]float32{
		{0.0, 0.0, 0.0, 7.0 / 16.0},
		{3.0 / 16.0, 5.0 / 16.0, 1.0 / 16.0, 0.0},
	},
}

// preprocess applies the optional scaling and color reduction steps before
// the 4-bit pipeline sees the image.
func (c *Converter) preprocess(m image.Image) image.Image {
	if w := c.options.Width; w > 0 && w != m.Bounds().Dx() {
		b := m.Bounds()
		h := b.Dy() * w / b.Dx()
		c.logger.Printf("scaling %dx%d to %dx%d\n", b.Dx(), b.Dy(), w, h)
		m = resize.Resize(uint(w), uint(h), m, resize.Lanczos3)
	}

	switch {
	case c.options.Dither:
		c.logger.Printf("dithering down to %d colors\n", shr.ColorsPerPalette)
		dst := image.NewPaletted(m.Bounds(), palette.WebSafe)
		m = ditherer.Quantize(m, dst, shr.ColorsPerPalette, true, true)
	case c.options.Reduce:
		c.logger.Printf("reducing to %d colors\n", shr.ColorsPerPalette)
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, shr.ColorsPerPalette), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}

	return m
}
