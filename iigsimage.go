/*
Package iigsimage converts truecolor images into 65816 source that redraws
them on the Apple IIgs super hi-res screen.
*/
package iigsimage

import (
	"io"
	"log"
)

// Options control a conversion.
type Options struct {
	// Label names the generated routines and data block. Empty picks the
	// default, anything over 16 characters is truncated.
	Label string

	// Width scales the source image to this width before converting,
	// keeping the aspect ratio. Zero keeps the source size.
	Width int

	// Reduce runs a median cut down to 16 colors before quantizing, so
	// the hardware palette cannot overflow.
	Reduce bool

	// Dither reduces to 16 colors with Floyd-Steinberg dithering instead
	// of a plain median cut.
	Dither bool

	// Strict rejects images the hardware cannot show faithfully instead
	// of degrading silently: more than 16 distinct quantized colors, or a
	// width that is not a multiple of 8 pixels.
	Strict bool
}

// Converter turns images into drawing code.
type Converter struct {
	options Options
	logger  *log.Logger
}

// New returns a Converter. A nil logger discards all output.
func New(options Options, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		options: options,
		logger:  logger,
	}
}
