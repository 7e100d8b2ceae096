package shr

// Palette is an insertion-ordered set of colors. The position of a color
// within the first ColorsPerPalette entries is the index written to the
// pixel data, so the order of first appearance is part of the image and
// must not change between runs.
//
// Colors beyond the hardware limit are still recorded so callers can tell
// an image needed more than one palette, but they never become active
// entries.
type Palette struct {
	index  map[Color]int
	colors []Color
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{
		index: make(map[Color]int),
	}
}

// Add records c if it has not been seen before.
func (p *Palette) Add(c Color) {
	if _, ok := p.index[c]; ok {
		return
	}
	p.index[c] = len(p.colors)
	p.colors = append(p.colors, c)
}

// Colors returns the active palette entries, at most ColorsPerPalette of
// them, in order of first appearance.
func (p *Palette) Colors() []Color {
	if len(p.colors) > ColorsPerPalette {
		return p.colors[:ColorsPerPalette]
	}
	return p.colors
}

// Index returns the position of c within the active palette entries. The
// second return value is false if c was never added or sits beyond the
// hardware limit.
func (p *Palette) Index(c Color) (int, bool) {
	i, ok := p.index[c]
	if !ok || i >= ColorsPerPalette {
		return 0, false
	}
	return i, true
}

// Len returns the number of distinct colors seen, including any beyond the
// hardware limit.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Overflowed reports whether more distinct colors were seen than fit in one
// hardware palette.
func (p *Palette) Overflowed() bool {
	return len(p.colors) > ColorsPerPalette
}
