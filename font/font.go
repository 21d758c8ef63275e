// Package font holds the bitmap glyph tables used to draw the clock digits.
//
// A glyph is a width x height bitmap packed into a single uint64. Row y occupies
// bits [y*width, (y+1)*width) and column 0 is the most significant bit of its row,
// so a row can be scanned with one mask shifted right per column.
package font

import (
	"errors"
	"fmt"
)

// Symbol indexes a glyph inside a font
type Symbol int

const (
	Colon Symbol = 10 + iota
	Space
	A
	P
	M

	// SymbolCount is the size of the closed symbol set
	SymbolCount
)

// Glyph is a packed bitmap, see package doc for the bit layout
type Glyph uint64

// Lit reports whether column x of row y is set for a glyph of the given width
func (g Glyph) Lit(x, y, width int) bool {
	return g&(1<<(y*width+width-1-x)) != 0
}

var (
	ErrUnknownFont  = errors.New("unknown font")
	ErrNoTwelveHour = errors.New("font has no AM/PM glyphs")
	ErrGlyphTooBig  = errors.New("glyph does not fit in 64 bits")
)

// Font is an immutable set of equally sized glyphs
type Font struct {
	name    string
	width   int
	height  int
	glyphs  [SymbolCount]Glyph
	defined [SymbolCount]bool
}

// Pack builds a glyph from row values, top row first.
// Each row value carries column 0 in its highest of width bits.
func Pack(width int, rows ...uint64) Glyph {
	var g Glyph
	for y, row := range rows {
		g |= Glyph(row&(1<<width-1)) << (y * width)
	}
	return g
}

// New validates dimensions and returns a font covering the given symbols
func New(name string, width, height int, glyphs map[Symbol]Glyph) (*Font, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("font %q: invalid size %dx%d", name, width, height)
	}
	if width*height > 64 {
		return nil, fmt.Errorf("font %q: %dx%d: %w", name, width, height, ErrGlyphTooBig)
	}

	f := &Font{name: name, width: width, height: height}
	// Shifting by 64 yields 0, so a full 8x8 font still gets an all-ones limit
	limit := Glyph(1)<<(width*height) - 1
	for s, g := range glyphs {
		if s < 0 || s >= SymbolCount {
			return nil, fmt.Errorf("font %q: symbol %d out of range", name, s)
		}
		if g&^limit != 0 {
			return nil, fmt.Errorf("font %q: symbol %d has bits outside %dx%d", name, s, width, height)
		}
		f.glyphs[s] = g
		f.defined[s] = true
	}
	for d := Symbol(0); d <= 9; d++ {
		if !f.defined[d] {
			return nil, fmt.Errorf("font %q: missing digit %d", name, d)
		}
	}
	return f, nil
}

func (f *Font) Name() string { return f.name }
func (f *Font) Width() int   { return f.width }
func (f *Font) Height() int  { return f.height }

// Glyph returns the bitmap for s, or an empty glyph when s is not defined
func (f *Font) Glyph(s Symbol) Glyph {
	if s < 0 || s >= SymbolCount {
		return 0
	}
	return f.glyphs[s]
}

// Has reports whether the font defines s
func (f *Font) Has(s Symbol) bool {
	return s >= 0 && s < SymbolCount && f.defined[s]
}

// SupportsTwelveHour reports whether every symbol of the 12-hour layout is present
func (f *Font) SupportsTwelveHour() bool {
	return f.Has(Colon) && f.Has(Space) && f.Has(A) && f.Has(P) && f.Has(M)
}

func (f *Font) String() string {
	return fmt.Sprintf("%s (%dx%d)", f.name, f.width, f.height)
}
