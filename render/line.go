// @lixen: #focus{render[glyph,line]}
package render

import (
	"github.com/binghan1227/tclock/font"
	"github.com/binghan1227/tclock/terminal"
)

// Config places and styles one row of glyphs
type Config struct {
	// Width and Height are the terminal cells used per glyph pixel
	Width  int
	Height int

	// X and Y are the 0-indexed top-left cell
	X int
	Y int

	Font    int
	Color   terminal.Color8
	Channel terminal.Channel
}

// LineBuffer accumulates one terminal row of painted cells so the row is
// emitted with a single write. The backing array is reused across rows.
type LineBuffer struct {
	buf []byte
}

// Reset empties the buffer, keeping its capacity
func (l *LineBuffer) Reset() {
	l.buf = l.buf[:0]
}

// PaintRow appends row y of symbol s followed by one blank spacing column
func (l *LineBuffer) PaintRow(f *font.Font, s font.Symbol, y int, cfg Config) {
	g := f.Glyph(s)
	w := f.Width()

	// Starts one past the row's top bit; the first shift lands on column 0
	mask := font.Glyph(1) << (w * (y + 1))
	for x := 0; x < w; x++ {
		mask >>= 1
		if g&mask != 0 {
			l.buf = cfg.Channel.AppendLit(l.buf, cfg.Color, cfg.Width)
		} else {
			l.buf = cfg.Channel.AppendUnlit(l.buf, cfg.Width)
		}
	}
	l.buf = cfg.Channel.AppendUnlit(l.buf, cfg.Width)
}

// Bytes returns the painted row; valid until the next Reset or PaintRow
func (l *LineBuffer) Bytes() []byte {
	return l.buf
}

func (l *LineBuffer) Len() int {
	return len(l.buf)
}
