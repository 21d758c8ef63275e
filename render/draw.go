package render

import (
	"fmt"
	"io"

	"github.com/binghan1227/tclock/font"
	"github.com/binghan1227/tclock/terminal"
)

// Draw composes symbol rows into cursor-addressed terminal writes.
// Every frame is painted from scratch with full SGR codes, there is no
// front buffer to diff against.
type Draw struct {
	line LineBuffer
	out  []byte
}

// NewDraw creates a compositor with pre-sized buffers
func NewDraw() *Draw {
	return &Draw{
		line: LineBuffer{buf: make([]byte, 0, 1024)},
		out:  make([]byte, 0, 1100),
	}
}

// ShowTime paints symbols at cfg's position using cfg's font.
// The first write error is returned and nothing further is written.
func (d *Draw) ShowTime(symbols []font.Symbol, cfg Config, w io.Writer) error {
	f, err := font.Lookup(cfg.Font)
	if err != nil {
		return err
	}
	return d.show(f, symbols, cfg, w)
}

func (d *Draw) show(f *font.Font, symbols []font.Symbol, cfg Config, w io.Writer) error {
	for y := 0; y < f.Height(); y++ {
		d.line.Reset()
		for _, s := range symbols {
			d.line.PaintRow(f, s, y, cfg)
		}

		// Vertical scaling repeats the same painted row
		for i := 0; i < cfg.Height; i++ {
			d.out = terminal.AppendCursorPos(d.out[:0], cfg.X, cfg.Y+y*cfg.Height+i)
			d.out = append(d.out, d.line.Bytes()...)
			if _, err := w.Write(d.out); err != nil {
				return fmt.Errorf("draw row %d: %w", y*cfg.Height+i, err)
			}
		}
	}
	return nil
}

// Extent returns the cells covered by n symbols in font f, spacing columns included
func Extent(n int, f *font.Font, cfg Config) (cols, rows int) {
	return (f.Width() + 1) * cfg.Width * n, f.Height() * cfg.Height
}
