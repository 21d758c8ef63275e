package clock

import (
	"github.com/binghan1227/tclock/font"
	"github.com/binghan1227/tclock/render"
)

// center places n symbols in the middle of a cols x rows terminal, shifted by
// the configured offsets. Positions never go negative.
func center(cfg render.Config, f *font.Font, n, cols, rows int) render.Config {
	w, h := render.Extent(n, f, cfg)
	cfg.X = max(cfg.X+cols/2-w/2, 0)
	cfg.Y = max(cfg.Y+rows/2-h/2, 0)
	return cfg
}

// above places the countdown row over the main clock, centred on its own width
func above(cfg render.Config, f *font.Font, n, cols, rows int) render.Config {
	w, _ := render.Extent(n, f, cfg)
	h := f.Height() * cfg.Height
	cfg.X = max(cfg.X+cols/2-w/2, 0)
	cfg.Y = max(cfg.Y+rows/2-h-h/2-2, 0)
	return cfg
}
