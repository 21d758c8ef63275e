package clock

import (
	"time"

	"github.com/binghan1227/tclock/font"
)

// Time is a wall-clock reading split into display fields
type Time struct {
	Hour   int // 0-23
	Minute int
	Second int

	// Hour12 is the 1-12 hour; PM is set from noon on
	Hour12 int
	PM     bool
}

// FromTime splits t in its own location
func FromTime(t time.Time) Time {
	h := t.Hour()
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return Time{
		Hour:   h,
		Minute: t.Minute(),
		Second: t.Second(),
		Hour12: h12,
		PM:     h >= 12,
	}
}

// Format renders t as HH:MM:SS, or HH:MM:SS AM/PM when twelveHour is set
func Format(t Time, twelveHour bool) []font.Symbol {
	h := t.Hour
	if twelveHour {
		h = t.Hour12
	}
	symbols := make([]font.Symbol, 0, 11)
	symbols = append(symbols,
		font.Symbol(h/10), font.Symbol(h%10), font.Colon,
		font.Symbol(t.Minute/10), font.Symbol(t.Minute%10), font.Colon,
		font.Symbol(t.Second/10), font.Symbol(t.Second%10),
	)
	if !twelveHour {
		return symbols
	}
	meridiem := font.A
	if t.PM {
		meridiem = font.P
	}
	return append(symbols, font.Space, meridiem, font.M)
}

// SymbolCount is the length of a formatted reading
func SymbolCount(twelveHour bool) int {
	if twelveHour {
		return 11
	}
	return 8
}
