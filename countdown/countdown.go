// Package countdown tracks time left until an absolute end instant and
// formats it as a variable-width symbol row.
package countdown

import (
	"time"

	"github.com/binghan1227/tclock/font"
)

// Countdown holds the instant at which it expires.
// The end is kept in UTC so local time discontinuities do not move it.
type Countdown struct {
	end time.Time
}

// NewDuration starts a countdown of d from now
func NewDuration(now time.Time, d time.Duration) *Countdown {
	return &Countdown{end: now.UTC().Add(d)}
}

// NewTarget counts down to an absolute instant
func NewTarget(target time.Time) *Countdown {
	return &Countdown{end: target.UTC()}
}

// End returns the expiry instant in UTC
func (c *Countdown) End() time.Time {
	return c.end
}

// Expired reports whether now has reached the end
func (c *Countdown) Expired(now time.Time) bool {
	return !now.Before(c.end)
}

// Left returns the remaining duration, never negative
func (c *Countdown) Left(now time.Time) time.Duration {
	if c.Expired(now) {
		return 0
	}
	return c.end.Sub(now)
}

// Remaining formats the time left as [H..H :] [MM :] SS.
// An empty slice means the countdown has expired.
func (c *Countdown) Remaining(now time.Time) []font.Symbol {
	if c.Expired(now) {
		return nil
	}

	// Round up so the display reaches 00 only at the end instant
	secs := int64((c.end.Sub(now) + time.Second - 1) / time.Second)
	h := secs / 3600
	m := secs % 3600 / 60
	s := secs % 60

	symbols := make([]font.Symbol, 0, 8)
	if h > 0 {
		symbols = appendHours(symbols, h)
		symbols = append(symbols, font.Colon)
	}
	// A present hour group keeps the minutes visible, 1h0m5s is 01:00:05
	if h > 0 || m > 0 {
		symbols = append(symbols, font.Symbol(m/10), font.Symbol(m%10), font.Colon)
	}
	return append(symbols, font.Symbol(s/10), font.Symbol(s%10))
}

// appendHours writes at least two digits, more for hour counts past 99
func appendHours(symbols []font.Symbol, h int64) []font.Symbol {
	var digits [20]font.Symbol
	i := len(digits)
	for h > 0 || i > len(digits)-2 {
		i--
		digits[i] = font.Symbol(h % 10)
		h /= 10
	}
	return append(symbols, digits[i:]...)
}
