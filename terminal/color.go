package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color8 is an xterm 256-color palette index
type Color8 uint8

// DefaultColor matches the original clock's tile colour
const DefaultColor Color8 = 3

// ParseColor accepts a palette index (0-255), a colour name known to tcell
// ("red", "orange", "steelblue"...) or a "#rrggbb" value.
// Named and hex RGB colours are mapped to the nearest palette entry.
func ParseColor(s string) (Color8, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid color: empty value")
	}

	if s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: want 0-255, a name or #rrggbb", s)
		}
		return Color8(n), nil
	}

	c := tcell.GetColor(s)
	if c == tcell.ColorDefault || !c.Valid() {
		return 0, fmt.Errorf("invalid color %q: unknown name", s)
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return RGBTo256(RGB{R: uint8(r), G: uint8(g), B: uint8(b)}), nil
	}

	// Palette colours are ColorValid + index
	idx := c - tcell.ColorValid
	if idx > 255 {
		return 0, fmt.Errorf("invalid color %q: outside the 256 palette", s)
	}
	return Color8(idx), nil
}

func (c Color8) String() string {
	return strconv.Itoa(int(c))
}

// Set implements flag.Value
func (c *Color8) Set(s string) error {
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
