package terminal

import (
	"fmt"
	"strings"
)

// Channel selects which SGR colour slot paints a lit cell
type Channel uint8

const (
	// ChannelBackground colours blank cells through 48;5;N, reset with 49.
	// Matches the escape stream of the original clock byte for byte.
	ChannelBackground Channel = iota
	// ChannelForeground draws full blocks coloured through 38;5;N, reset with 39
	ChannelForeground
)

var blockCell = []byte("█")

// ParseChannel accepts "bg"/"background" and "fg"/"foreground"
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bg", "background":
		return ChannelBackground, nil
	case "fg", "foreground":
		return ChannelForeground, nil
	}
	return 0, fmt.Errorf("invalid paint channel %q (use bg or fg)", s)
}

func (c Channel) String() string {
	if c == ChannelForeground {
		return "fg"
	}
	return "bg"
}

// Set implements flag.Value
func (c *Channel) Set(s string) error {
	v, err := ParseChannel(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AppendLit appends a coloured run of n cells
func (c Channel) AppendLit(b []byte, color Color8, n int) []byte {
	if c == ChannelForeground {
		b = append(b, csiFg256...)
		b = AppendInt(b, int(color))
		b = append(b, 'm')
		for i := 0; i < n; i++ {
			b = append(b, blockCell...)
		}
		return b
	}
	b = append(b, csiBg256...)
	b = AppendInt(b, int(color))
	b = append(b, 'm')
	return appendSpaces(b, n)
}

// AppendUnlit appends a run of n cells in the terminal's default colours
func (c Channel) AppendUnlit(b []byte, n int) []byte {
	if c == ChannelForeground {
		b = append(b, csiDefaultFg...)
	} else {
		b = append(b, csiDefaultBg...)
	}
	return appendSpaces(b, n)
}

func appendSpaces(b []byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, ' ')
	}
	return b
}
