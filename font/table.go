package font

import "fmt"

// registry order defines the user-facing font index; append only
var registry = []*Font{
	mustFont(New("5x7", 5, 7, map[Symbol]Glyph{
		0:     Pack(5, 0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110),
		1:     Pack(5, 0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110),
		2:     Pack(5, 0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111),
		3:     Pack(5, 0b11111, 0b00010, 0b00100, 0b00010, 0b00001, 0b10001, 0b01110),
		4:     Pack(5, 0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010),
		5:     Pack(5, 0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110),
		6:     Pack(5, 0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110),
		7:     Pack(5, 0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000),
		8:     Pack(5, 0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110),
		9:     Pack(5, 0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100),
		Colon: Pack(5, 0b00000, 0b00100, 0b00100, 0b00000, 0b00100, 0b00100, 0b00000),
		Space: 0,
		A:     Pack(5, 0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001),
		P:     Pack(5, 0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000),
		M:     Pack(5, 0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001),
	})),
	mustFont(New("3x5", 3, 5, map[Symbol]Glyph{
		0:     Pack(3, 0b111, 0b101, 0b101, 0b101, 0b111),
		1:     Pack(3, 0b010, 0b110, 0b010, 0b010, 0b111),
		2:     Pack(3, 0b111, 0b001, 0b111, 0b100, 0b111),
		3:     Pack(3, 0b111, 0b001, 0b111, 0b001, 0b111),
		4:     Pack(3, 0b101, 0b101, 0b111, 0b001, 0b001),
		5:     Pack(3, 0b111, 0b100, 0b111, 0b001, 0b111),
		6:     Pack(3, 0b111, 0b100, 0b111, 0b101, 0b111),
		7:     Pack(3, 0b111, 0b001, 0b001, 0b001, 0b001),
		8:     Pack(3, 0b111, 0b101, 0b111, 0b101, 0b111),
		9:     Pack(3, 0b111, 0b101, 0b111, 0b001, 0b111),
		Colon: Pack(3, 0b000, 0b010, 0b000, 0b010, 0b000),
		Space: 0,
		A:     Pack(3, 0b010, 0b101, 0b111, 0b101, 0b101),
		P:     Pack(3, 0b110, 0b101, 0b110, 0b100, 0b100),
		M:     Pack(3, 0b101, 0b111, 0b111, 0b101, 0b101),
	})),
	// Segment style, digits only
	mustFont(New("4x7", 4, 7, map[Symbol]Glyph{
		0:     Pack(4, 0b1111, 0b1001, 0b1001, 0b1001, 0b1001, 0b1001, 0b1111),
		1:     Pack(4, 0b0001, 0b0001, 0b0001, 0b0001, 0b0001, 0b0001, 0b0001),
		2:     Pack(4, 0b1111, 0b0001, 0b0001, 0b1111, 0b1000, 0b1000, 0b1111),
		3:     Pack(4, 0b1111, 0b0001, 0b0001, 0b1111, 0b0001, 0b0001, 0b1111),
		4:     Pack(4, 0b1001, 0b1001, 0b1001, 0b1111, 0b0001, 0b0001, 0b0001),
		5:     Pack(4, 0b1111, 0b1000, 0b1000, 0b1111, 0b0001, 0b0001, 0b1111),
		6:     Pack(4, 0b1111, 0b1000, 0b1000, 0b1111, 0b1001, 0b1001, 0b1111),
		7:     Pack(4, 0b1111, 0b0001, 0b0001, 0b0001, 0b0001, 0b0001, 0b0001),
		8:     Pack(4, 0b1111, 0b1001, 0b1001, 0b1111, 0b1001, 0b1001, 0b1111),
		9:     Pack(4, 0b1111, 0b1001, 0b1001, 0b1111, 0b0001, 0b0001, 0b1111),
		Colon: Pack(4, 0b0000, 0b0000, 0b0110, 0b0000, 0b0110, 0b0000, 0b0000),
		Space: 0,
	})),
}

func mustFont(f *Font, err error) *Font {
	if err != nil {
		panic(err)
	}
	return f
}

// Count returns the number of registered fonts
func Count() int { return len(registry) }

// Lookup returns the font registered at index
func Lookup(index int) (*Font, error) {
	if index < 0 || index >= len(registry) {
		return nil, fmt.Errorf("%w: %d (valid: 0-%d)", ErrUnknownFont, index, len(registry)-1)
	}
	return registry[index], nil
}

// Validate checks a font selection at configuration time
func Validate(index int, twelveHour bool) error {
	f, err := Lookup(index)
	if err != nil {
		return err
	}
	if twelveHour && !f.SupportsTwelveHour() {
		return fmt.Errorf("font %d %s: %w", index, f, ErrNoTwelveHour)
	}
	return nil
}

// Describe lists registered fonts as "index: name" for help text
func Describe() string {
	s := ""
	for i, f := range registry {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d: %dx%d", i, f.width, f.height)
		if !f.SupportsTwelveHour() {
			s += " (24h only)"
		}
	}
	return s
}
