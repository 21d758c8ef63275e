package font

import (
	"errors"
	"testing"
)

func TestPackLayout(t *testing.T) {
	// 3x2 glyph: top row "100", bottom row "011"
	g := Pack(3, 0b100, 0b011)

	want := [2][3]bool{
		{true, false, false},
		{false, true, true},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := g.Lit(x, y, 3); got != want[y][x] {
				t.Errorf("Lit(%d,%d) = %v, want %v", x, y, got, want[y][x])
			}
		}
	}

	// Row 0 lives in the low bits, column 0 is the high bit of the row
	if g != Glyph(0b011_100) {
		t.Errorf("Pack = %b, want %b", g, 0b011_100)
	}
}

func TestRegistryFonts(t *testing.T) {
	tests := []struct {
		index      int
		w, h       int
		twelveHour bool
	}{
		{0, 5, 7, true},
		{1, 3, 5, true},
		{2, 4, 7, false},
	}

	if Count() != len(tests) {
		t.Fatalf("Count() = %d, want %d", Count(), len(tests))
	}

	for _, tt := range tests {
		f, err := Lookup(tt.index)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", tt.index, err)
		}
		if f.Width() != tt.w || f.Height() != tt.h {
			t.Errorf("font %d: size %dx%d, want %dx%d", tt.index, f.Width(), f.Height(), tt.w, tt.h)
		}
		if f.SupportsTwelveHour() != tt.twelveHour {
			t.Errorf("font %d: SupportsTwelveHour = %v, want %v", tt.index, f.SupportsTwelveHour(), tt.twelveHour)
		}
		for d := Symbol(0); d <= 9; d++ {
			if f.Glyph(d) == 0 {
				t.Errorf("font %d: digit %d is blank", tt.index, d)
			}
		}
		if f.Glyph(Space) != 0 {
			t.Errorf("font %d: space glyph is not blank", tt.index)
		}
	}
}

func TestDigitsAreDistinct(t *testing.T) {
	for i := 0; i < Count(); i++ {
		f, _ := Lookup(i)
		seen := make(map[Glyph]Symbol)
		for d := Symbol(0); d <= 9; d++ {
			if prev, ok := seen[f.Glyph(d)]; ok {
				t.Errorf("font %d: digits %d and %d share a glyph", i, prev, d)
			}
			seen[f.Glyph(d)] = d
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		twelveHour bool
		wantErr    error
	}{
		{"default font", 0, false, nil},
		{"small font 12h", 1, true, nil},
		{"segment font 24h", 2, false, nil},
		{"segment font 12h", 2, true, ErrNoTwelveHour},
		{"negative index", -1, false, ErrUnknownFont},
		{"past the end", 3, false, ErrUnknownFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.index, tt.twelveHour)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate(%d, %v) = %v, want %v", tt.index, tt.twelveHour, err, tt.wantErr)
			}
		})
	}
}

func TestNewRejectsBadFonts(t *testing.T) {
	digits := func(w int) map[Symbol]Glyph {
		m := make(map[Symbol]Glyph)
		for d := Symbol(0); d <= 9; d++ {
			m[d] = Glyph(d + 1)
		}
		return m
	}

	if _, err := New("huge", 9, 9, digits(9)); !errors.Is(err, ErrGlyphTooBig) {
		t.Errorf("9x9 font: got %v, want ErrGlyphTooBig", err)
	}

	missing := digits(3)
	delete(missing, 7)
	if _, err := New("gap", 3, 5, missing); err == nil {
		t.Error("font without digit 7 was accepted")
	}

	overflow := digits(2)
	overflow[Colon] = 1 << 10
	if _, err := New("overflow", 2, 2, overflow); err == nil {
		t.Error("glyph with bits outside 2x2 was accepted")
	}

	if _, err := New("full", 8, 8, digits(8)); err != nil {
		t.Errorf("8x8 font rejected: %v", err)
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	f, _ := Lookup(0)
	if f.Glyph(-1) != 0 || f.Glyph(SymbolCount) != 0 {
		t.Error("out of range symbols should yield blank glyphs")
	}
	if f.Has(SymbolCount) {
		t.Error("Has(SymbolCount) = true")
	}
}
