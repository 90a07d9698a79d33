package notation

import (
	"errors"
	"testing"

	"chess/internal/core"
)

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want core.Coord
	}{
		{"a8", core.Coord{Row: 0, Col: 0}},
		{"a7", core.Coord{Row: 1, Col: 0}},
		{"a1", core.Coord{Row: 7, Col: 0}},
		{"h8", core.Coord{Row: 0, Col: 7}},
		{"h1", core.Coord{Row: 7, Col: 7}},
		{"e4", core.Coord{Row: 4, Col: 4}},
		{"d5", core.Coord{Row: 3, Col: 3}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",     // empty
		"a",    // too short
		"a77",  // too long
		"i5",   // file out of range
		"A5",   // uppercase file
		"aa",   // rank not a digit
		"a0",   // rank below range
		"a9",   // rank above range
		"5a",   // swapped
	}

	for _, text := range cases {
		if _, err := Parse(text); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("Parse(%q): expected ErrInvalidNotation, got %v", text, err)
		}
	}
}

func TestFormatInvalid(t *testing.T) {
	cases := []core.Coord{
		{Row: -1, Col: 0},
		{Row: 8, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 8},
	}

	for _, c := range cases {
		if _, err := Format(c); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("Format(%v): expected ErrInvalidNotation, got %v", c, err)
		}
	}
}

// Round-trip law: parse(format(c)) == c for all in-bounds coordinates,
// and format(parse(text)) == text for every well-formed input.
func TestRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := core.Coord{Row: row, Col: col}
			text, err := Format(c)
			if err != nil {
				t.Fatalf("Format(%v): %v", c, err)
			}
			back, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", text, err)
			}
			if back != c {
				t.Errorf("round trip (%v -> %q -> %v) lost the coordinate", c, text, back)
			}
		}
	}

	for _, file := range "abcdefgh" {
		for _, rank := range "12345678" {
			text := string(file) + string(rank)
			c, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", text, err)
			}
			back, err := Format(c)
			if err != nil {
				t.Fatalf("Format(%v): %v", c, err)
			}
			if back != text {
				t.Errorf("round trip (%q -> %v -> %q) lost the notation", text, c, back)
			}
		}
	}
}
