// Package notation translates between two-character algebraic
// coordinates ("a7") and internal row/column coordinates. Both
// directions are pure, synchronous functions.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"chess/internal/core"
)

const files = "abcdefgh"

var ErrInvalidNotation = errors.New("invalid notation")

// Parse converts a coordinate like "a7" to its internal form. The file
// letter maps to the column and the rank digit maps to row 8-digit, so
// "a8" is (0,0) and "h1" is (7,7).
func Parse(text string) (core.Coord, error) {
	if len(text) != 2 {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}

	col := strings.IndexByte(files, text[0])
	if col < 0 {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}

	if text[1] < '0' || text[1] > '9' {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	row := 8 - int(text[1]-'0')
	if row < 0 || row > 7 {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}

	return core.Coord{Row: row, Col: col}, nil
}

// Format is the inverse of Parse for in-bounds coordinates.
func Format(c core.Coord) (string, error) {
	if c.Row < 0 || c.Row > 7 || c.Col < 0 || c.Col > 7 {
		return "", fmt.Errorf("%w: (%d,%d)", ErrInvalidNotation, c.Row, c.Col)
	}
	return string([]byte{files[c.Col], byte('8' - c.Row)}), nil
}
