// Package console implements the text-command surface: a view over an
// output writer and line source, and a dispatcher that maps command
// names to arity-checked handlers.
package console

import (
	"bufio"
	"fmt"
	"io"

	"chess/internal/board"
	"chess/internal/core"
)

// LineSource supplies one command string per request. Implementations
// may be interactive (readline) or scripted (tests).
type LineSource interface {
	ReadLine() (string, error)
}

// ScannerSource adapts any reader into a LineSource.
type ScannerSource struct {
	s *bufio.Scanner
}

func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{s: bufio.NewScanner(r)}
}

func (s *ScannerSource) ReadLine() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.s.Text(), nil
}

type Theme string

const (
	ThemeOff   Theme = "off"
	ThemeBrown Theme = "brown"
	ThemeGreen Theme = "green"
	ThemeGray  Theme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[Theme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// Console renders messages and board state and reads confirmation
// lines. It holds no game state of its own.
type Console struct {
	src   LineSource
	out   io.Writer
	theme Theme
}

func New(src LineSource, out io.Writer) *Console {
	return &Console{
		src:   src,
		out:   out,
		theme: ThemeOff,
	}
}

func (c *Console) SetTheme(theme Theme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *Console) ShowMessage(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) ShowError(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) ShowPrompt(prompt string) {
	fmt.Fprint(c.out, prompt)
}

func (c *Console) ReadLine() (string, error) {
	return c.src.ReadLine()
}

// DisplayBoard renders the grid as two-character piece codes with ".."
// for empty tiles, ranks 8 down to 1, with a file-letter footer.
func (c *Console) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb []byte

	for r := 0; r < board.Size; r++ {
		sb = append(sb, byte('8'-r), ' ')
		for f := 0; f < board.Size; f++ {
			cell := ".."
			pieceWhite := false
			if id := b.PieceAt(core.Coord{Row: r, Col: f}); id != core.NoPiece {
				p, _ := b.Get(id)
				cell = p.Code()
				pieceWhite = p.Team == core.TeamWhite
			}

			if c.theme == ThemeOff {
				sb = append(sb, cell...)
				sb = append(sb, ' ')
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}
			fg := theme.black
			if pieceWhite {
				fg = theme.white
			}
			sb = append(sb, bg...)
			sb = append(sb, fg...)
			sb = append(sb, cell...)
			sb = append(sb, ' ')
			sb = append(sb, theme.reset...)
		}
		sb = append(sb, '\n')
	}
	sb = append(sb, ' ', ' ')
	for f := 0; f < board.Size; f++ {
		sb = append(sb, byte('a'+f), ' ', ' ')
	}

	c.ShowMessage(string(sb))
}
