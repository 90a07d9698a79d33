// Package board holds the 8x8 tile grid and the piece arena. Tiles
// reference pieces by PieceID only; the arena is the single owner of
// piece state, so a captured piece stays alive (positionless) and can
// be restored later by an undo.
package board

import (
	"fmt"

	"chess/internal/core"
)

const Size = 8

// Piece is an identity-bearing token with a type, a team, and a
// position that is only meaningful while InPlay is true.
type Piece struct {
	ID     core.PieceID
	Type   core.PieceType
	Team   core.Team
	Pos    core.Coord
	InPlay bool
	Moved  bool
}

// Code returns the two-character display code, e.g. "wP".
func (p Piece) Code() string {
	return core.PieceCode(p.Team, p.Type)
}

// Tile is one fixed board cell holding at most one occupant.
type Tile struct {
	Coord    core.Coord
	Occupant core.PieceID // core.NoPiece when empty
}

// Board owns all 64 tiles and the piece arena. Piece IDs start at 1;
// index 0 of the arena is unused so that core.NoPiece never resolves.
type Board struct {
	tiles  [Size][Size]Tile
	pieces []Piece
}

var backRank = []core.PieceType{
	core.Rook, core.Knight, core.Bishop, core.Queen,
	core.King, core.Bishop, core.Knight, core.Rook,
}

// New creates a board with the standard starting layout: black pieces
// on rows 0-1, white pieces on rows 6-7.
func New() *Board {
	b := empty()

	b.setUpRow(0, backRank, core.TeamBlack)
	b.setUpPawns(1, core.TeamBlack)
	b.setUpPawns(6, core.TeamWhite)
	b.setUpRow(7, backRank, core.TeamWhite)

	return b
}

func empty() *Board {
	b := &Board{
		pieces: make([]Piece, 1), // index 0 reserved for NoPiece
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.tiles[r][c] = Tile{Coord: core.Coord{Row: r, Col: c}}
		}
	}
	return b
}

func (b *Board) setUpRow(row int, layout []core.PieceType, team core.Team) {
	for col, pt := range layout {
		id := b.spawn(pt, team)
		b.Place(id, core.Coord{Row: row, Col: col})
	}
}

func (b *Board) setUpPawns(row int, team core.Team) {
	for col := 0; col < Size; col++ {
		id := b.spawn(core.Pawn, team)
		b.Place(id, core.Coord{Row: row, Col: col})
	}
}

// spawn adds a new piece to the arena, not yet on any tile.
func (b *Board) spawn(pt core.PieceType, team core.Team) core.PieceID {
	id := core.PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{ID: id, Type: pt, Team: team})
	return id
}

// InBounds reports whether both coordinate components lie in [0,7].
func (b *Board) InBounds(c core.Coord) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// TileAt returns the tile at c, or an error when c is out of bounds.
func (b *Board) TileAt(c core.Coord) (Tile, error) {
	if !b.InBounds(c) {
		return Tile{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	return b.tiles[c.Row][c.Col], nil
}

// PieceAt returns the occupant of c, or core.NoPiece when the tile is
// empty or c is out of bounds.
func (b *Board) PieceAt(c core.Coord) core.PieceID {
	if !b.InBounds(c) {
		return core.NoPiece
	}
	return b.tiles[c.Row][c.Col].Occupant
}

// Get resolves a piece ID against the arena. Returns false for
// core.NoPiece and for IDs the arena never issued.
func (b *Board) Get(id core.PieceID) (Piece, bool) {
	if id <= core.NoPiece || int(id) >= len(b.pieces) {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Place moves the piece to dest. Any other piece occupying dest is
// detached: its position is cleared but it remains in the arena. The
// moving piece's current tile, if any, is vacated first. A piece placed
// on the tile it already occupies is left undisturbed rather than
// detached from itself.
func (b *Board) Place(id core.PieceID, dest core.Coord) error {
	if !b.InBounds(dest) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, dest.Row, dest.Col)
	}
	if id <= core.NoPiece || int(id) >= len(b.pieces) {
		return fmt.Errorf("%w: %d", ErrUnknownPiece, id)
	}

	p := &b.pieces[id]

	if occ := b.tiles[dest.Row][dest.Col].Occupant; occ != core.NoPiece && occ != id {
		b.pieces[occ].InPlay = false
		b.pieces[occ].Pos = core.Coord{}
	}

	if p.InPlay {
		b.tiles[p.Pos.Row][p.Pos.Col].Occupant = core.NoPiece
		p.Moved = true
	}

	b.tiles[dest.Row][dest.Col].Occupant = id
	p.Pos = dest
	p.InPlay = true

	return nil
}

// Pieces returns a copy of the arena in ID order, including detached
// (captured) pieces.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces)-1)
	copy(out, b.pieces[1:])
	return out
}

// ASCII renders the board as two-character piece codes with ".." for
// empty tiles, ranks 8 down to 1, with a file-letter footer.
func (b *Board) ASCII() string {
	out := make([]byte, 0, 512)
	for r := 0; r < Size; r++ {
		out = append(out, byte('8'-r), ' ')
		for c := 0; c < Size; c++ {
			if id := b.tiles[r][c].Occupant; id == core.NoPiece {
				out = append(out, '.', '.')
			} else {
				out = append(out, b.pieces[id].Code()...)
			}
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}
	out = append(out, ' ', ' ')
	for c := 0; c < Size; c++ {
		out = append(out, byte('a'+c), ' ', ' ')
	}
	return string(out)
}
