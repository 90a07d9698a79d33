package board

import (
	"fmt"

	"chess/internal/core"
)

// Restore rebuilds a board from an arena snapshot, as produced by
// Pieces. IDs must be contiguous from 1, and in-play positions must be
// in bounds and mutually distinct so that piece-tile consistency holds
// on the rebuilt board.
func Restore(pieces []Piece) (*Board, error) {
	b := empty()

	for i, p := range pieces {
		want := core.PieceID(i + 1)
		if p.ID != want {
			return nil, fmt.Errorf("%w: piece id %d at index %d", ErrBadSnapshot, p.ID, i)
		}
		if p.InPlay {
			if !b.InBounds(p.Pos) {
				return nil, fmt.Errorf("%w: piece %d off board at (%d,%d)",
					ErrBadSnapshot, p.ID, p.Pos.Row, p.Pos.Col)
			}
			if occ := b.tiles[p.Pos.Row][p.Pos.Col].Occupant; occ != core.NoPiece {
				return nil, fmt.Errorf("%w: pieces %d and %d share tile (%d,%d)",
					ErrBadSnapshot, occ, p.ID, p.Pos.Row, p.Pos.Col)
			}
			b.tiles[p.Pos.Row][p.Pos.Col].Occupant = p.ID
		} else {
			p.Pos = core.Coord{}
		}
		b.pieces = append(b.pieces, p)
	}

	return b, nil
}
