// Package game pairs a board with a reversible move history. It does
// relocation bookkeeping only: there is no legality checking, no turn
// order, and no game result.
package game

import (
	"errors"
	"fmt"

	"chess/internal/board"
	"chess/internal/core"
)

var (
	ErrEmptySource  = errors.New("no piece at source tile")
	ErrEmptyHistory = errors.New("no moves to undo")
)

// Move records one board mutation so it can be undone: where the piece
// came from, where it went, and the ID of any piece that was detached
// from the destination.
type Move struct {
	From     core.Coord
	To       core.Coord
	Captured core.PieceID
}

type Game struct {
	board   *board.Board
	history []Move
}

// New creates a game with the standard starting layout and an empty
// move history.
func New() *Game {
	return &Game{board: board.New()}
}

// Restore rebuilds a game from a board and its move history, as
// produced by Board and History. Used by the persistence layer.
func Restore(b *board.Board, history []Move) *Game {
	g := &Game{board: b}
	g.history = append(g.history, history...)
	return g
}

func (g *Game) Board() *board.Board {
	return g.board
}

// History returns a copy of the move stack, oldest first.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// Apply moves whatever piece stands at from to to, detaching any
// occupant of to, and pushes the move onto the history stack. Both
// coordinates are validated before any mutation.
func (g *Game) Apply(from, to core.Coord) (Move, error) {
	if !g.board.InBounds(from) || !g.board.InBounds(to) {
		return Move{}, fmt.Errorf("%w: move (%d,%d) to (%d,%d)",
			board.ErrOutOfBounds, from.Row, from.Col, to.Row, to.Col)
	}

	id := g.board.PieceAt(from)
	if id == core.NoPiece {
		return Move{}, fmt.Errorf("%w: (%d,%d)", ErrEmptySource, from.Row, from.Col)
	}

	captured := g.board.PieceAt(to)
	if captured == id {
		// Moving a piece onto its own tile captures nothing.
		captured = core.NoPiece
	}

	if err := g.board.Place(id, to); err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to, Captured: captured}
	g.history = append(g.history, m)
	return m, nil
}

// Undo pops the most recent move, relocates the moved piece back to
// its source tile, and restores any captured piece to the destination.
// The moved piece keeps its Moved flag; occupancy is what is restored.
func (g *Game) Undo() (Move, error) {
	if len(g.history) == 0 {
		return Move{}, ErrEmptyHistory
	}

	m := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	moved := g.board.PieceAt(m.To)
	if moved != core.NoPiece {
		if err := g.board.Place(moved, m.From); err != nil {
			return Move{}, err
		}
	}
	if m.Captured != core.NoPiece {
		if err := g.board.Place(m.Captured, m.To); err != nil {
			return Move{}, err
		}
	}

	return m, nil
}
