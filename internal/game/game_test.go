package game

import (
	"errors"
	"testing"

	"chess/internal/board"
	"chess/internal/core"
)

func occupancy(b *board.Board) map[core.Coord]string {
	out := make(map[core.Coord]string)
	for _, p := range b.Pieces() {
		if p.InPlay {
			out[p.Pos] = p.Code()
		}
	}
	return out
}

func sameOccupancy(t *testing.T, got, want map[core.Coord]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("occupancy count %d, want %d", len(got), len(want))
	}
	for c, code := range want {
		if got[c] != code {
			t.Errorf("tile %v: got %q, want %q", c, got[c], code)
		}
	}
}

func TestApplyRecordsHistory(t *testing.T) {
	g := New()

	m, err := g.Apply(core.Coord{Row: 1, Col: 0}, core.Coord{Row: 3, Col: 0})
	if err != nil {
		t.Fatal(err)
	}
	if m.Captured != core.NoPiece {
		t.Errorf("quiet move recorded capture %d", m.Captured)
	}
	if len(g.History()) != 1 {
		t.Fatalf("history length %d, want 1", len(g.History()))
	}
	if got := occupancy(g.Board())[core.Coord{Row: 3, Col: 0}]; got != "bP" {
		t.Errorf("pawn not at destination, got %q", got)
	}
}

func TestApplyEmptySource(t *testing.T) {
	g := New()
	before := occupancy(g.Board())

	_, err := g.Apply(core.Coord{Row: 4, Col: 4}, core.Coord{Row: 5, Col: 4})
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}

	sameOccupancy(t, occupancy(g.Board()), before)
	if len(g.History()) != 0 {
		t.Error("failed move left a history record")
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	g := New()
	if _, err := g.Apply(core.Coord{Row: 1, Col: 0}, core.Coord{Row: 8, Col: 0}); !errors.Is(err, board.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if len(g.History()) != 0 {
		t.Error("failed move left a history record")
	}
}

func TestCaptureAndUndoRestores(t *testing.T) {
	g := New()
	before := occupancy(g.Board())

	// White pawn walks onto the black pawn at (1,1).
	steps := [][2]core.Coord{
		{{Row: 6, Col: 1}, {Row: 4, Col: 1}},
		{{Row: 4, Col: 1}, {Row: 3, Col: 1}},
		{{Row: 3, Col: 1}, {Row: 2, Col: 1}},
		{{Row: 2, Col: 1}, {Row: 1, Col: 1}},
	}
	for _, s := range steps {
		if _, err := g.Apply(s[0], s[1]); err != nil {
			t.Fatal(err)
		}
	}

	last := g.History()[len(g.History())-1]
	if last.Captured == core.NoPiece {
		t.Fatal("capture not recorded")
	}
	victim, _ := g.Board().Get(last.Captured)
	if victim.InPlay {
		t.Error("captured piece still in play")
	}

	for range steps {
		if _, err := g.Undo(); err != nil {
			t.Fatal(err)
		}
	}

	sameOccupancy(t, occupancy(g.Board()), before)
	if len(g.History()) != 0 {
		t.Errorf("history not empty after full undo: %d", len(g.History()))
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	g := New()
	before := occupancy(g.Board())

	if _, err := g.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}

	sameOccupancy(t, occupancy(g.Board()), before)
}

// Undo restores occupancy but deliberately leaves the Moved flag set;
// nothing in the relocation bookkeeping consumes it.
func TestUndoKeepsMovedFlag(t *testing.T) {
	g := New()
	src := core.Coord{Row: 6, Col: 0}

	g.Apply(src, core.Coord{Row: 4, Col: 0})
	g.Undo()

	p, _ := g.Board().Get(g.Board().PieceAt(src))
	if !p.Moved {
		t.Error("undo reset the Moved flag")
	}
}

// N arbitrary moves, then N undos, must restore the starting occupancy
// tile-for-tile regardless of captures along the way.
func TestUndoSequenceRestoresInitialBoard(t *testing.T) {
	g := New()
	before := occupancy(g.Board())

	moves := [][2]string{
		{"a7", "a5"},
		{"b2", "b4"},
		{"a5", "b4"}, // capture
		{"a8", "a1"}, // rook crashes through, capture
		{"a1", "b1"}, // capture
		{"h2", "h3"},
	}
	for _, mv := range moves {
		from := mustCoord(t, mv[0])
		to := mustCoord(t, mv[1])
		if _, err := g.Apply(from, to); err != nil {
			t.Fatalf("apply %s %s: %v", mv[0], mv[1], err)
		}
	}

	for i := len(moves); i > 0; i-- {
		if _, err := g.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}

	sameOccupancy(t, occupancy(g.Board()), before)
}

func TestSelfMoveDoesNotSelfCapture(t *testing.T) {
	g := New()
	src := core.Coord{Row: 6, Col: 0}

	m, err := g.Apply(src, src)
	if err != nil {
		t.Fatal(err)
	}
	if m.Captured != core.NoPiece {
		t.Errorf("self-move recorded capture %d", m.Captured)
	}

	if _, err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := g.Board().PieceAt(src); got == core.NoPiece {
		t.Error("piece lost after self-move undo")
	}
	if len(occupancy(g.Board())) != 32 {
		t.Error("self-move changed occupancy count")
	}
}

func TestRestoreKeepsHistory(t *testing.T) {
	g := New()
	g.Apply(core.Coord{Row: 6, Col: 0}, core.Coord{Row: 4, Col: 0})
	g.Apply(core.Coord{Row: 1, Col: 0}, core.Coord{Row: 3, Col: 0})

	clone := Restore(g.Board(), g.History())
	if len(clone.History()) != 2 {
		t.Fatalf("restored history length %d, want 2", len(clone.History()))
	}

	// The restored game can undo the original's moves.
	if _, err := clone.Undo(); err != nil {
		t.Fatal(err)
	}
}

func mustCoord(t *testing.T, text string) core.Coord {
	t.Helper()
	col := int(text[0] - 'a')
	row := 8 - int(text[1]-'0')
	return core.Coord{Row: row, Col: col}
}
