package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"chess/internal/core"
	"chess/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "chess.db"))
	require.NoError(t, err)
	require.NoError(t, s.InitDB())
	t.Cleanup(func() { s.Close() })
	return s
}

func occupancy(g *game.Game) map[core.Coord]string {
	out := make(map[core.Coord]string)
	for _, p := range g.Board().Pieces() {
		if p.InPlay {
			out[p.Pos] = p.Code()
		}
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	g := game.New()
	_, err := g.Apply(core.Coord{Row: 6, Col: 4}, core.Coord{Row: 4, Col: 4})
	require.NoError(t, err)
	_, err = g.Apply(core.Coord{Row: 1, Col: 3}, core.Coord{Row: 4, Col: 4}) // capture
	require.NoError(t, err)

	require.NoError(t, s.SaveGame(DefaultSlot, g))

	loaded, err := s.LoadGame(DefaultSlot)
	require.NoError(t, err)

	require.Equal(t, occupancy(g), occupancy(loaded))
	require.Equal(t, g.History(), loaded.History())

	// The loaded game must behave like the original: undoing the
	// capture restores the white pawn.
	_, err = loaded.Undo()
	require.NoError(t, err)
	require.Equal(t, "wP", pieceCodeAt(loaded, core.Coord{Row: 4, Col: 4}))
	_, err = loaded.Undo()
	require.NoError(t, err)
	require.Equal(t, occupancy(game.New()), occupancy(loaded))
}

func TestLoadMissingSlot(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadGame("nope")
	require.ErrorIs(t, err, ErrNoSave)
}

func TestSaveOverwritesSlot(t *testing.T) {
	s := newTestStore(t)

	g1 := game.New()
	_, err := g1.Apply(core.Coord{Row: 6, Col: 0}, core.Coord{Row: 4, Col: 0})
	require.NoError(t, err)
	require.NoError(t, s.SaveGame(DefaultSlot, g1))

	g2 := game.New()
	require.NoError(t, s.SaveGame(DefaultSlot, g2))

	loaded, err := s.LoadGame(DefaultSlot)
	require.NoError(t, err)
	require.Empty(t, loaded.History())
	require.Equal(t, occupancy(g2), occupancy(loaded))
}

func TestSaveKeepsCapturedPieces(t *testing.T) {
	s := newTestStore(t)

	g := game.New()
	// March the a-pawn into the black pawn.
	for _, mv := range [][2]core.Coord{
		{{Row: 6, Col: 0}, {Row: 4, Col: 0}},
		{{Row: 4, Col: 0}, {Row: 2, Col: 0}},
		{{Row: 2, Col: 0}, {Row: 1, Col: 0}},
	} {
		_, err := g.Apply(mv[0], mv[1])
		require.NoError(t, err)
	}

	require.NoError(t, s.SaveGame(DefaultSlot, g))
	loaded, err := s.LoadGame(DefaultSlot)
	require.NoError(t, err)

	// All 32 arena pieces survive the round trip, including the
	// detached one that undo may restore.
	require.Len(t, loaded.Board().Pieces(), 32)

	for i := 0; i < 3; i++ {
		_, err = loaded.Undo()
		require.NoError(t, err)
	}
	require.Equal(t, occupancy(game.New()), occupancy(loaded))
}

func pieceCodeAt(g *game.Game, c core.Coord) string {
	p, ok := g.Board().Get(g.Board().PieceAt(c))
	if !ok {
		return ""
	}
	return p.Code()
}
