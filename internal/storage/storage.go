// Package storage persists complete game snapshots to SQLite. A save
// round-trips the whole object graph: every arena piece (including
// captured ones, which undo may still restore) and the full move
// history, so a loaded game behaves exactly like the one saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chess/internal/board"
	"chess/internal/core"
	"chess/internal/game"
)

var ErrNoSave = errors.New("no saved game in slot")

// Store handles SQLite database operations. Saves and loads are
// synchronous: the caller needs to know the outcome before reporting.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the database file.
func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.SetMaxOpenConns(1)

	return &Store{db: db, path: dataSourceName}, nil
}

// InitDB creates the database schema
func (s *Store) InitDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame snapshots the game into the slot, replacing any existing
// save there in a single transaction.
func (s *Store) SaveGame(slot string, g *game.Game) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades into save_pieces and save_moves
	if _, err := tx.Exec(`DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("failed to clear slot: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO saves (slot, saved_at_utc) VALUES (?, ?)`,
		slot, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}

	pieceStmt, err := tx.Prepare(`INSERT INTO save_pieces
		(slot, piece_id, piece_type, team, in_play, row, col, moved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare piece insert: %w", err)
	}
	defer pieceStmt.Close()

	for _, p := range g.Board().Pieces() {
		_, err := pieceStmt.Exec(slot, int(p.ID), string(p.Type), string(p.Team),
			p.InPlay, p.Pos.Row, p.Pos.Col, p.Moved)
		if err != nil {
			return fmt.Errorf("failed to save piece %d: %w", p.ID, err)
		}
	}

	moveStmt, err := tx.Prepare(`INSERT INTO save_moves
		(slot, seq, from_row, from_col, to_row, to_col, captured_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer moveStmt.Close()

	for i, m := range g.History() {
		_, err := moveStmt.Exec(slot, i, m.From.Row, m.From.Col, m.To.Row, m.To.Col, int(m.Captured))
		if err != nil {
			return fmt.Errorf("failed to save move %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadGame reconstructs the game saved in the slot. The result is
// behaviorally indistinguishable from the game that was saved.
func (s *Store) LoadGame(slot string) (*game.Game, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM saves WHERE slot = ?`, slot).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSave, slot)
	}

	pieces, err := s.loadPieces(slot)
	if err != nil {
		return nil, err
	}

	b, err := board.Restore(pieces)
	if err != nil {
		return nil, fmt.Errorf("corrupt save: %w", err)
	}

	history, err := s.loadMoves(slot)
	if err != nil {
		return nil, err
	}

	return game.Restore(b, history), nil
}

func (s *Store) loadPieces(slot string) ([]board.Piece, error) {
	rows, err := s.db.Query(`SELECT piece_id, piece_type, team, in_play, row, col, moved
		FROM save_pieces WHERE slot = ? ORDER BY piece_id`, slot)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pieces []board.Piece
	for rows.Next() {
		var pr PieceRow
		if err := rows.Scan(&pr.PieceID, &pr.PieceType, &pr.Team,
			&pr.InPlay, &pr.Row, &pr.Col, &pr.Moved); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if len(pr.PieceType) != 1 || len(pr.Team) != 1 {
			return nil, fmt.Errorf("corrupt save: piece %d has bad type or team", pr.PieceID)
		}
		pieces = append(pieces, board.Piece{
			ID:     core.PieceID(pr.PieceID),
			Type:   core.PieceType(pr.PieceType[0]),
			Team:   core.Team(pr.Team[0]),
			Pos:    core.Coord{Row: pr.Row, Col: pr.Col},
			InPlay: pr.InPlay,
			Moved:  pr.Moved,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return pieces, nil
}

func (s *Store) loadMoves(slot string) ([]game.Move, error) {
	rows, err := s.db.Query(`SELECT from_row, from_col, to_row, to_col, captured_id
		FROM save_moves WHERE slot = ? ORDER BY seq`, slot)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var history []game.Move
	for rows.Next() {
		var mr MoveRow
		if err := rows.Scan(&mr.FromRow, &mr.FromCol, &mr.ToRow, &mr.ToCol, &mr.CapturedID); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		history = append(history, game.Move{
			From:     core.Coord{Row: mr.FromRow, Col: mr.FromCol},
			To:       core.Coord{Row: mr.ToRow, Col: mr.ToCol},
			Captured: core.PieceID(mr.CapturedID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return history, nil
}
