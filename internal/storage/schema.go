package storage

import "time"

// DefaultSlot is the single slot the console uses. The HTTP API may
// address others.
const DefaultSlot = "default"

// SaveRecord represents a row in the saves table
type SaveRecord struct {
	Slot       string    `db:"slot"`
	SavedAtUTC time.Time `db:"saved_at_utc"`
}

// PieceRow represents a row in the save_pieces table: one arena entry,
// in play or captured.
type PieceRow struct {
	Slot      string `db:"slot"`
	PieceID   int    `db:"piece_id"`
	PieceType string `db:"piece_type"`
	Team      string `db:"team"`
	InPlay    bool   `db:"in_play"`
	Row       int    `db:"row"`
	Col       int    `db:"col"`
	Moved     bool   `db:"moved"`
}

// MoveRow represents a row in the save_moves table: one history entry.
type MoveRow struct {
	Slot       string `db:"slot"`
	Seq        int    `db:"seq"`
	FromRow    int    `db:"from_row"`
	FromCol    int    `db:"from_col"`
	ToRow      int    `db:"to_row"`
	ToCol      int    `db:"to_col"`
	CapturedID int    `db:"captured_id"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot TEXT PRIMARY KEY,
	saved_at_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS save_pieces (
	slot TEXT NOT NULL,
	piece_id INTEGER NOT NULL,
	piece_type TEXT NOT NULL CHECK(piece_type IN ('K', 'Q', 'R', 'B', 'N', 'P')),
	team TEXT NOT NULL CHECK(team IN ('w', 'b')),
	in_play INTEGER NOT NULL,
	row INTEGER NOT NULL,
	col INTEGER NOT NULL,
	moved INTEGER NOT NULL,
	PRIMARY KEY (slot, piece_id),
	FOREIGN KEY (slot) REFERENCES saves(slot) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS save_moves (
	slot TEXT NOT NULL,
	seq INTEGER NOT NULL,
	from_row INTEGER NOT NULL,
	from_col INTEGER NOT NULL,
	to_row INTEGER NOT NULL,
	to_col INTEGER NOT NULL,
	captured_id INTEGER NOT NULL,
	PRIMARY KEY (slot, seq),
	FOREIGN KEY (slot) REFERENCES saves(slot) ON DELETE CASCADE
);
`
