package core

// Team identifies one of the two sides a piece belongs to.
type Team byte

const (
	TeamWhite Team = 'w'
	TeamBlack Team = 'b'
)

func (t Team) String() string {
	switch t {
	case TeamWhite:
		return "white"
	case TeamBlack:
		return "black"
	default:
		return "unknown"
	}
}

// PieceType is the single-letter piece designation.
type PieceType byte

const (
	King   PieceType = 'K'
	Queen  PieceType = 'Q'
	Rook   PieceType = 'R'
	Bishop PieceType = 'B'
	Knight PieceType = 'N'
	Pawn   PieceType = 'P'
)

// Coord addresses a tile by zero-based row and column. Row 0 is rank 8,
// row 7 is rank 1; column 0 is file 'a'.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PieceID is a stable identifier into a board's piece arena. Tiles and
// move records hold PieceIDs rather than piece pointers so that the
// arena is the sole owner of piece state. NoPiece marks an empty tile
// or a move that captured nothing.
type PieceID int

const NoPiece PieceID = 0

// PieceCode renders the two-character code used for display and
// persistence: team letter followed by piece letter, e.g. "wP", "bK".
func PieceCode(team Team, pt PieceType) string {
	return string([]byte{byte(team), byte(pt)})
}
