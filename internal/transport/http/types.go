package http

// Request types

type MoveRequest struct {
	From string `json:"from" validate:"required,len=2"` // algebraic, e.g. "a7"
	To   string `json:"to" validate:"required,len=2"`
}

type SaveRequest struct {
	Slot string `json:"slot,omitempty" validate:"omitempty,min=1,max=64"`
}

type LoadRequest struct {
	Slot string `json:"slot,omitempty" validate:"omitempty,min=1,max=64"`
}

// Response types

type GameResponse struct {
	GameID string     `json:"gameId"`
	Moves  []MoveInfo `json:"moves"`
	Board  string     `json:"board"` // ASCII representation
}

type MoveInfo struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"` // piece code, e.g. "bP"
}

type BoardResponse struct {
	Board string `json:"board"`
}

type SaveResponse struct {
	Slot string `json:"slot"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
