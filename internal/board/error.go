package board

import "errors"

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrUnknownPiece = errors.New("unknown piece id")
	ErrBadSnapshot  = errors.New("invalid board snapshot")
)
