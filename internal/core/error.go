package core

// Error codes returned by the HTTP API
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrEmptyHistory      = "EMPTY_HISTORY"
	ErrSaveNotFound      = "SAVE_NOT_FOUND"
	ErrStorageDisabled   = "STORAGE_DISABLED"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInternalError     = "INTERNAL_ERROR"
)
