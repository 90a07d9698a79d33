package console

import "errors"

var (
	ErrEmptyInput               = errors.New("no input found")
	ErrUnknownCommand           = errors.New("command not recognized")
	ErrArityMismatch            = errors.New("argument count error")
	ErrUnknownTopic             = errors.New("unknown help topic")
	ErrUnrecognizedConfirmation = errors.New("input not recognized")
	ErrStorageDisabled          = errors.New("save/load is disabled (no storage configured)")
)
