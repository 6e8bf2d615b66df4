package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Weight errors
	ErrInvalidWeight  = errors.New("weight must be a positive, finite number")
	ErrUnknownEntry   = errors.New("weight given for an entry that does not exist")
	ErrDuplicateEntry = errors.New("weight given more than once")

	// Option errors
	ErrInvalidShortcut = errors.New("shortcut length must be at least 1")
)
