package tree

import "errors"

// Sentinel errors for package tree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Cost model errors
	ErrUnknownPolicy          = errors.New("access policy not defined")
	ErrInvalidBranchingFactor = errors.New("branching factor must be positive")

	// Builder errors
	ErrInvalidThreshold = errors.New("bruteforce threshold must not be negative")
	ErrEmptySequence    = errors.New("weighted sequence is empty")
	ErrInvalidWeight    = errors.New("weight must be a positive, finite number")

	// Table errors
	ErrMissingSplit = errors.New("no split positions recorded for weight signature")
)
