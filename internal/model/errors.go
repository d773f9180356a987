package model

import "errors"

// Registry and session failures. Detector stages never fail on "no match";
// absence of a match simply contributes nothing.
var (
	// ErrDuplicateName is returned when a variable name collides with an existing one
	ErrDuplicateName = errors.New("variable name already exists")

	// ErrNotFound is returned when an operation references an unknown variable
	ErrNotFound = errors.New("variable not found")

	// ErrInvalidName is returned when a name normalizes to an empty identifier
	ErrInvalidName = errors.New("invalid variable name")

	// ErrAlreadyExtracted is returned when extraction is requested on a session
	// that has already run its pipeline
	ErrAlreadyExtracted = errors.New("extraction has already run for this session")

	// ErrNoText is returned when extraction is requested before any text was entered
	ErrNoText = errors.New("no source text entered")
)
