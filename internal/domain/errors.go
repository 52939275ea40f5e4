package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProject indicates a catalogue record breaks a record invariant.
	ErrInvalidProject = errors.New("invalid project")
)
