package session

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownRole = errors.New("unknown point role")
	// ErrNoPointHit means no active point lies within the hit radius of a
	// touch position.
	ErrNoPointHit = errors.New("no point within hit radius")
	// ErrNoImage means an operation needs a loaded image first.
	ErrNoImage = errors.New("no image loaded")
)
