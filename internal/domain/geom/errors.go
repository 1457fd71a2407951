package geom

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidGeometry means an image or viewport dimension is zero or
	// unknown, so no coordinate mapping exists.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
