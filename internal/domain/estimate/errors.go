package estimate

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownBreed     = errors.New("unknown breed")
	ErrUnknownCondition = errors.New("unknown condition")
)
