package model

import "errors"

var (
	// ErrRedirectCycle is returned when command redirection loops back on
	// itself instead of terminating.
	ErrRedirectCycle = errors.New("command redirection cycle")
	// ErrInvalidCommand is returned when a key, name, or url is empty.
	ErrInvalidCommand = errors.New("command key, name, and url must be non-empty")
	// ErrBadSnapshot is returned when an imported document does not have
	// the expected shape. The live store is left untouched.
	ErrBadSnapshot = errors.New("malformed snapshot document")
)
