package service

import "errors"

var (
	// ErrNotInitialized is returned by every client operation invoked before
	// Initialize (or after Terminate). Callers receive it together with the
	// type's zero value, never a silent zero alone.
	ErrNotInitialized = errors.New("remote config client is not initialized")
)
