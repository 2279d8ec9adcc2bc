package session

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needing an identity
	// runs without one (e.g. refresh before login).
	ErrNotAuthenticated = errors.New("session: not authenticated")
)
