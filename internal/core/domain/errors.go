package domain

import "errors"

var (
	// ErrTaskNotFound covers both a nonexistent task id and a task owned by
	// another principal. The two cases are deliberately indistinguishable so
	// callers cannot probe for the existence of other users' rows.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidToken is returned by token verification for any rejected
	// token, expired or otherwise.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmptyPatch rejects an update carrying no field. The HTTP layer
	// refuses such patches before the store sees them.
	ErrEmptyPatch = errors.New("empty patch")
)
