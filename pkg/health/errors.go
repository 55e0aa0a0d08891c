package health

import "errors"

var (
	// ErrCheckFailed is returned by Response.Err when a check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check that did not finish in time.
	ErrCheckTimeout = errors.New("health: check timed out")
)
