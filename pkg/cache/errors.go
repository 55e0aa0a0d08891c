package cache

import "errors"

var (
	// ErrNotFound reports a missing or expired key.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned by a Memory cache after Close.
	ErrClosed = errors.New("cache: closed")

	// ErrMarshal and ErrUnmarshal wrap JSON errors of the Redis cache.
	ErrMarshal   = errors.New("cache: marshal value")
	ErrUnmarshal = errors.New("cache: unmarshal value")
)
