package redis

import "errors"

var (
	// ErrNoURL is returned by Open when the URL is empty.
	ErrNoURL = errors.New("redis: no url")
	// ErrBadURL wraps URL parse and scheme errors.
	ErrBadURL = errors.New("redis: invalid url")
	// ErrUnreachable is returned when every connection attempt failed.
	ErrUnreachable = errors.New("redis: server unreachable")
	// ErrPingFailed is returned by Healthcheck.
	ErrPingFailed = errors.New("redis: ping failed")
)
