package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// PanicError is returned by Recover in place of a panicking handler's result.
// The app renders it as a 500 page.
type PanicError struct {
	Value any
	Stack []byte // empty when stack capture is disabled
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// TimeoutError is returned by Timeout when the request deadline expired.
type TimeoutError struct {
	Err      error // handler result, possibly nil
	Duration time.Duration
}

func (e *TimeoutError) Error() string { return "request timeout after " + e.Duration.String() }

func (e *TimeoutError) Unwrap() error { return e.Err }

// StatusCode makes the error page render a 503.
func (e *TimeoutError) StatusCode() int { return http.StatusServiceUnavailable }

// IsPanicError reports whether err wraps a *PanicError.
func IsPanicError(err error) bool {
	_, ok := AsPanicError(err)
	return ok
}

// IsTimeoutError reports whether err wraps a *TimeoutError.
func IsTimeoutError(err error) bool {
	_, ok := AsTimeoutError(err)
	return ok
}

// AsPanicError returns the first *PanicError in err's chain.
func AsPanicError(err error) (*PanicError, bool) { return as[*PanicError](err) }

// AsTimeoutError returns the first *TimeoutError in err's chain.
func AsTimeoutError(err error) (*TimeoutError, bool) { return as[*TimeoutError](err) }

func as[E error](err error) (E, bool) {
	var target E
	ok := errors.As(err, &target)
	return target, ok
}
