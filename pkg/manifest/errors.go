package manifest

import "errors"

// Sentinel errors for the manifest package.
var (
	// ErrInvalidFile is returned when a route file name breaks the convention.
	ErrInvalidFile = errors.New("manifest: invalid route file")

	// ErrReserved is returned when a route uses a reserved underscore name.
	ErrReserved = errors.New("manifest: reserved route name")

	// ErrDuplicate is returned when two files resolve to the same pattern.
	ErrDuplicate = errors.New("manifest: duplicate route pattern")
)
