package config

import "errors"

// Error kinds reported by Load. Callers distinguish them with errors.Is;
// the wrapped message carries the specifics (offending value, limit,
// bounding box).
var (
	// ErrConfigAccess is returned when the config file is missing or
	// cannot be read.
	ErrConfigAccess = errors.New("config file access")

	// ErrInvalidLine is returned when a data line has no '=' or ':'
	// separator.
	ErrInvalidLine = errors.New("invalid line format")

	// ErrInvalidDimensions covers width/height problems: missing,
	// non-integer, non-positive, or larger than MaxDimension.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidCoordinates covers entry/exit problems: missing,
	// malformed, out of bounds, or entry equal to exit.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
