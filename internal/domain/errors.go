package domain

import "errors"

// Domain errors returned by the CLI layers. Check them with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("listsplit: invalid configuration")

	// ErrUnknownWeigher is returned for a weigher name that is not registered.
	ErrUnknownWeigher = errors.New("listsplit: unknown weigher")

	// ErrUnknownFormat is returned for an output format that is not supported.
	ErrUnknownFormat = errors.New("listsplit: unknown output format")

	// ErrParseValue is returned when a line cannot be parsed as a number.
	ErrParseValue = errors.New("listsplit: cannot parse value")
)
