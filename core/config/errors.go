package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")
	// ErrParseFailed is returned when environment parsing fails,
	// e.g. a required variable is missing or a value has the wrong type.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
