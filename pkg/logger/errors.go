package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a configured level name cannot be parsed.
	ErrInvalidLevel = errors.New("logger: invalid level")

	// ErrInvalidFormat is returned when a configured format is neither json nor text.
	ErrInvalidFormat = errors.New("logger: invalid format")
)
