package cmd

import "errors"

var (
	// ErrCheckFailed is returned when input was read correctly but did not pass.
	// It maps to exit status 1 without an extra error line.
	ErrCheckFailed = errors.New("check failed")

	ErrInvalidBatch  = errors.New("invalid batch file")
	ErrInvalidOutput = errors.New("invalid output format")
	ErrNotDigits     = errors.New("payload must contain only digits")
)
