package validator

import "errors"

var (
	// ErrValidationFailed matches any non-empty ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned by RuleFor for a kind with no registered rule.
	ErrUnknownKind = errors.New("unknown validation kind")

	// ErrMissingArgument is returned when a kind needs more arguments than given.
	ErrMissingArgument = errors.New("missing rule argument")

	// ErrInvalidArgument is returned when a rule argument cannot be parsed.
	ErrInvalidArgument = errors.New("invalid rule argument")
)
