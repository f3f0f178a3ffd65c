package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput marks a value that violates a function's input contract,
	// as opposed to one that merely fails validation.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidLength is returned when a fixed-length code has the wrong size.
	ErrInvalidLength = fmt.Errorf("%w: invalid length", ErrMalformedInput)

	// ErrInvalidDigit is returned when a numeric code contains a non-digit.
	ErrInvalidDigit = fmt.Errorf("%w: invalid digit", ErrMalformedInput)

	// ErrForbiddenCharacter is returned by CheckDatabaseID.
	ErrForbiddenCharacter = errors.New("forbidden character")
)
