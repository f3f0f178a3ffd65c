package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen counts characters, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

func Len(field, value string, length int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == length
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", length),
			TranslationKey: "validation.length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": length,
			},
		},
	}
}

func Alphabetic(field, value string) Rule {
	return predicate(field, value, "alphabetic", "must contain only letters", validate.IsAlphabetic)
}

func Alphanumeric(field, value string) Rule {
	return predicate(field, value, "alphanumeric", "must contain only letters and digits", validate.IsAlphanumeric)
}
