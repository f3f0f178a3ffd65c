package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func Integer(field, value string) Rule {
	return predicate(field, value, "integer", "must be a whole number", validate.IsInteger)
}

func SignedInteger(field, value string) Rule {
	return predicate(field, value, "signed_integer", "must be a whole number", validate.IsSignedInteger)
}

func PositiveInteger(field, value string) Rule {
	return predicate(field, value, "positive_integer", "must be a positive whole number", validate.IsPositiveInteger)
}

func NonnegativeInteger(field, value string) Rule {
	return predicate(field, value, "nonnegative_integer", "must be zero or a positive whole number", validate.IsNonnegativeInteger)
}

func NegativeInteger(field, value string) Rule {
	return predicate(field, value, "negative_integer", "must be a negative whole number", validate.IsNegativeInteger)
}

func NonpositiveInteger(field, value string) Rule {
	return predicate(field, value, "nonpositive_integer", "must be zero or a negative whole number", validate.IsNonpositiveInteger)
}

// IntegerInRange validates an inclusive [min, max] range.
func IntegerInRange(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return validate.IsIntegerInRange(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a whole number between %d and %d", min, max),
			TranslationKey: "validation.integer_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func Float(field, value string) Rule {
	return predicate(field, value, "float", "must be a decimal number", validate.IsFloat)
}

// Decimal validates a signed real number against sign and decimal place bounds.
func Decimal(field, value string, d validate.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return validate.IsDoubleWithin(value, d)
		},
		Error: ValidationError{
			Field:          field,
			Message:        decimalMessage(d),
			TranslationKey: "validation.decimal",
			TranslationValues: map[string]any{
				"field":          field,
				"allow_negative": d.AllowNegative,
				"allow_positive": d.AllowPositive,
				"min_decimals":   d.MinDecimals,
				"max_decimals":   d.MaxDecimals,
			},
		},
	}
}

func decimalMessage(d validate.Decimal) string {
	msg := "must be a number"
	switch {
	case d.AllowNegative && !d.AllowPositive:
		msg = "must be zero or a negative number"
	case !d.AllowNegative && d.AllowPositive:
		msg = "must be zero or a positive number"
	case !d.AllowNegative && !d.AllowPositive:
		msg = "must be zero"
	}

	switch {
	case d.MinDecimals > 0 && d.MaxDecimals >= 0:
		msg += fmt.Sprintf(" with %d to %d decimal places", d.MinDecimals, d.MaxDecimals)
	case d.MinDecimals > 0:
		msg += fmt.Sprintf(" with at least %d decimal places", d.MinDecimals)
	case d.MaxDecimals >= 0:
		msg += fmt.Sprintf(" with at most %d decimal places", d.MaxDecimals)
	}
	return msg
}
