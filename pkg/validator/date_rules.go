package validator

import (
	"time"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

// Date validates a MM/DD/YYYY date.
func Date(field, value string) Rule {
	return predicate(field, value, "date", "must be a valid date (MM/DD/YYYY)", validate.IsDate)
}

// Time validates HH:MM or HH:MM:SS.
func Time(field, value string) Rule {
	return predicate(field, value, "time", "must be a valid time (HH:MM or HH:MM:SS)", validate.IsTime)
}

// DateAfterToday accepts MM/DD/YYYY or MM/YYYY values that fall after now.
func DateAfterToday(field, value string) Rule {
	return DateAfter(field, value, time.Now())
}

// DateBeforeToday accepts MM/DD/YYYY or MM/YYYY values that fall before now.
func DateBeforeToday(field, value string) Rule {
	return DateBefore(field, value, time.Now())
}

func DateAfter(field, value string, ref time.Time) Rule {
	return Rule{
		Check: func() bool {
			return validate.IsDateAfter(value, ref)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date must be in the future",
			TranslationKey: "validation.date_after",
			TranslationValues: map[string]any{
				"field": field,
				"after": ref.Format(time.DateOnly),
			},
		},
	}
}

func DateBefore(field, value string, ref time.Time) Rule {
	return Rule{
		Check: func() bool {
			return validate.IsDateBefore(value, ref)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date must be in the past",
			TranslationKey: "validation.date_before",
			TranslationValues: map[string]any{
				"field":  field,
				"before": ref.Format(time.DateOnly),
			},
		},
	}
}
