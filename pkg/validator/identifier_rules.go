package validator

import (
	"github.com/dmitrymomot/inputkit/pkg/validate"
)

// DatabaseID rejects identifiers containing characters that are unsafe in a
// primary key. The message names the first offending character.
func DatabaseID(field, value string) Rule {
	err := validate.CheckDatabaseID(value)
	message := "must not contain spaces, quotes, &, ?, <, >, \\ or /"
	reason := ""
	if err != nil {
		reason = err.Error()
		message = "is not a valid identifier: " + reason
	}

	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.database_id",
			TranslationValues: map[string]any{
				"field":  field,
				"reason": reason,
			},
		},
	}
}

func UUID(field, value string) Rule {
	return predicate(field, value, "uuid", "must be a valid UUID", validate.IsUUID)
}
