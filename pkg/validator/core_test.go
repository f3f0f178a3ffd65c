package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "zip", Message: "must be a 5 or 9 digit ZIP code"})
		assert.Equal(t, "validation failed: zip: must be a 5 or 9 digit ZIP code", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "zip", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "state", Message: "must be a valid US state code"})
		assert.Equal(t, "validation failed: zip: is required; state: must be a valid US state code", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "card", Message: "is required", TranslationKey: "validation.required"})
	errs.Add(validator.ValidationError{Field: "card", Message: "must be a valid card number", TranslationKey: "validation.credit_card"})
	errs.Add(validator.ValidationError{Field: "zip", Message: "must be a 5 or 9 digit ZIP code"})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("card"))
		assert.True(t, errs.Has("zip"))
		assert.False(t, errs.Has("state"))
	})

	t.Run("Get keeps rule order", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "must be a valid card number"}, errs.Get("card"))
		assert.Empty(t, errs.Get("state"))
	})

	t.Run("GetErrors", func(t *testing.T) {
		got := errs.GetErrors("card")
		require.Len(t, got, 2)
		assert.Equal(t, "validation.credit_card", got[1].TranslationKey)
	})

	t.Run("Fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"card", "zip"}, errs.Fields())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ZipCode("zip", "12345"),
			validator.StateCode("state", "CA"),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.ZipCode("zip", "1234"),
			validator.StateCode("state", "CA"),
			validator.Required("name", "  "),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "zip", errs[0].Field)
		assert.Equal(t, "validation.zip_code", errs[0].TranslationKey)
		assert.Equal(t, "name", errs[1].Field)
		assert.Equal(t, "validation.required", errs[1].TranslationKey)
	})

	t.Run("empty input passes format rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Email("email", ""), validator.Date("dob", "")))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Email("email", "nope"))

	t.Run("through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("signup: %w", err)
		errs := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("email"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotErrorIs(t, validator.ValidationErrors{}, validator.ErrValidationFailed)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
