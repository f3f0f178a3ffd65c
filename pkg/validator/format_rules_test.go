package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		valid   validator.Rule
		invalid validator.Rule
		key     string
	}{
		{"ssn", validator.SSN("ssn", "123-45-6789"), validator.SSN("ssn", "123-45-678"), "validation.ssn"},
		{"zip", validator.ZipCode("zip", "12345-6789"), validator.ZipCode("zip", "1234"), "validation.zip_code"},
		{"contiguous zip", validator.ContiguousZipCode("zip", "10001"), validator.ContiguousZipCode("zip", "99501"), "validation.contiguous_zip_code"},
		{"state", validator.StateCode("state", "NY"), validator.StateCode("state", "NY|CA"), "validation.state_code"},
		{"contiguous state", validator.ContiguousStateCode("state", "NY"), validator.ContiguousStateCode("state", "HI"), "validation.contiguous_state_code"},
		{"email", validator.Email("email", "jane@example.com"), validator.Email("email", "jane@localhost"), "validation.email"},
		{"email list", validator.EmailList("cc", "a@example.com,b@example.com"), validator.EmailList("cc", "a@example.com;b@example.com"), "validation.email_list"},
		{"url", validator.URL("site", "https://example.com"), validator.URL("site", "example.com"), "validation.url"},
		{"us phone", validator.USPhone("phone", "(415) 555-1212"), validator.USPhone("phone", "555-1212"), "validation.us_phone"},
		{"international phone", validator.InternationalPhone("phone", "+44 20 7946 0958"), validator.InternationalPhone("phone", "ext. 12"), "validation.international_phone"},
		{"po box", validator.NotPoBox("address1", "1 Infinite Loop"), validator.NotPoBox("address1", "P.O. Box 7"), "validation.not_po_box"},
		{"boolean", validator.Boolean("active", "true"), validator.Boolean("active", "yes"), "validation.boolean"},
		{"indicator", validator.Indicator("active", "Y"), validator.Indicator("active", "y"), "validation.indicator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, validator.Apply(tt.valid))

			errs := validator.ExtractValidationErrors(validator.Apply(tt.invalid))
			require.Len(t, errs, 1)
			assert.Equal(t, tt.key, errs[0].TranslationKey)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestFormatRulesAcceptEmpty(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.SSN("ssn", ""),
		validator.ZipCode("zip", ""),
		validator.StateCode("state", ""),
		validator.Email("email", ""),
		validator.USPhone("phone", ""),
		validator.Boolean("active", ""),
		validator.Indicator("active", ""),
	)
	assert.NoError(t, err)
}
