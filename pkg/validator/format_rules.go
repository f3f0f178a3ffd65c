package validator

import (
	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func SSN(field, value string) Rule {
	return predicate(field, value, "ssn", "must be a valid social security number", validate.IsSSN)
}

func ZipCode(field, value string) Rule {
	return predicate(field, value, "zip_code", "must be a 5 or 9 digit ZIP code", validate.IsZipCode)
}

func ContiguousZipCode(field, value string) Rule {
	return predicate(field, value, "contiguous_zip_code", "must be a ZIP code in the contiguous United States", validate.IsContiguousZipCode)
}

func StateCode(field, value string) Rule {
	return predicate(field, value, "state_code", "must be a valid US state code", validate.IsStateCode)
}

func ContiguousStateCode(field, value string) Rule {
	return predicate(field, value, "contiguous_state_code", "must be a contiguous US state code", validate.IsContiguousStateCode)
}

func Email(field, value string) Rule {
	return predicate(field, value, "email", "must be a valid email address", validate.IsEmail)
}

func EmailList(field, value string) Rule {
	return predicate(field, value, "email_list", "must be a comma separated list of email addresses", validate.IsEmailList)
}

func URL(field, value string) Rule {
	return predicate(field, value, "url", "must be a valid URL", validate.IsURL)
}

func USPhone(field, value string) Rule {
	return predicate(field, value, "us_phone", "must be a 10 digit US phone number", validate.IsUSPhoneNumber)
}

func InternationalPhone(field, value string) Rule {
	return predicate(field, value, "international_phone", "must be a valid phone number", validate.IsInternationalPhoneNumber)
}

// NotPoBox rejects post office box addresses, for shipping address lines.
func NotPoBox(field, value string) Rule {
	return predicate(field, value, "not_po_box", "must not be a post office box", validate.IsNotPoBox)
}

// Boolean accepts "true" or "false". Empty input passes.
func Boolean(field, value string) Rule {
	return predicate(field, value, "boolean", "must be true or false", func(s string) bool {
		return s == "" || validate.IsBoolean(s)
	})
}

// Indicator accepts "Y" or "N". Empty input passes.
func Indicator(field, value string) Rule {
	return predicate(field, value, "indicator", "must be Y or N", func(s string) bool {
		return s == "" || validate.IsBooleanIndicator(s)
	})
}
