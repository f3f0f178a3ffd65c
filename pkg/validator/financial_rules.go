package validator

import (
	"github.com/dmitrymomot/inputkit/pkg/validate"
)

// CreditCard validates the Luhn checksum only; use AnyCard to also require a
// known brand.
func CreditCard(field, value string) Rule {
	return predicate(field, value, "credit_card", "must be a valid card number", validate.IsCreditCard)
}

func AnyCard(field, value string) Rule {
	return predicate(field, value, "any_card", "must be a card number of a supported brand", validate.IsAnyCard)
}

// CardMatch validates that number belongs to the brand named by code, for
// example "CCT_VISA".
func CardMatch(field, number, code string) Rule {
	return Rule{
		Check: func() bool {
			return validate.IsCardMatch(code, number)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "card number does not match the card type",
			TranslationKey: "validation.card_match",
			TranslationValues: map[string]any{
				"field":     field,
				"card_type": validate.ParseCardType(code).String(),
			},
		},
	}
}

func GiftCard(field, value string) Rule {
	return predicate(field, value, "gift_card", "must be a valid gift card number", validate.IsGiftCard)
}

func UPC(field, value string) Rule {
	return checksum(field, value, "upc", "must be a valid UPC code", validate.IsValidUPC)
}

func EAN(field, value string) Rule {
	return checksum(field, value, "ean", "must be a valid EAN code", validate.IsValidEAN)
}

// checksum evaluates a checksum validator once. Input the validator rejects as
// malformed is reported under "validation.malformed" so that callers can tell
// a mistyped code from one with the wrong length or characters.
func checksum(field, value, kind, message string, valid func(string) (bool, error)) Rule {
	if value == "" {
		return predicate(field, value, kind, message, func(string) bool { return validate.EmptyOK })
	}

	ok, err := valid(value)
	if err != nil {
		return Rule{
			Check: func() bool {
				return false
			},
			Error: ValidationError{
				Field:          field,
				Message:        "is malformed: " + err.Error(),
				TranslationKey: "validation.malformed",
				TranslationValues: map[string]any{
					"field":  field,
					"reason": err.Error(),
				},
			},
		}
	}

	return predicate(field, value, kind, message, func(string) bool { return ok })
}
