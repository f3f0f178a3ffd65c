package sanitizer

import "strings"

// NormalizeSSN strips the delimiters accepted in Social Security Numbers.
func NormalizeSSN(ssn string) string {
	return StripCharsInBag(ssn, SSNDelimiters)
}

// FormatSSN renders nine digits as 123-45-6789; other input is returned unchanged.
func FormatSSN(ssn string) string {
	digits := NormalizeSSN(ssn)
	if len(digits) != 9 || StripCharsNotInBag(digits, Digits) != digits {
		return ssn
	}
	return digits[0:3] + "-" + digits[3:5] + "-" + digits[5:9]
}

// MaskSSN hides all but the last four digits.
func MaskSSN(ssn string) string {
	return maskTail(StripCharsNotInBag(ssn, Digits))
}

func NormalizeZipCode(zip string) string {
	return StripCharsInBag(zip, ZipCodeDelimiters)
}

// FormatZipCode handles both ZIP and ZIP+4; anything else is preserved.
func FormatZipCode(zip string) string {
	digits := NormalizeZipCode(zip)
	if StripCharsNotInBag(digits, Digits) != digits {
		return zip
	}

	switch len(digits) {
	case 5:
		return digits
	case 9:
		return digits[0:5] + ZipCodeDelimiter + digits[5:9]
	default:
		return zip
	}
}

// NormalizePhone strips the phone delimiter bag. A leading plus sign survives.
func NormalizePhone(phone string) string {
	return StripCharsInBag(phone, PhoneNumberDelimiters)
}

// FormatPhoneUS renders ten digits as (415) 555-1212; other input is preserved.
func FormatPhoneUS(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) != 10 || StripCharsNotInBag(digits, Digits) != digits {
		return phone
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
}

// NormalizeCreditCard strips spaces and dashes from a card number.
func NormalizeCreditCard(cardNumber string) string {
	return StripCharsInBag(cardNumber, CreditCardDelimiters)
}

// FormatCreditCard groups 13-19 digits in blocks of four; other input is preserved.
func FormatCreditCard(cardNumber string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) < 13 || len(digits) > 19 || StripCharsNotInBag(digits, Digits) != digits {
		return cardNumber
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// MaskCreditCard shows only the last four digits.
func MaskCreditCard(cardNumber string) string {
	return maskTail(StripCharsNotInBag(cardNumber, Digits))
}

func maskTail(digits string) string {
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
