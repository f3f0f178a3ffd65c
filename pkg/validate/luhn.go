package validate

import (
	"strconv"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

const maxCardDigits = 19

// LuhnSum returns the Luhn (mod 10) sum of the digits in s. Non-digit
// characters are ignored. Counting from the right, every second digit is
// doubled and reduced by 9 when the result exceeds 9.
func LuhnSum(s string) int {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

func SumIsMod10(sum int) bool {
	return sum%10 == 0
}

// LuhnCheckDigit returns the digit that, appended to payload, makes a valid
// Luhn number.
func LuhnCheckDigit(payload string) int {
	// The check digit takes the undoubled rightmost slot, so the payload is
	// summed as if a zero were already appended.
	sum := LuhnSum(payload + "0")
	return (10 - sum%10) % 10
}

// AppendCheckDigit returns payload followed by its Luhn check digit.
func AppendCheckDigit(payload string) string {
	return payload + strconv.Itoa(LuhnCheckDigit(payload))
}

// IsCreditCard reports whether s is a Luhn-valid number of at most 19 digits
// once spaces and dashes are removed. It does not check the issuer.
func IsCreditCard(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.StripCharsInBag(s, sanitizer.CreditCardDelimiters)
	if !allDigits(n) || len(n) > maxCardDigits {
		return false
	}
	return SumIsMod10(LuhnSum(n))
}
