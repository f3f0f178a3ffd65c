package validate

import (
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

const (
	valueLinkDigits       = 16
	giftCertificateDigits = 15
)

// IsValueLinkCard reports whether s is a 16 digit ValueLink gift card number
// starting with 6 or 7.
func IsValueLinkCard(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.NormalizeCreditCard(s)
	if !allDigits(n) || len(n) != valueLinkDigits {
		return false
	}
	return strings.HasPrefix(n, "6") || strings.HasPrefix(n, "7")
}

// IsGiftCertificate reports whether s is a 15 digit Luhn-valid certificate
// number.
func IsGiftCertificate(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.NormalizeCreditCard(s)
	return allDigits(n) && len(n) == giftCertificateDigits && SumIsMod10(LuhnSum(n))
}

func IsGiftCard(s string) bool {
	return IsGiftCertificate(s) || IsValueLinkCard(s)
}
