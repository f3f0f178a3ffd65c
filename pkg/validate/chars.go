package validate

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func IsEmpty(s string) bool {
	return len(s) == 0
}

func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsLetter reports whether r is a Unicode letter.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

func IsHexDigit(r rune) bool {
	return strings.ContainsRune(sanitizer.HexDigits, r)
}

// IsWhitespace reports whether s is empty or consists of spaces, tabs,
// newlines and carriage returns only.
func IsWhitespace(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(sanitizer.Whitespace, r) {
			return false
		}
	}
	return true
}

// IsAlphabetic reports whether s contains letters only.
func IsAlphabetic(s string) bool {
	if s == "" {
		return EmptyOK
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether s contains letters and digits only.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return EmptyOK
	}
	for _, r := range s {
		if !IsLetterOrDigit(r) {
			return false
		}
	}
	return true
}
