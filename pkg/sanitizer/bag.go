package sanitizer

import "strings"

// Named character bags.
const (
	Digits           = "0123456789"
	HexDigits        = Digits + "abcdefABCDEF"
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LowercaseLetters + UppercaseLetters
	Whitespace       = " \t\n\r"

	DecimalPointDelimiter = "."

	// PhoneNumberDelimiters are the non-digit characters allowed in phone numbers.
	// World numbers additionally allow a leading plus sign.
	PhoneNumberDelimiters = "()- "
	ValidUSPhoneChars     = Digits + PhoneNumberDelimiters
	ValidWorldPhoneChars  = Digits + PhoneNumberDelimiters + "+"

	SSNDelimiters = "- "
	ValidSSNChars = Digits + SSNDelimiters

	// ZipCodeDelimiter is the separator used when formatting ZIP+4 codes.
	ZipCodeDelimiters = "-"
	ZipCodeDelimiter  = "-"
	ValidZipCodeChars = Digits + ZipCodeDelimiters

	CreditCardDelimiters = " -"
)

// StripCharsInBag removes every character of s that appears in bag.
// The order of the remaining characters is preserved.
func StripCharsInBag(s, bag string) string {
	if s == "" || bag == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(bag, r) {
			return -1
		}
		return r
	}, s)
}

// StripCharsNotInBag keeps only the characters of s that appear in bag.
func StripCharsNotInBag(s, bag string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(bag, r) {
			return r
		}
		return -1
	}, s)
}

// StripWhitespace removes space, tab, newline and carriage return characters.
func StripWhitespace(s string) string {
	return StripCharsInBag(s, Whitespace)
}

// StripInitialWhitespace removes leading whitespace only.
func StripInitialWhitespace(s string) string {
	return strings.TrimLeft(s, Whitespace)
}

// CharInString reports whether c occurs in s.
func CharInString(c rune, s string) bool {
	return strings.ContainsRune(s, c)
}
