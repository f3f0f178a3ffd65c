// Package sanitizer normalizes raw form input before it is validated.
//
// The core primitive is the character bag: a string whose runes form a set.
// StripCharsInBag removes every rune found in the bag, StripCharsNotInBag keeps
// only those runes. Both are single-pass, total and idempotent, so stripping
// twice gives the same result as stripping once.
//
// Named bags cover the delimiters accepted by the field formats in package
// validate:
//
//	PhoneNumberDelimiters = "()- "
//	SSNDelimiters         = "- "
//	ZipCodeDelimiters     = "-"
//	CreditCardDelimiters  = " -"
//	Whitespace            = " \t\n\r"
//
// On top of the bags the package offers formatters for the same domains
// (FormatSSN, FormatZipCode, FormatPhoneUS, FormatCreditCard, MaskCreditCard)
// which preserve the original input whenever it does not have the expected
// number of digits, plus FoldWidth for full-width digits typed on East Asian
// keyboards.
//
// # Usage
//
//	import "github.com/dmitrymomot/inputkit/pkg/sanitizer"
//
//	digits := sanitizer.StripCharsInBag("123-45 6789", sanitizer.SSNDelimiters)
//	// digits == "123456789"
//
//	clean := sanitizer.Compose(
//	    sanitizer.FoldWidth,
//	    sanitizer.StripInitialWhitespace,
//	)
//	value := clean("\t１２３４５") // "12345"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a result, falling
// back to the original input where a transformation does not apply.
//
// The package keeps no global mutable state and is safe for concurrent use.
package sanitizer
