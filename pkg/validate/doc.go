// Package validate is a flat library of stateless predicates for form input:
// character classes, numeric literals, US postal and phone formats, e-mail
// addresses, calendar dates and clock times, Luhn and UPC/EAN checksums, and
// credit-card brand classification.
//
// # Conventions
//
// Every predicate takes the raw string a user typed. It strips the delimiters
// its format allows (see package sanitizer for the bags), checks the shape and,
// where it applies, the semantics. Malformed input yields false; there is no
// separate "invalid argument" signal.
//
// Zero-length input yields EmptyOK (true). An empty field is "not provided",
// not "wrong"; whether a field is required is decided by a separate check
// such as validator.Required.
//
// The checksum helpers in upc.go are the exception: a value of the wrong
// length is a caller error, reported as an error wrapping ErrMalformedInput
// rather than as false.
//
// # Usage
//
//	validate.IsZipCode("12345-6789")          // true
//	validate.IsContiguousZipCode("99501")     // false, Alaska
//	validate.IsDate("02/29/2000")             // true
//	validate.CardTypeOf("4111 1111 1111 1111") // CardVisa
//
//	ok, err := validate.IsValidUPC("036000291452")
//	if errors.Is(err, validate.ErrMalformedInput) {
//	    // not a 12 character code
//	}
//
// Nothing in the package holds mutable state; all functions are safe for
// concurrent use.
package validate
