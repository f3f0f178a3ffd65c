package validate

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

const (
	digitsInSocialSecurityNumber = 9
	digitsInUSPhoneNumber        = 10
	digitsInUSPhoneAreaCode      = 3
	digitsInUSPhoneMainNumber    = 7
	digitsInZipCode1             = 5
	digitsInZipCode2             = 9
)

// USStateCodes lists the USPS two letter codes for states, territories and
// armed forces regions.
const USStateCodes = "AL|AK|AS|AZ|AR|CA|CO|CT|DE|DC|FM|FL|GA|GU|HI|ID|IL|IN|IA|KS|KY|LA|ME|MH|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|MP|OH|OK|OR|PW|PA|PR|RI|SC|SD|TN|TX|UT|VT|VI|VA|WA|WV|WI|WY|AE|AA|AP"

// ContiguousUSStateCodes lists the lower 48 states plus DC.
const ContiguousUSStateCodes = "AL|AZ|AR|CA|CO|CT|DE|DC|FL|GA|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY"

// USStateCodeDelimiter separates entries in the state code tables.
const USStateCodeDelimiter = "|"

var (
	usStateCodes           = codeSet(USStateCodes)
	contiguousUSStateCodes = codeSet(ContiguousUSStateCodes)
)

// ZIP prefixes outside the contiguous states: Hawaii and Alaska.
var nonContiguousZipRanges = [][2]int{
	{96701, 96898},
	{99501, 99950},
}

var poBoxPatterns = []string{
	"p.o. b", "p.o.b", "p.o b", "p o b", "po b", "pobox", "po#", "po #",
	"p.0. b", "p.0.b", "p.0 b", "p 0 b", "p0 b", "p0box", "p0#", "p0 #",
}

func codeSet(table string) map[string]struct{} {
	set := make(map[string]struct{})
	for code := range strings.SplitSeq(table, USStateCodeDelimiter) {
		set[code] = struct{}{}
	}
	return set
}

// IsSSN reports whether s is a nine digit Social Security number, ignoring
// dashes and spaces.
func IsSSN(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.StripCharsInBag(s, sanitizer.SSNDelimiters)
	return allDigits(n) && len(n) == digitsInSocialSecurityNumber
}

// IsUSPhoneNumber reports whether s is a ten digit US number once
// parentheses, dashes and spaces are removed.
func IsUSPhoneNumber(s string) bool {
	return hasDigitCount(s, sanitizer.PhoneNumberDelimiters, digitsInUSPhoneNumber)
}

func IsUSPhoneAreaCode(s string) bool {
	return hasDigitCount(s, sanitizer.PhoneNumberDelimiters, digitsInUSPhoneAreaCode)
}

func IsUSPhoneMainNumber(s string) bool {
	return hasDigitCount(s, sanitizer.PhoneNumberDelimiters, digitsInUSPhoneMainNumber)
}

// IsInternationalPhoneNumber accepts any positive number once phone
// delimiters are removed. A leading + is allowed.
func IsInternationalPhoneNumber(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.StripCharsInBag(s, sanitizer.PhoneNumberDelimiters)
	return n != "" && IsPositiveInteger(n)
}

func hasDigitCount(s, delimiters string, count int) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.StripCharsInBag(s, delimiters)
	return allDigits(n) && len(n) == count
}

// IsZipCode reports whether s is a 5 or 9 digit ZIP code, with or without
// the ZIP+4 dash.
func IsZipCode(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n := sanitizer.StripCharsInBag(s, sanitizer.ZipCodeDelimiters)
	return allDigits(n) && (len(n) == digitsInZipCode1 || len(n) == digitsInZipCode2)
}

// IsContiguousZipCode reports whether s is a ZIP code outside Alaska and
// Hawaii.
func IsContiguousZipCode(s string) bool {
	if s == "" {
		return EmptyOK
	}
	if !IsZipCode(s) {
		return false
	}
	n := sanitizer.StripCharsInBag(s, sanitizer.ZipCodeDelimiters)
	prefix, err := strconv.Atoi(n[:digitsInZipCode1])
	if err != nil {
		return false
	}
	for _, r := range nonContiguousZipRanges {
		if prefix >= r[0] && prefix <= r[1] {
			return false
		}
	}
	return true
}

// IsStateCode reports whether s is exactly one entry of USStateCodes.
// Matching is case-sensitive.
func IsStateCode(s string) bool {
	return inCodeSet(usStateCodes, s)
}

// IsContiguousStateCode reports whether s is exactly one entry of
// ContiguousUSStateCodes.
func IsContiguousStateCode(s string) bool {
	return inCodeSet(contiguousUSStateCodes, s)
}

func inCodeSet(set map[string]struct{}, s string) bool {
	if s == "" {
		return EmptyOK
	}
	if strings.Contains(s, USStateCodeDelimiter) {
		return false
	}
	_, ok := set[s]
	return ok
}

// IsEmail reports whether s is a bare addr-spec such as "jane@example.com".
// Display names, angle brackets and surrounding whitespace are rejected, and
// the domain must contain a dot.
func IsEmail(s string) bool {
	if s == "" {
		return EmptyOK
	}
	return isEmail(s)
}

// IsEmailList reports whether every comma separated element of s is an
// e-mail address.
func IsEmailList(s string) bool {
	if s == "" {
		return EmptyOK
	}
	for addr := range strings.SplitSeq(s, ",") {
		if !isEmail(addr) {
			return false
		}
	}
	return true
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// IsURL reports whether s contains a scheme separator "://". No other
// structure is checked.
func IsURL(s string) bool {
	if s == "" {
		return EmptyOK
	}
	return strings.Contains(s, "://")
}

// IsNotPoBox reports whether an address line does not look like a post
// office box, including spellings that use a zero for the letter o.
func IsNotPoBox(s string) bool {
	if s == "" {
		return EmptyOK
	}
	lower := strings.ToLower(s)
	for _, p := range poBoxPatterns {
		if strings.Contains(lower, p) {
			return false
		}
	}
	return true
}
