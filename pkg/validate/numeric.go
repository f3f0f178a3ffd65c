package validate

import (
	"strconv"
	"strings"
)

// Decimal bounds a real-number literal. A negative MinDecimals or MaxDecimals
// disables that bound.
type Decimal struct {
	AllowNegative bool
	AllowPositive bool
	MinDecimals   int
	MaxDecimals   int
}

// IsInteger reports whether s is an unsigned run of ASCII digits.
func IsInteger(s string) bool {
	if s == "" {
		return EmptyOK
	}
	return allDigits(s)
}

// IsSignedInteger reports whether s parses as a 32-bit signed integer with an
// optional leading + or -.
func IsSignedInteger(s string) bool {
	if s == "" {
		return EmptyOK
	}
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

// IsSignedLong is IsSignedInteger for 64-bit values.
func IsSignedLong(s string) bool {
	if s == "" {
		return EmptyOK
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsPositiveInteger reports whether s is a 64-bit integer greater than zero.
func IsPositiveInteger(s string) bool {
	if s == "" {
		return EmptyOK
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

func IsNonnegativeInteger(s string) bool {
	return int32Satisfies(s, func(n int64) bool { return n >= 0 })
}

func IsNegativeInteger(s string) bool {
	return int32Satisfies(s, func(n int64) bool { return n < 0 })
}

func IsNonpositiveInteger(s string) bool {
	return int32Satisfies(s, func(n int64) bool { return n <= 0 })
}

// IsIntegerInRange reports whether s is a 32-bit integer in [lo, hi].
func IsIntegerInRange(s string, lo, hi int) bool {
	return int32Satisfies(s, func(n int64) bool { return n >= int64(lo) && n <= int64(hi) })
}

func int32Satisfies(s string, ok func(int64) bool) bool {
	if s == "" {
		return EmptyOK
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return err == nil && ok(n)
}

// IsFloat reports whether s is an unsigned decimal literal: digits with at
// most one '.', which may not come first.
func IsFloat(s string) bool {
	if s == "" {
		return EmptyOK
	}
	if s[0] == '.' {
		return false
	}
	seenPoint := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if seenPoint {
				return false
			}
			seenPoint = true
		case c < '0' || c > '9':
			return false
		}
	}
	return true
}

// IsSignedFloat reports whether s parses as a 32-bit real number.
func IsSignedFloat(s string) bool {
	if s == "" {
		return EmptyOK
	}
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}

// IsSignedDouble reports whether s parses as a 64-bit real number.
func IsSignedDouble(s string) bool {
	if s == "" {
		return EmptyOK
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsFloatWithin parses s as a 32-bit real and checks it against d.
// Values outside the float32 range are rejected.
func IsFloatWithin(s string, d Decimal) bool {
	return isRealWithin(s, d, 32)
}

// IsDoubleWithin parses s as a 64-bit real and checks it against d.
func IsDoubleWithin(s string, d Decimal) bool {
	return isRealWithin(s, d, 64)
}

func isRealWithin(s string, d Decimal, bitSize int) bool {
	if s == "" {
		return EmptyOK
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return false
	}
	if !d.AllowNegative && v < 0 {
		return false
	}
	if !d.AllowPositive && v > 0 {
		return false
	}

	point := strings.IndexByte(s, '.')
	if point == -1 {
		return d.MinDecimals <= 0
	}
	decimals := len(s) - point - 1
	if d.MinDecimals >= 0 && decimals < d.MinDecimals {
		return false
	}
	if d.MaxDecimals >= 0 && decimals > d.MaxDecimals {
		return false
	}
	return true
}
