package validate

// ParseBoolean reads "true" or "false". ok is false for any other input.
func ParseBoolean(s string) (value, ok bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// ParseIndicator reads the single letter flags "Y" and "N".
func ParseIndicator(s string) (value, ok bool) {
	switch s {
	case "Y":
		return true, true
	case "N":
		return false, true
	}
	return false, false
}

// ParseVersatile accepts either form.
func ParseVersatile(s string) (value, ok bool) {
	if v, ok := ParseBoolean(s); ok {
		return v, true
	}
	return ParseIndicator(s)
}

func IsBoolean(s string) bool {
	_, ok := ParseBoolean(s)
	return ok
}

func IsBooleanIndicator(s string) bool {
	_, ok := ParseIndicator(s)
	return ok
}

func IsBooleanVersatile(s string) bool {
	_, ok := ParseVersatile(s)
	return ok
}

// Indicator renders b as "Y" or "N".
func Indicator(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
