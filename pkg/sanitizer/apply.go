package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable normalization pipeline, e.g. FoldWidth followed
// by a bag strip for a specific field format.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Stripper returns a transform that removes the characters of bag.
func Stripper(bag string) func(string) string {
	return func(s string) string {
		return StripCharsInBag(s, bag)
	}
}

// Keeper returns a transform that retains only the characters of bag.
func Keeper(bag string) func(string) string {
	return func(s string) string {
		return StripCharsNotInBag(s, bag)
	}
}
