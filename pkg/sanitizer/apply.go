package sanitizer

// Apply runs value through transforms in order and returns the result.
//
//	masked := sanitizer.Apply(raw, sanitizer.FoldWidth, sanitizer.MaskPhoneNumber)
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline out of transforms.
// Prefer it over Apply when the same chain runs on every request.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
