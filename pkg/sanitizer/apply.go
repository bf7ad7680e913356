package sanitizer

import "slices"

// Compose folds transforms, left to right, into one function. The list is
// copied, so later changes to the caller's slice do not leak into the
// returned pipeline. No transforms means identity.
func Compose[T any](transforms ...func(T) T) func(T) T {
	pipeline := slices.Clone(transforms)
	return func(value T) T {
		for _, transform := range pipeline {
			value = transform(value)
		}
		return value
	}
}

// Apply runs transforms over value once.
func Apply[T any](value T, transforms ...func(T) T) T {
	return Compose(transforms...)(value)
}
