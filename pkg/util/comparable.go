package util

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Clamp constrains a value within a specified range.
//
// It takes three arguments of type T, where T is any ordered type (numbers, strings, etc.):
//   - value: The input value to be clamped.
//   - low: The lower bound of the range.
//   - high: The upper bound of the range.
//
// The function returns:
//   - If value is less than low, it returns low.
//   - If value is greater than high, it returns high.
//   - Otherwise, it returns value unchanged.
//
// The result is always one of the three arguments.
//
// Example usage:
//
//	result := Clamp(20, 1, 10)       // Returns 10
//	result := Clamp(3, 1, 10)        // Returns 3
//	result := Clamp("a", "x", "z")   // Returns "x"
//
// Note: The bounds are not checked. If low > high the branches above still apply
// in order, so Clamp(5, 10, 1) returns 10. Use ClampStrict or NewRange to
// reject inverted bounds.
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// ClampFunc is like Clamp but orders values with cmp, which must return a
// negative number when a < b, a positive number when a > b and zero otherwise.
// It accepts cmp.Compare, strings.Compare and (time.Time).Compare.
func ClampFunc[T any](value, low, high T, cmp func(a, b T) int) T {
	if cmp(value, low) < 0 {
		return low
	}
	if cmp(value, high) > 0 {
		return high
	}
	return value
}

// Comparer is implemented by types that define their own ordering.
type Comparer[T any] interface {
	Compare(other T) int
}

// ClampComparer clamps any type implementing Comparer.
func ClampComparer[T Comparer[T]](value, low, high T) T {
	return ClampFunc(value, low, high, func(a, b T) int { return a.Compare(b) })
}

// ClampStrict clamps value after checking that low <= high.
// Inverted bounds yield an error wrapping ErrInvalidRange.
func ClampStrict[T constraints.Ordered](value, low, high T) (T, error) {
	if low > high {
		var zero T
		return zero, fmt.Errorf("%w: lower bound %v is greater than upper bound %v", ErrInvalidRange, low, high)
	}
	return Clamp(value, low, high), nil
}

// ClampSlice returns a new slice holding every element of values clamped to [low, high].
func ClampSlice[T constraints.Ordered](values []T, low, high T) []T {
	return MapSlice(values, func(v T) T { return Clamp(v, low, high) })
}
