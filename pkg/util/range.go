package util

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Range is a closed interval [Min, Max] whose bounds are known to be ordered.
// The zero value is the degenerate range [zero, zero].
type Range[T constraints.Ordered] struct {
	min T
	max T
}

type rangeJSON[T constraints.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

func NewRange[T constraints.Ordered](min, max T) (Range[T], error) {
	if min > max {
		return Range[T]{}, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, min, max)
	}
	return Range[T]{min: min, max: max}, nil
}

// MustNewRange is like NewRange but panics on inverted bounds.
func MustNewRange[T constraints.Ordered](min, max T) Range[T] {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range[T]) Min() T {
	return r.min
}

func (r Range[T]) Max() T {
	return r.max
}

// Contains reports whether v lies in the closed interval.
func (r Range[T]) Contains(v T) bool {
	return v >= r.min && v <= r.max
}

func (r Range[T]) Clamp(v T) T {
	return Clamp(v, r.min, r.max)
}

func (r Range[T]) ClampSlice(values []T) []T {
	return ClampSlice(values, r.min, r.max)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

func (r Range[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON[T]{Min: r.min, Max: r.max})
}

// UnmarshalJSON decodes {"min": ..., "max": ...} and rejects inverted bounds.
func (r *Range[T]) UnmarshalJSON(data []byte) error {
	var raw rangeJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewRange(raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
