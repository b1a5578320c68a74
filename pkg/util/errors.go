package util

import "errors"

// ErrInvalidRange is returned when a lower bound orders after its upper bound.
// Clamp itself never returns it; ClampStrict, NewRange and Range decoding do.
var ErrInvalidRange = errors.New("invalid range")
