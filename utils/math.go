// SPDX-License-Identifier: EPL-2.0

package utils

// Number covers the types Sign and Square work on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sign returns 1 for positive values, -1 for negative values and 0 for zero.
// NaN maps to 0.
func Sign[T Number](v T) T {
	var zero T

	switch {
	case v > zero:
		return 1
	case v < zero:
		return -1
	default:
		return zero
	}
}

// Square returns v*v.
func Square[T Number](v T) T {
	return v * v
}
