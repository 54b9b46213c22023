// Package scalar holds the epsilon-tolerant float helpers shared by every
// geometry type in the module.
package scalar

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ErrZeroDivisor is returned by every division whose divisor is zero.
var ErrZeroDivisor = errors.New("division by zero")

// Epsilon returns the comparison tolerance for the precision of T.
func Epsilon[T constraints.Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(1e-6)
	}
	return T(1e-12)
}

// AreEqual reports whether |a-b| <= epsilon.
func AreEqual[T constraints.Float](a, b T) bool {
	return Abs(a-b) <= Epsilon[T]()
}

// AreNotEqual is the negation of AreEqual.
func AreNotEqual[T constraints.Float](a, b T) bool {
	return !AreEqual(a, b)
}

// IsZero reports whether v is within epsilon of zero.
func IsZero[T constraints.Float](v T) bool {
	return AreEqual(v, 0)
}

func IsNotZero[T constraints.Float](v T) bool {
	return !IsZero(v)
}

// IsGreaterThan reports whether a exceeds b by more than epsilon.
func IsGreaterThan[T constraints.Float](a, b T) bool {
	return a-b > Epsilon[T]()
}

// IsLessThan reports whether a is below b by more than epsilon.
func IsLessThan[T constraints.Float](a, b T) bool {
	return a-b < -Epsilon[T]()
}

// IsGreaterOrEquals reports a >= b within tolerance.
func IsGreaterOrEquals[T constraints.Float](a, b T) bool {
	return a-b >= -Epsilon[T]()
}

// IsLessOrEquals reports a <= b within tolerance.
func IsLessOrEquals[T constraints.Float](a, b T) bool {
	return a-b <= Epsilon[T]()
}

// IsNegative reports whether v is below zero by more than epsilon.
func IsNegative[T constraints.Float](v T) bool {
	return IsLessThan(v, 0)
}

// IsPositive reports whether v is not negative. Zero counts as positive.
func IsPositive[T constraints.Float](v T) bool {
	return IsGreaterOrEquals(v, 0)
}

// Clamp clamps v into the inclusive range [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns |v|.
func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// CopySign returns a value with the magnitude of mag and the sign of sign.
func CopySign[T constraints.Float](mag, sign T) T {
	return T(math.Copysign(float64(mag), float64(sign)))
}

func IsNaN[T constraints.Float](v T) bool {
	return v != v
}

func IsInfinite[T constraints.Float](v T) bool {
	return math.IsInf(float64(v), 0)
}

// Format renders v as the shortest decimal that parses back to the same value.
// Negative zero prints as 0.
func Format[T constraints.Float](v T) string {
	if v == 0 {
		return "0"
	}
	var zero T
	if _, ok := any(zero).(float32); ok {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
