// Package angle provides scalar utilities for wrapping angular values (in radians) into
// half-open intervals. The functions are pure, allocation-free, and careful about the
// floating-point cutoff artifacts that the naive remainder formula produces at interval
// boundaries.
package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mod returns the floating remainder of x/y with the sign convention of y: for y > 0 the
// result lies in [0, y), for y < 0 in (y, 0]. Mod(x, 0) is defined to return x unchanged.
// The raw formula x - y*floor(x/y) can land exactly on or just past the interval edge, so
// those residuals are folded back inside before returning.
func Mod[T constraints.Float](x, y T) T {
	if y == 0 {
		return x
	}

	m := x - y*T(math.Floor(float64(x)/float64(y)))

	// Handle boundary cases resulting from floating-point cutoff.

	if y > 0 { // modulo range: [0..y)
		if m >= y { // Mod(-1e-16, 360.0): m = 360.0
			return 0
		}

		if m < 0 {
			if y+m == y {
				return 0 // m is a negligible negative residual
			}
			return y + m // Mod(106.81415022205296, 2*math.Pi): m = -1.421e-14
		}
	} else { // modulo range: (y..0]
		if m <= y { // Mod(1e-16, -360.0): m = -360.0
			return 0
		}

		if m > 0 {
			if y+m == y {
				return 0
			}
			return y + m // Mod(-106.81415022205296, -2*math.Pi): m = 1.421e-14
		}
	}

	return m
}

// WrapAngle wraps angle into the half-open interval [lo, hi).
func WrapAngle[T constraints.Float](angle, lo, hi T) T {
	return Mod(angle-lo, hi-lo) + lo
}

// WrapPosNegPI wraps angle into [-π, π).
func WrapPosNegPI[T constraints.Float](angle T) T {
	return Mod(angle+math.Pi, 2*math.Pi) - math.Pi
}

// WrapTwoPI wraps angle into [0, 2π).
func WrapTwoPI[T constraints.Float](angle T) T {
	return Mod(angle, 2*math.Pi)
}
