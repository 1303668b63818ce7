// Package scalar: the Scalar type, tolerance constants, and the
// comparison/transcendental helpers shared across the kernel.
package scalar

import (
	"fmt"
	"math"
)

// Scalar is the real number type used by every public surface of camel.
type Scalar = float64

// Numeric constants (single source of truth for the whole kernel).
const (
	// Epsilon is the tolerance below which two scalars compare equal.
	Epsilon Scalar = 1.0e-6

	// Pi and its common derivatives.
	Pi        Scalar = math.Pi
	TwoPi     Scalar = 2.0 * math.Pi
	HalfPi    Scalar = 0.5 * math.Pi
	QuarterPi Scalar = 0.25 * math.Pi

	// SqrtTwo and SqrtThree are handy unit-geometry constants.
	SqrtTwo   Scalar = math.Sqrt2
	SqrtThree Scalar = 1.73205080756887729352

	// Deg2Rad and Rad2Deg convert between angle units.
	Deg2Rad Scalar = Pi / 180.0
	Rad2Deg Scalar = 180.0 / Pi
)

// Equal reports whether a and b differ by at most Epsilon.
// Complexity: O(1).
func Equal(a, b Scalar) bool {
	return Abs(a-b) <= Epsilon
}

// EqualEps reports whether a and b differ by at most eps.
// Use for call sites that need a tolerance other than Epsilon.
// Complexity: O(1).
func EqualEps(a, b, eps Scalar) bool {
	return Abs(a-b) <= eps
}

// Clamp returns x limited to the closed interval [lo, hi].
func Clamp(x, lo, hi Scalar) Scalar {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// DegToRad converts degrees to radians.
func DegToRad(degrees Scalar) Scalar {
	return degrees * Deg2Rad
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians Scalar) Scalar {
	return radians * Rad2Deg
}

// Sin returns the sine of x (radians).
func Sin(x Scalar) Scalar { return math.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x Scalar) Scalar { return math.Cos(x) }

// Tan returns the tangent of x (radians).
func Tan(x Scalar) Scalar { return math.Tan(x) }

// Acos returns the arccosine of x, in radians, in [0, π].
func Acos(x Scalar) Scalar { return math.Acos(x) }

// Sqrt returns the square root of x.
func Sqrt(x Scalar) Scalar { return math.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x Scalar) Scalar { return math.Abs(x) }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x Scalar) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Diff renders an "expected vs got" comparison string for debugging and
// test-failure messages. Formatting only; carries no numeric semantics.
func Diff(want, got any) string {
	return fmt.Sprintf("expected %v, got %v", want, got)
}
