package mat

import "github.com/katalvlaran/camel/scalar"

// The nine matrix shapes. Each type is a flat column-major array:
// element (row i, col j) of an r×c matrix lives at index j*r + i.
// MatRxC names follow rows×cols; the square shapes drop the repeat.
type (
	// Mat2 is a 2×2 matrix.
	Mat2 [4]scalar.Scalar
	// Mat2x3 is a 2-row, 3-column matrix.
	Mat2x3 [6]scalar.Scalar
	// Mat2x4 is a 2-row, 4-column matrix.
	Mat2x4 [8]scalar.Scalar
	// Mat3x2 is a 3-row, 2-column matrix.
	Mat3x2 [6]scalar.Scalar
	// Mat3 is a 3×3 matrix.
	Mat3 [9]scalar.Scalar
	// Mat3x4 is a 3-row, 4-column matrix.
	Mat3x4 [12]scalar.Scalar
	// Mat4x2 is a 4-row, 2-column matrix.
	Mat4x2 [8]scalar.Scalar
	// Mat4x3 is a 4-row, 3-column matrix.
	Mat4x3 [12]scalar.Scalar
	// Mat4 is a 4×4 matrix.
	Mat4 [16]scalar.Scalar
)

// Shape accessors. Rows and Cols are constant per type; they exist so
// generic call sites and tests can introspect a shape without reflection.

// Rows returns 2.
func (Mat2) Rows() int { return 2 }

// Cols returns 2.
func (Mat2) Cols() int { return 2 }

// Rows returns 2.
func (Mat2x3) Rows() int { return 2 }

// Cols returns 3.
func (Mat2x3) Cols() int { return 3 }

// Rows returns 2.
func (Mat2x4) Rows() int { return 2 }

// Cols returns 4.
func (Mat2x4) Cols() int { return 4 }

// Rows returns 3.
func (Mat3x2) Rows() int { return 3 }

// Cols returns 2.
func (Mat3x2) Cols() int { return 2 }

// Rows returns 3.
func (Mat3) Rows() int { return 3 }

// Cols returns 3.
func (Mat3) Cols() int { return 3 }

// Rows returns 3.
func (Mat3x4) Rows() int { return 3 }

// Cols returns 4.
func (Mat3x4) Cols() int { return 4 }

// Rows returns 4.
func (Mat4x2) Rows() int { return 4 }

// Cols returns 2.
func (Mat4x2) Cols() int { return 2 }

// Rows returns 4.
func (Mat4x3) Rows() int { return 4 }

// Cols returns 3.
func (Mat4x3) Cols() int { return 3 }

// Rows returns 4.
func (Mat4) Rows() int { return 4 }

// Cols returns 4.
func (Mat4) Cols() int { return 4 }
