// Package mat: bounds-checked element access and debug rendering.
// At/Set use the (row, col) convention over the column-major storage.
package mat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/camel/scalar"
)

// atKernel reads element (i, j) of an r×c column-major slice, or
// returns ErrOutOfRange.
func atKernel(a []scalar.Scalar, r, c, i, j int) (scalar.Scalar, error) {
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, r, c, ErrOutOfRange)
	}

	return a[j*r+i], nil
}

// setKernel writes element (i, j) of an r×c column-major slice, or
// returns ErrOutOfRange.
func setKernel(a []scalar.Scalar, r, c, i, j int, v scalar.Scalar) error {
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, r, c, ErrOutOfRange)
	}
	a[j*r+i] = v

	return nil
}

// stringKernel renders an r×c column-major slice one bracketed row per
// line, matching how the NewMat* constructors are written.
func stringKernel(a []scalar.Scalar, r, c int) string {
	var sb strings.Builder
	for i := 0; i < r; i++ {
		sb.WriteByte('[')
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", a[j*r+i])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat2) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 2, 2, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat2) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 2, 2, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat2) String() string { return stringKernel(m[:], 2, 2) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat2x3) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 2, 3, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat2x3) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 2, 3, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat2x3) String() string { return stringKernel(m[:], 2, 3) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat2x4) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 2, 4, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat2x4) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 2, 4, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat2x4) String() string { return stringKernel(m[:], 2, 4) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat3x2) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 3, 2, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat3x2) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 3, 2, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat3x2) String() string { return stringKernel(m[:], 3, 2) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat3) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 3, 3, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat3) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 3, 3, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat3) String() string { return stringKernel(m[:], 3, 3) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat3x4) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 3, 4, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat3x4) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 3, 4, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat3x4) String() string { return stringKernel(m[:], 3, 4) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat4x2) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 4, 2, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat4x2) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 4, 2, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat4x2) String() string { return stringKernel(m[:], 4, 2) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat4x3) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 4, 3, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat4x3) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 4, 3, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat4x3) String() string { return stringKernel(m[:], 4, 3) }

// At retrieves element (row i, col j) or ErrOutOfRange.
func (m Mat4) At(i, j int) (scalar.Scalar, error) { return atKernel(m[:], 4, 4, i, j) }

// Set assigns element (row i, col j) or returns ErrOutOfRange.
func (m *Mat4) Set(i, j int, v scalar.Scalar) error { return setKernel(m[:], 4, 4, i, j, v) }

// String implements fmt.Stringer for easy debugging.
func (m Mat4) String() string { return stringKernel(m[:], 4, 4) }
