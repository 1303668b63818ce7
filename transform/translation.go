// Package transform: homogeneous translation (4×4 only).
package transform

import (
	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/scalar"
)

// Translation returns the 4×4 translation matrix: identity with the
// last column set to (tx, ty, tz, 1).
func Translation(tx, ty, tz scalar.Scalar) mat.Mat4 {
	out := mat.Identity4()
	out[12] = tx
	out[13] = ty
	out[14] = tz

	return out
}

// InvTranslation inverts a translation by negating the last column of
// t over an identity matrix.
func InvTranslation(t mat.Mat4) mat.Mat4 {
	out := mat.Identity4()
	out[12] = -t[12]
	out[13] = -t[13]
	out[14] = -t[14]

	return out
}
