// Package transform: scale generators and their diagonal-read inverses.
package transform

import (
	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/scalar"
)

// Scale2 returns the 2×2 scale matrix diag(sx, sy).
func Scale2(sx, sy scalar.Scalar) mat.Mat2 {
	out := mat.Identity2()
	out[0] = sx
	out[3] = sy

	return out
}

// Scale3 returns the 3×3 scale matrix diag(sx, sy, sz).
func Scale3(sx, sy, sz scalar.Scalar) mat.Mat3 {
	out := mat.Identity3()
	out[0] = sx
	out[4] = sy
	out[8] = sz

	return out
}

// Scale4 returns the 4×4 scale matrix diag(sx, sy, sz, 1).
func Scale4(sx, sy, sz scalar.Scalar) mat.Mat4 {
	out := mat.Identity4()
	out[0] = sx
	out[5] = sy
	out[10] = sz

	return out
}

// InvScale2 inverts a scale matrix by reading its diagonal:
// diag(1/s00, 1/s11). A zero factor yields IEEE-754 infinity. Off-
// diagonal entries of s are ignored.
func InvScale2(s mat.Mat2) mat.Mat2 {
	out := mat.Identity2()
	out[0] = 1 / s[0]
	out[3] = 1 / s[3]

	return out
}

// InvScale3 inverts a scale matrix by reading its diagonal:
// diag(1/s00, 1/s11, 1/s22).
func InvScale3(s mat.Mat3) mat.Mat3 {
	out := mat.Identity3()
	out[0] = 1 / s[0]
	out[4] = 1 / s[4]
	out[8] = 1 / s[8]

	return out
}

// InvScale4 inverts a scale matrix by reading its diagonal:
// diag(1/s00, 1/s11, 1/s22, 1). The homogeneous entry stays 1.
func InvScale4(s mat.Mat4) mat.Mat4 {
	out := mat.Identity4()
	out[0] = 1 / s[0]
	out[5] = 1 / s[5]
	out[10] = 1 / s[10]

	return out
}
