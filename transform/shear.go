// Package transform: shear generators. A shear of axis A stores its
// coefficients in column A of the identity, so the sheared coordinate
// feeds into the others: ShearX3(y, z) sets out(1,0)=y and out(2,0)=z,
// mapping (px, py, pz) to (px, py + y·px, pz + z·px). Because all
// coefficients live in a single column the shear is unipotent, and its
// exact inverse is the identity with those entries negated.
package transform

import (
	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/scalar"
)

// ShearX2 returns the 2×2 shear of the x axis: identity with
// out(1,0)=y.
func ShearX2(y scalar.Scalar) mat.Mat2 {
	out := mat.Identity2()
	out[1] = y

	return out
}

// ShearY2 returns the 2×2 shear of the y axis: identity with
// out(0,1)=x.
func ShearY2(x scalar.Scalar) mat.Mat2 {
	out := mat.Identity2()
	out[2] = x

	return out
}

// ShearX3 returns the 3×3 shear of the x axis: identity with
// out(1,0)=y and out(2,0)=z.
func ShearX3(y, z scalar.Scalar) mat.Mat3 {
	out := mat.Identity3()
	out[1] = y
	out[2] = z

	return out
}

// ShearY3 returns the 3×3 shear of the y axis: identity with
// out(0,1)=x and out(2,1)=z.
func ShearY3(x, z scalar.Scalar) mat.Mat3 {
	out := mat.Identity3()
	out[3] = x
	out[5] = z

	return out
}

// ShearZ3 returns the 3×3 shear of the z axis: identity with
// out(0,2)=x and out(1,2)=y.
func ShearZ3(x, y scalar.Scalar) mat.Mat3 {
	out := mat.Identity3()
	out[6] = x
	out[7] = y

	return out
}

// ShearX4 returns the 4×4 shear of the x axis (3×3 shear padded with
// the homogeneous identity row/column).
func ShearX4(y, z scalar.Scalar) mat.Mat4 {
	out := mat.Identity4()
	out[1] = y
	out[2] = z

	return out
}

// ShearY4 returns the 4×4 shear of the y axis.
func ShearY4(x, z scalar.Scalar) mat.Mat4 {
	out := mat.Identity4()
	out[4] = x
	out[6] = z

	return out
}

// ShearZ4 returns the 4×4 shear of the z axis.
func ShearZ4(x, y scalar.Scalar) mat.Mat4 {
	out := mat.Identity4()
	out[8] = x
	out[9] = y

	return out
}

// InvShear2 inverts a shear by negating every off-diagonal entry of s
// over an identity diagonal.
func InvShear2(s mat.Mat2) mat.Mat2 {
	out := mat.Identity2()
	out[1] = -s[1]
	out[2] = -s[2]

	return out
}

// InvShear3 inverts a shear by negating every off-diagonal entry of s
// over an identity diagonal.
func InvShear3(s mat.Mat3) mat.Mat3 {
	out := mat.Identity3()
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if i != j {
				out[j*3+i] = -s[j*3+i]
			}
		}
	}

	return out
}

// InvShear4 inverts a shear by negating every off-diagonal entry of s
// over an identity diagonal.
func InvShear4(s mat.Mat4) mat.Mat4 {
	out := mat.Identity4()
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if i != j {
				out[j*4+i] = -s[j*4+i]
			}
		}
	}

	return out
}
