// Package mat: per-shape constructors. NewMat* take elements in
// row-major (row, col) reading order and store them column-major;
// Zero*, Ones* and Identity* build the named constant matrices.
package mat

import "github.com/katalvlaran/camel/scalar"

// NewMat2 builds a 2×2 matrix from row-major elements.
func NewMat2(m00, m01, m10, m11 scalar.Scalar) Mat2 {
	var out Mat2
	fromRowsKernel([]scalar.Scalar{m00, m01, m10, m11}, 2, 2, out[:])

	return out
}

// NewMat2x3 builds a 2×3 matrix from row-major elements.
func NewMat2x3(m00, m01, m02, m10, m11, m12 scalar.Scalar) Mat2x3 {
	var out Mat2x3
	fromRowsKernel([]scalar.Scalar{m00, m01, m02, m10, m11, m12}, 2, 3, out[:])

	return out
}

// NewMat2x4 builds a 2×4 matrix from row-major elements.
func NewMat2x4(m00, m01, m02, m03, m10, m11, m12, m13 scalar.Scalar) Mat2x4 {
	var out Mat2x4
	fromRowsKernel([]scalar.Scalar{m00, m01, m02, m03, m10, m11, m12, m13}, 2, 4, out[:])

	return out
}

// NewMat3x2 builds a 3×2 matrix from row-major elements.
func NewMat3x2(m00, m01, m10, m11, m20, m21 scalar.Scalar) Mat3x2 {
	var out Mat3x2
	fromRowsKernel([]scalar.Scalar{m00, m01, m10, m11, m20, m21}, 3, 2, out[:])

	return out
}

// NewMat3 builds a 3×3 matrix from row-major elements.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 scalar.Scalar) Mat3 {
	var out Mat3
	fromRowsKernel([]scalar.Scalar{m00, m01, m02, m10, m11, m12, m20, m21, m22}, 3, 3, out[:])

	return out
}

// NewMat3x4 builds a 3×4 matrix from row-major elements.
func NewMat3x4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23 scalar.Scalar) Mat3x4 {
	var out Mat3x4
	fromRowsKernel([]scalar.Scalar{m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23}, 3, 4, out[:])

	return out
}

// NewMat4x2 builds a 4×2 matrix from row-major elements.
func NewMat4x2(m00, m01, m10, m11, m20, m21, m30, m31 scalar.Scalar) Mat4x2 {
	var out Mat4x2
	fromRowsKernel([]scalar.Scalar{m00, m01, m10, m11, m20, m21, m30, m31}, 4, 2, out[:])

	return out
}

// NewMat4x3 builds a 4×3 matrix from row-major elements.
func NewMat4x3(m00, m01, m02, m10, m11, m12, m20, m21, m22, m30, m31, m32 scalar.Scalar) Mat4x3 {
	var out Mat4x3
	fromRowsKernel([]scalar.Scalar{m00, m01, m02, m10, m11, m12, m20, m21, m22, m30, m31, m32}, 4, 3, out[:])

	return out
}

// NewMat4 builds a 4×4 matrix from row-major elements.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 scalar.Scalar,
) Mat4 {
	var out Mat4
	fromRowsKernel([]scalar.Scalar{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}, 4, 4, out[:])

	return out
}

// Zero2 returns the 2×2 zero matrix.
func Zero2() Mat2 { return Mat2{} }

// Zero2x3 returns the 2×3 zero matrix.
func Zero2x3() Mat2x3 { return Mat2x3{} }

// Zero2x4 returns the 2×4 zero matrix.
func Zero2x4() Mat2x4 { return Mat2x4{} }

// Zero3x2 returns the 3×2 zero matrix.
func Zero3x2() Mat3x2 { return Mat3x2{} }

// Zero3 returns the 3×3 zero matrix.
func Zero3() Mat3 { return Mat3{} }

// Zero3x4 returns the 3×4 zero matrix.
func Zero3x4() Mat3x4 { return Mat3x4{} }

// Zero4x2 returns the 4×2 zero matrix.
func Zero4x2() Mat4x2 { return Mat4x2{} }

// Zero4x3 returns the 4×3 zero matrix.
func Zero4x3() Mat4x3 { return Mat4x3{} }

// Zero4 returns the 4×4 zero matrix.
func Zero4() Mat4 { return Mat4{} }

// Ones2 returns the 2×2 all-ones matrix.
func Ones2() Mat2 {
	var out Mat2
	onesKernel(out[:])

	return out
}

// Ones2x3 returns the 2×3 all-ones matrix.
func Ones2x3() Mat2x3 {
	var out Mat2x3
	onesKernel(out[:])

	return out
}

// Ones2x4 returns the 2×4 all-ones matrix.
func Ones2x4() Mat2x4 {
	var out Mat2x4
	onesKernel(out[:])

	return out
}

// Ones3x2 returns the 3×2 all-ones matrix.
func Ones3x2() Mat3x2 {
	var out Mat3x2
	onesKernel(out[:])

	return out
}

// Ones3 returns the 3×3 all-ones matrix.
func Ones3() Mat3 {
	var out Mat3
	onesKernel(out[:])

	return out
}

// Ones3x4 returns the 3×4 all-ones matrix.
func Ones3x4() Mat3x4 {
	var out Mat3x4
	onesKernel(out[:])

	return out
}

// Ones4x2 returns the 4×2 all-ones matrix.
func Ones4x2() Mat4x2 {
	var out Mat4x2
	onesKernel(out[:])

	return out
}

// Ones4x3 returns the 4×3 all-ones matrix.
func Ones4x3() Mat4x3 {
	var out Mat4x3
	onesKernel(out[:])

	return out
}

// Ones4 returns the 4×4 all-ones matrix.
func Ones4() Mat4 {
	var out Mat4
	onesKernel(out[:])

	return out
}

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 {
	var out Mat2
	identityKernel(2, 2, out[:])

	return out
}

// Identity2x3 returns the 2×3 matrix with an identity top-left block.
func Identity2x3() Mat2x3 {
	var out Mat2x3
	identityKernel(2, 3, out[:])

	return out
}

// Identity2x4 returns the 2×4 matrix with an identity top-left block.
func Identity2x4() Mat2x4 {
	var out Mat2x4
	identityKernel(2, 4, out[:])

	return out
}

// Identity3x2 returns the 3×2 matrix with an identity top-left block.
func Identity3x2() Mat3x2 {
	var out Mat3x2
	identityKernel(3, 2, out[:])

	return out
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	var out Mat3
	identityKernel(3, 3, out[:])

	return out
}

// Identity3x4 returns the 3×4 matrix with an identity top-left block.
func Identity3x4() Mat3x4 {
	var out Mat3x4
	identityKernel(3, 4, out[:])

	return out
}

// Identity4x2 returns the 4×2 matrix with an identity top-left block.
func Identity4x2() Mat4x2 {
	var out Mat4x2
	identityKernel(4, 2, out[:])

	return out
}

// Identity4x3 returns the 4×3 matrix with an identity top-left block.
func Identity4x3() Mat4x3 {
	var out Mat4x3
	identityKernel(4, 3, out[:])

	return out
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() Mat4 {
	var out Mat4
	identityKernel(4, 4, out[:])

	return out
}
