// Package mat: elementwise operations and transposes. Each method is a
// thin typed wrapper over the shared kernels, so shape safety lives in
// the signatures and the arithmetic lives in one place.
package mat

import "github.com/katalvlaran/camel/scalar"

// Add returns m + b elementwise.
func (m Mat2) Add(b Mat2) Mat2 {
	var out Mat2
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat2) Sub(b Mat2) Mat2 {
	var out Mat2
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat2) Scale(t scalar.Scalar) Mat2 {
	var out Mat2
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat2) AddScalar(t scalar.Scalar) Mat2 {
	var out Mat2
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat2) Equal(b Mat2) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat2) EqualEps(b Mat2, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 2×2 transpose of m.
func (m Mat2) Transpose() Mat2 {
	var out Mat2
	transposeKernel(m[:], 2, 2, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat2x3) Add(b Mat2x3) Mat2x3 {
	var out Mat2x3
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat2x3) Sub(b Mat2x3) Mat2x3 {
	var out Mat2x3
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat2x3) Scale(t scalar.Scalar) Mat2x3 {
	var out Mat2x3
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat2x3) AddScalar(t scalar.Scalar) Mat2x3 {
	var out Mat2x3
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat2x3) Equal(b Mat2x3) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat2x3) EqualEps(b Mat2x3, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 3×2 transpose of m.
func (m Mat2x3) Transpose() Mat3x2 {
	var out Mat3x2
	transposeKernel(m[:], 2, 3, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat2x4) Add(b Mat2x4) Mat2x4 {
	var out Mat2x4
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat2x4) Sub(b Mat2x4) Mat2x4 {
	var out Mat2x4
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat2x4) Scale(t scalar.Scalar) Mat2x4 {
	var out Mat2x4
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat2x4) AddScalar(t scalar.Scalar) Mat2x4 {
	var out Mat2x4
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat2x4) Equal(b Mat2x4) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat2x4) EqualEps(b Mat2x4, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 4×2 transpose of m.
func (m Mat2x4) Transpose() Mat4x2 {
	var out Mat4x2
	transposeKernel(m[:], 2, 4, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat3x2) Add(b Mat3x2) Mat3x2 {
	var out Mat3x2
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat3x2) Sub(b Mat3x2) Mat3x2 {
	var out Mat3x2
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat3x2) Scale(t scalar.Scalar) Mat3x2 {
	var out Mat3x2
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat3x2) AddScalar(t scalar.Scalar) Mat3x2 {
	var out Mat3x2
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat3x2) Equal(b Mat3x2) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat3x2) EqualEps(b Mat3x2, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 2×3 transpose of m.
func (m Mat3x2) Transpose() Mat2x3 {
	var out Mat2x3
	transposeKernel(m[:], 3, 2, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat3) Add(b Mat3) Mat3 {
	var out Mat3
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat3) Sub(b Mat3) Mat3 {
	var out Mat3
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat3) Scale(t scalar.Scalar) Mat3 {
	var out Mat3
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat3) AddScalar(t scalar.Scalar) Mat3 {
	var out Mat3
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat3) Equal(b Mat3) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat3) EqualEps(b Mat3, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 3×3 transpose of m.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	transposeKernel(m[:], 3, 3, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat3x4) Add(b Mat3x4) Mat3x4 {
	var out Mat3x4
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat3x4) Sub(b Mat3x4) Mat3x4 {
	var out Mat3x4
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat3x4) Scale(t scalar.Scalar) Mat3x4 {
	var out Mat3x4
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat3x4) AddScalar(t scalar.Scalar) Mat3x4 {
	var out Mat3x4
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat3x4) Equal(b Mat3x4) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat3x4) EqualEps(b Mat3x4, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 4×3 transpose of m.
func (m Mat3x4) Transpose() Mat4x3 {
	var out Mat4x3
	transposeKernel(m[:], 3, 4, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat4x2) Add(b Mat4x2) Mat4x2 {
	var out Mat4x2
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat4x2) Sub(b Mat4x2) Mat4x2 {
	var out Mat4x2
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat4x2) Scale(t scalar.Scalar) Mat4x2 {
	var out Mat4x2
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat4x2) AddScalar(t scalar.Scalar) Mat4x2 {
	var out Mat4x2
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat4x2) Equal(b Mat4x2) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat4x2) EqualEps(b Mat4x2, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 2×4 transpose of m.
func (m Mat4x2) Transpose() Mat2x4 {
	var out Mat2x4
	transposeKernel(m[:], 4, 2, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat4x3) Add(b Mat4x3) Mat4x3 {
	var out Mat4x3
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat4x3) Sub(b Mat4x3) Mat4x3 {
	var out Mat4x3
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat4x3) Scale(t scalar.Scalar) Mat4x3 {
	var out Mat4x3
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat4x3) AddScalar(t scalar.Scalar) Mat4x3 {
	var out Mat4x3
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat4x3) Equal(b Mat4x3) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat4x3) EqualEps(b Mat4x3, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 3×4 transpose of m.
func (m Mat4x3) Transpose() Mat3x4 {
	var out Mat3x4
	transposeKernel(m[:], 4, 3, out[:])

	return out
}

// Add returns m + b elementwise.
func (m Mat4) Add(b Mat4) Mat4 {
	var out Mat4
	addKernel(m[:], b[:], 1, out[:])

	return out
}

// Sub returns m - b elementwise.
func (m Mat4) Sub(b Mat4) Mat4 {
	var out Mat4
	addKernel(m[:], b[:], -1, out[:])

	return out
}

// Scale returns m with every element multiplied by t.
func (m Mat4) Scale(t scalar.Scalar) Mat4 {
	var out Mat4
	scaleKernel(m[:], t, out[:])

	return out
}

// AddScalar returns m with t added to every element.
func (m Mat4) AddScalar(t scalar.Scalar) Mat4 {
	var out Mat4
	addScalarKernel(m[:], t, out[:])

	return out
}

// Equal reports elementwise equality under scalar.Epsilon.
func (m Mat4) Equal(b Mat4) bool { return eqKernel(m[:], b[:], scalar.Epsilon) }

// EqualEps reports elementwise equality under a caller tolerance.
func (m Mat4) EqualEps(b Mat4, eps scalar.Scalar) bool { return eqKernel(m[:], b[:], eps) }

// Transpose returns the 4×4 transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	transposeKernel(m[:], 4, 4, out[:])

	return out
}
