// Package mat: determinant, inverse and trace for the square shapes.
// The 2×2 and 3×3 routines use the classic closed forms; the 4×4
// determinant and inverse share a fixed cofactor expansion with pair
// products hoisted into t0..t23 locals (no pivoting). Inverse tests the
// determinant against exact zero: a determinant-zero matrix returns
// ErrSingular, a merely near-singular one inverts without error.
package mat

import "github.com/katalvlaran/camel/scalar"

// Det returns the determinant of the 2×2 matrix.
func (m Mat2) Det() scalar.Scalar {
	// m00*m11 - m01*m10 with column-major reads.
	return m[0]*m[3] - m[2]*m[1]
}

// Trace returns the sum of the diagonal entries.
func (m Mat2) Trace() scalar.Scalar { return traceKernel(m[:], 2) }

// Inverse returns m⁻¹, or ErrSingular when Det is exactly zero.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, ErrSingular
	}
	d := 1 / det

	var out Mat2
	out[0] = m[3] * d  // m11
	out[1] = -m[1] * d // -m10
	out[2] = -m[2] * d // -m01
	out[3] = m[0] * d  // m00

	return out, nil
}

// Det returns the determinant via expansion along row 0.
func (m Mat3) Det() scalar.Scalar {
	a, b, c := m[0], m[3], m[6] // row 0
	d, e, f := m[1], m[4], m[7] // row 1
	g, h, i := m[2], m[5], m[8] // row 2

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() scalar.Scalar { return traceKernel(m[:], 3) }

// Inverse returns m⁻¹ via the adjugate, or ErrSingular when Det is
// exactly zero.
func (m Mat3) Inverse() (Mat3, error) {
	a, b, c := m[0], m[3], m[6] // row 0
	d, e, f := m[1], m[4], m[7] // row 1
	g, h, i := m[2], m[5], m[8] // row 2

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Mat3{}, ErrSingular
	}
	dd := 1 / det

	var out Mat3
	out[0] = (e*i - f*h) * dd // inv00
	out[1] = (f*g - d*i) * dd // inv10
	out[2] = (d*h - e*g) * dd // inv20
	out[3] = (c*h - b*i) * dd // inv01
	out[4] = (a*i - c*g) * dd // inv11
	out[5] = (b*g - a*h) * dd // inv21
	out[6] = (b*f - c*e) * dd // inv02
	out[7] = (c*d - a*f) * dd // inv12
	out[8] = (a*e - b*d) * dd // inv22

	return out, nil
}

// Det returns the determinant via the fixed 4×4 cofactor expansion
// (row-0 cofactors assembled from hoisted pair products).
func (m Mat4) Det() scalar.Scalar {
	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]

	c0 := (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	c1 := (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	c2 := (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	c3 := (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	return m[0]*c0 + m[4]*c1 + m[8]*c2 + m[12]*c3
}

// Trace returns the sum of the diagonal entries.
func (m Mat4) Trace() scalar.Scalar { return traceKernel(m[:], 4) }

// Inverse returns m⁻¹ via the cofactor transpose, or ErrSingular when
// Det is exactly zero. The expansion works on the flat storage; the
// layout cancels because inversion commutes with transposition.
func (m Mat4) Inverse() (Mat4, error) {
	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var out Mat4
	out[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	out[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	out[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	out[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*out[0] + m[4]*out[1] + m[8]*out[2] + m[12]*out[3]
	if det == 0 {
		return Mat4{}, ErrSingular
	}
	d := 1 / det

	out[0] *= d
	out[1] *= d
	out[2] *= d
	out[3] *= d
	out[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	out[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	out[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	out[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	out[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	out[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	out[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	out[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	out[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	out[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	out[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	out[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out, nil
}
