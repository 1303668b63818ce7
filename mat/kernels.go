// Package mat: shared flat-slice kernels. Every typed operation wraps
// one of these so each algorithm is written once and the nine shape
// types stay thin. Kernels never allocate; callers pass a fresh output
// slice, so operands are never mutated and aliasing cannot occur.
package mat

import "github.com/katalvlaran/camel/scalar"

// addKernel computes out = a + sign*b elementwise for sign ∈ {+1, -1}.
// Keeping sign as a scalar shares one loop between Add and Sub without a
// branch in the hot path.
// Complexity: O(n).
func addKernel(a, b []scalar.Scalar, sign scalar.Scalar, out []scalar.Scalar) {
	for i := range out {
		out[i] = a[i] + sign*b[i]
	}
}

// scaleKernel computes out = t*a elementwise.
// Complexity: O(n).
func scaleKernel(a []scalar.Scalar, t scalar.Scalar, out []scalar.Scalar) {
	for i := range out {
		out[i] = a[i] * t
	}
}

// addScalarKernel computes out = a + t broadcast across every element.
// Complexity: O(n).
func addScalarKernel(a []scalar.Scalar, t scalar.Scalar, out []scalar.Scalar) {
	for i := range out {
		out[i] = a[i] + t
	}
}

// mulKernel computes the column-major product of a (r×c) and b (c×k)
// into out (r×k): out(i,j) = Σ_t a(i,t)·b(t,j), with element (i,j) of an
// m-row matrix at flat index j*m + i.
// Complexity: O(r·c·k).
func mulKernel(a, b []scalar.Scalar, r, c, k int, out []scalar.Scalar) {
	var sum scalar.Scalar
	for j := 0; j < k; j++ {
		for i := 0; i < r; i++ {
			sum = 0
			for t := 0; t < c; t++ {
				sum += a[t*r+i] * b[j*c+t]
			}
			out[j*r+i] = sum
		}
	}
}

// transposeKernel writes the c×r transpose of the r×c matrix a into
// out: out(j,i) = a(i,j). A pure element copy, so applying it twice
// reproduces the input bitwise.
// Complexity: O(r·c).
func transposeKernel(a []scalar.Scalar, r, c int, out []scalar.Scalar) {
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out[i*c+j] = a[j*r+i]
		}
	}
}

// eqKernel reports elementwise |a-b| ≤ eps across the whole backing
// storage.
// Complexity: O(n).
func eqKernel(a, b []scalar.Scalar, eps scalar.Scalar) bool {
	for i := range a {
		if scalar.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// identityKernel zeroes out and sets the top-left min(r,c) diagonal
// block to ones (the rectangular identity used by Identity*
// constructors).
// Complexity: O(r·c).
func identityKernel(r, c int, out []scalar.Scalar) {
	for i := range out {
		out[i] = 0
	}
	n := r
	if c < n {
		n = c
	}
	for i := 0; i < n; i++ {
		out[i*r+i] = 1
	}
}

// onesKernel fills out with ones.
// Complexity: O(n).
func onesKernel(out []scalar.Scalar) {
	for i := range out {
		out[i] = 1
	}
}

// fromRowsKernel copies row-major constructor arguments vals into the
// column-major backing storage out for an r×c shape. Constructors take
// row-major arguments because literals then read like the matrix.
// Complexity: O(r·c).
func fromRowsKernel(vals []scalar.Scalar, r, c int, out []scalar.Scalar) {
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j*r+i] = vals[i*c+j]
		}
	}
}

// traceKernel sums the diagonal of a square r×r matrix.
// Complexity: O(r).
func traceKernel(a []scalar.Scalar, r int) scalar.Scalar {
	var sum scalar.Scalar
	for i := 0; i < r; i++ {
		sum += a[i*r+i]
	}

	return sum
}
