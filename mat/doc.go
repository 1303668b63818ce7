// Package mat provides fixed-shape dense matrices for every shape in
// {2,3,4}×{2,3,4}, the workhorse of the camel kernel.
//
// 🚀 What is mat?
//
//	Nine value types — Mat2, Mat3, Mat4 and the six rectangular shapes
//	Mat2x3 … Mat4x3 — each a flat column-major array with:
//	  • elementwise Add, Sub, Scale, AddScalar and ε-equality
//	  • matrix products for every conformable pair of shapes
//	    (MulMat* methods; a non-conformable product is a type error)
//	  • matrix–vector products both ways: MulVec (A·v) and VecMul (vᵀ·A)
//	  • Transpose for all shapes (swapped-shape result type)
//	  • Det, Inverse and Trace on the square shapes
//	  • Zero*, Ones* and Identity* constructors per shape
//
// Storage and conventions:
//
//   - Storage is column-major: element (row i, col j) of an r×c matrix
//     lives at flat index j·r + i. The At/Set accessors and the NewMat*
//     constructors use (row, col) ordering, so call sites read naturally.
//   - All operations are pure: receivers and arguments are value types,
//     results are freshly built with every component written. Writing a
//     result back over an input (m = m.Mul(m)) is always safe.
//   - Inverse tests the determinant against exact zero and returns
//     ErrSingular for a determinant-zero matrix; near-singular matrices
//     invert without error (documented sharp edge).
//
// Grab a shape, multiply away — shape mismatches never survive
// compilation.
package mat
