// Package camel is a numeric foundation library for graphics and physics:
// fixed-size vectors, fixed-shape dense matrices, affine/projective
// transform generators, and an integer-theory toolkit.
//
// 🚀 What is camel?
//
//	A small, allocation-free linear algebra kernel plus number theory:
//		• Vectors: Vec2 / Vec3 / Vec4 value types with the full
//		  elementwise, metric and geometric operation set
//		• Matrices: every dense shape in {2,3,4}×{2,3,4}, column-major,
//		  with products for all conformable pairs, determinant, inverse,
//		  transpose and trace
//		• Transforms: scale, shear, translation and rotation generators
//		  (per-axis and arbitrary-axis, both handedness conventions)
//		  with inverse shortcuts
//		• Primes: primality testing, sieve generation, factorisation,
//		  gcd and lcm
//
// ✨ Why choose camel?
//
//   - Value semantics – every algebra type is plain stack data; inputs
//     are never mutated, outputs are always fully defined
//   - Compile-time shapes – a 2×3 by 4×4 product is a type error, not a
//     runtime panic
//   - Pure Go – no cgo, no hidden deps, fully reentrant
//   - Predictable numerics – one Epsilon, documented IEEE-754 edge
//     behavior, no silent clamping beyond what is documented
//
// Everything is organized under five subpackages:
//
//	scalar/    — the Scalar type, Epsilon, comparison and trig helpers
//	vec/       — fixed-size vectors Vec2, Vec3, Vec4
//	mat/       — fixed-shape dense matrices, Mat2 through Mat4
//	transform/ — affine/projective transform generators and inverses
//	primes/    — primality, sieves, factorisation, gcd/lcm
//
// Quick example:
//
//	r := transform.RotationZ(scalar.Pi/2, transform.RightHanded)
//	p := r.MulVec(vec.UnitX3()) // ≈ (0, 1, 0)
//
// Dive into the per-package doc.go files for the full operation sets and
// numeric policies.
//
//	go get github.com/katalvlaran/camel
package camel
