// Package scalar defines the real scalar type shared by the whole camel
// kernel, the numeric tolerance EPSILON, and the small set of comparison
// and transcendental helpers every other package builds on.
//
// Numeric policy:
//
//   - Scalar is float64 across every public surface of the library.
//   - Two scalars are "equal" when |a-b| ≤ Epsilon. Containers compare
//     equal when all corresponding components are equal under Epsilon.
//   - A parallel EqualEps family accepts a caller-supplied tolerance for
//     tests that need a stricter or looser bound.
//   - IEEE-754 exceptional values are propagated, never converted to
//     errors: dividing by a zero length yields Inf/NaN components.
//
// The trig/sqrt wrappers exist so that the kernel's transcendental calls
// go through one seam; they are thin aliases over the standard library.
package scalar
