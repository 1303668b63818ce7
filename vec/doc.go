// Package vec provides fixed-size dense vectors of lengths 2, 3 and 4
// for graphics and physics code.
//
// 🚀 What is vec?
//
//	Plain value types Vec2, Vec3, Vec4 with the complete small-vector
//	operation set:
//	  • componentwise arithmetic (Add, Sub, Mul, Div, Scale, broadcasts)
//	  • metric queries (Len, Len2, Distance, Distance2, Angle)
//	  • geometry (Dot, Cross on Vec3, Project, Reflect, Normalize, Lerp)
//	  • tolerance equality (Equal under scalar.Epsilon, EqualEps)
//
// Semantics:
//
//   - Every operation is a pure function of its inputs: receivers are
//     value types, nothing is mutated, every component of a result is
//     written. Two vectors with equal components are indistinguishable.
//   - Division by zero follows IEEE-754: Normalize of the zero vector
//     yields NaN/Inf components rather than an error.
//   - Angle clamps its acos argument to [-1, 1], so the angle between a
//     vector and itself is exactly 0 even under rounding.
//   - Reflect does not require a unit normal; the formula divides by
//     Dot(n, n) and therefore self-normalises.
//
// Basis constructors UnitX*/UnitY*/UnitZ*/UnitW* return the canonical
// axis vectors; Zero* and One* the all-zeros and all-ones vectors.
package vec
