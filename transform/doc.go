// Package transform builds the affine/projective transform matrices of
// the camel kernel: scale, shear, translation and rotation, plus the
// cheap inverse-of-generated-transform shortcuts.
//
// 🚀 What is transform?
//
//	Generators over the square mat shapes:
//	  • Scale2/3/4 and InvScale2/3/4
//	  • ShearX/Y[/Z] per shape and InvShear2/3/4
//	  • Translation / InvTranslation (4×4)
//	  • Rotation2, per-axis RotationX/Y/Z (3×3 and 4×4), and
//	    arbitrary-axis RotationAxis / RotationAxis4 (Rodrigues)
//	  • InvRotation2/3/4 (plain transpose)
//
// Conventions:
//
//   - Handedness selects the sign convention for positive angles:
//     RightHanded rotates counter-clockwise looking down the positive
//     axis, LeftHanded is the same rotation with the angle negated.
//     The convention applies uniformly — per-axis, planar and
//     arbitrary-axis generators all treat LeftHanded as a negated
//     angle.
//   - RotationAxis normalises its axis internally; callers may pass any
//     nonzero direction vector.
//   - The Inv* shortcuts read parameters back out of an
//     already-constructed matrix (the diagonal for InvScale, the
//     off-diagonals for InvShear, the last column for InvTranslation).
//     Passing a matrix that did not come from the matching generator
//     yields no particular inverse; the precondition is documented, not
//     validated.
//   - Every generator writes every component of its result and none
//     signals errors: InvScale of a zero factor produces IEEE-754
//     infinity in that slot.
package transform
