// Package transform: rotation generators. Per-axis rotations embed the
// standard [[c, -s], [s, c]] block in the identity over the two
// non-axis coordinates; arbitrary-axis rotations normalise the axis and
// apply the Rodrigues formula. Left-handed is uniformly the negated
// angle. Rotations are orthogonal, so the inverse shortcuts are plain
// transposes.
package transform

import (
	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/scalar"
	"github.com/katalvlaran/camel/vec"
)

// Rotation2 returns the 2×2 planar rotation by theta radians.
// RightHanded maps (1, 0) toward (0, 1).
func Rotation2(theta scalar.Scalar, h Handedness) mat.Mat2 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat2(
		c, -s,
		s, c)
}

// RotationX returns the 3×3 rotation about the x axis.
func RotationX(theta scalar.Scalar, h Handedness) mat.Mat3 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c)
}

// RotationY returns the 3×3 rotation about the y axis.
func RotationY(theta scalar.Scalar, h Handedness) mat.Mat3 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c)
}

// RotationZ returns the 3×3 rotation about the z axis.
func RotationZ(theta scalar.Scalar, h Handedness) mat.Mat3 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1)
}

// RotationX4 returns the 4×4 rotation about the x axis.
func RotationX4(theta scalar.Scalar, h Handedness) mat.Mat4 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1)
}

// RotationY4 returns the 4×4 rotation about the y axis.
func RotationY4(theta scalar.Scalar, h Handedness) mat.Mat4 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1)
}

// RotationZ4 returns the 4×4 rotation about the z axis.
func RotationZ4(theta scalar.Scalar, h Handedness) mat.Mat4 {
	a := signedAngle(theta, h)
	c, s := scalar.Cos(a), scalar.Sin(a)

	return mat.NewMat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
}

// rodrigues builds the 3×3 rotation about the unit axis a by the
// already-signed angle: R = cosθ·I + (1-cosθ)·aaᵀ + sinθ·[a]×.
func rodrigues(axis vec.Vec3, angle scalar.Scalar) mat.Mat3 {
	a := axis.Normalize()
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	k := 1 - c

	return mat.NewMat3(
		c+k*a.X*a.X, k*a.X*a.Y-s*a.Z, k*a.X*a.Z+s*a.Y,
		k*a.X*a.Y+s*a.Z, c+k*a.Y*a.Y, k*a.Y*a.Z-s*a.X,
		k*a.X*a.Z-s*a.Y, k*a.Y*a.Z+s*a.X, c+k*a.Z*a.Z)
}

// RotationAxis returns the 3×3 rotation about an arbitrary axis by
// theta radians. The axis is normalised internally; any nonzero
// direction works.
func RotationAxis(axis vec.Vec3, theta scalar.Scalar, h Handedness) mat.Mat3 {
	return rodrigues(axis, signedAngle(theta, h))
}

// RotationAxis4 returns the 4×4 rotation about an arbitrary axis: the
// Rodrigues block padded with the homogeneous identity row/column.
func RotationAxis4(axis vec.Vec3, theta scalar.Scalar, h Handedness) mat.Mat4 {
	r := rodrigues(axis, signedAngle(theta, h))

	out := mat.Identity4()
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			out[j*4+i] = r[j*3+i]
		}
	}

	return out
}

// InvRotation2 inverts a rotation by transposing it.
func InvRotation2(r mat.Mat2) mat.Mat2 { return r.Transpose() }

// InvRotation3 inverts a rotation by transposing it.
func InvRotation3(r mat.Mat3) mat.Mat3 { return r.Transpose() }

// InvRotation4 inverts a rotation by transposing it.
func InvRotation4(r mat.Mat4) mat.Mat4 { return r.Transpose() }
