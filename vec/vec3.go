package vec

import (
	"fmt"

	"github.com/katalvlaran/camel/scalar"
)

// NewVec3 creates a 3-component vector from the supplied values.
func NewVec3(x, y, z scalar.Scalar) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero3 returns the 3-component zero vector.
func Zero3() Vec3 { return Vec3{} }

// One3 returns the 3-component all-ones vector.
func One3() Vec3 { return Vec3{1, 1, 1} }

// UnitX3 returns the basis vector along x: (1, 0, 0).
func UnitX3() Vec3 { return Vec3{1, 0, 0} }

// UnitY3 returns the basis vector along y: (0, 1, 0).
func UnitY3() Vec3 { return Vec3{0, 1, 0} }

// UnitZ3 returns the basis vector along z: (0, 0, 1).
func UnitZ3() Vec3 { return Vec3{0, 0, 1} }

// ToVec4 extends v with the supplied w component.
func (v Vec3) ToVec4(w scalar.Scalar) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Add returns v + w componentwise.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w componentwise.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// AddScalar returns v with t added to every component.
func (v Vec3) AddScalar(t scalar.Scalar) Vec3 {
	return Vec3{v.X + t, v.Y + t, v.Z + t}
}

// SubScalar returns v with t subtracted from every component.
func (v Vec3) SubScalar(t scalar.Scalar) Vec3 {
	return Vec3{v.X - t, v.Y - t, v.Z - t}
}

// Scale returns v with every component multiplied by t.
func (v Vec3) Scale(t scalar.Scalar) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Mul returns the componentwise product of v and w.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Div returns the componentwise quotient of v and w.
// Zero components of w yield IEEE-754 Inf/NaN results.
func (v Vec3) Div(w Vec3) Vec3 {
	return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z}
}

// Len2 returns the squared Euclidean norm of v.
func (v Vec3) Len2() scalar.Scalar {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the Euclidean norm of v.
func (v Vec3) Len() scalar.Scalar {
	return scalar.Sqrt(v.Len2())
}

// Normalize returns v divided by its length. The zero vector produces
// NaN components (IEEE-754 division), not an error.
func (v Vec3) Normalize() Vec3 {
	length := v.Len()

	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) scalar.Scalar {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w: a vector orthogonal to
// both, with right-hand orientation.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) scalar.Scalar {
	return v.Sub(w).Len()
}

// Distance2 returns the squared Euclidean distance between v and w.
func (v Vec3) Distance2(w Vec3) scalar.Scalar {
	return v.Sub(w).Len2()
}

// Angle returns the angle between v and w in radians, in [0, π].
// The acos argument is clamped to [-1, 1] to absorb rounding.
func (v Vec3) Angle(w Vec3) scalar.Scalar {
	c := v.Dot(w) / (v.Len() * w.Len())

	return scalar.Acos(scalar.Clamp(c, -1, 1))
}

// Project returns the projection of v onto w: (v·w / w·w)·w.
func (v Vec3) Project(w Vec3) Vec3 {
	return w.Scale(v.Dot(w) / w.Dot(w))
}

// Reflect returns v reflected across the plane with normal n.
// n need not be unit length; the formula divides by Dot(n, n).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n) / n.Dot(n)))
}

// Lerp returns the linear interpolation from v to w at parameter t.
func (v Vec3) Lerp(w Vec3, t scalar.Scalar) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Equal reports componentwise equality under scalar.Epsilon.
func (v Vec3) Equal(w Vec3) bool {
	return v.EqualEps(w, scalar.Epsilon)
}

// EqualEps reports componentwise equality under a caller tolerance.
func (v Vec3) EqualEps(w Vec3, eps scalar.Scalar) bool {
	if scalar.Abs(v.X-w.X) > eps {
		return false
	}
	if scalar.Abs(v.Y-w.Y) > eps {
		return false
	}
	if scalar.Abs(v.Z-w.Z) > eps {
		return false
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
