package vec

import (
	"fmt"

	"github.com/katalvlaran/camel/scalar"
)

// NewVec4 creates a 4-component vector from the supplied values.
func NewVec4(x, y, z, w scalar.Scalar) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Zero4 returns the 4-component zero vector.
func Zero4() Vec4 { return Vec4{} }

// One4 returns the 4-component all-ones vector.
func One4() Vec4 { return Vec4{1, 1, 1, 1} }

// UnitX4 returns the basis vector along x: (1, 0, 0, 0).
func UnitX4() Vec4 { return Vec4{1, 0, 0, 0} }

// UnitY4 returns the basis vector along y: (0, 1, 0, 0).
func UnitY4() Vec4 { return Vec4{0, 1, 0, 0} }

// UnitZ4 returns the basis vector along z: (0, 0, 1, 0).
func UnitZ4() Vec4 { return Vec4{0, 0, 1, 0} }

// UnitW4 returns the basis vector along w: (0, 0, 0, 1).
func UnitW4() Vec4 { return Vec4{0, 0, 0, 1} }

// ToVec3 drops the w component.
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + w componentwise.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w componentwise.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// AddScalar returns v with t added to every component.
func (v Vec4) AddScalar(t scalar.Scalar) Vec4 {
	return Vec4{v.X + t, v.Y + t, v.Z + t, v.W + t}
}

// SubScalar returns v with t subtracted from every component.
func (v Vec4) SubScalar(t scalar.Scalar) Vec4 {
	return Vec4{v.X - t, v.Y - t, v.Z - t, v.W - t}
}

// Scale returns v with every component multiplied by t.
func (v Vec4) Scale(t scalar.Scalar) Vec4 {
	return Vec4{v.X * t, v.Y * t, v.Z * t, v.W * t}
}

// Mul returns the componentwise product of v and w.
func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// Div returns the componentwise quotient of v and w.
// Zero components of w yield IEEE-754 Inf/NaN results.
func (v Vec4) Div(w Vec4) Vec4 {
	return Vec4{v.X / w.X, v.Y / w.Y, v.Z / w.Z, v.W / w.W}
}

// Len2 returns the squared Euclidean norm of v.
func (v Vec4) Len2() scalar.Scalar {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Len returns the Euclidean norm of v.
func (v Vec4) Len() scalar.Scalar {
	return scalar.Sqrt(v.Len2())
}

// Normalize returns v divided by its length. The zero vector produces
// NaN components (IEEE-754 division), not an error.
func (v Vec4) Normalize() Vec4 {
	length := v.Len()

	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

// Dot returns the dot product of v and w.
func (v Vec4) Dot(w Vec4) scalar.Scalar {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Distance returns the Euclidean distance between v and w.
func (v Vec4) Distance(w Vec4) scalar.Scalar {
	return v.Sub(w).Len()
}

// Distance2 returns the squared Euclidean distance between v and w.
func (v Vec4) Distance2(w Vec4) scalar.Scalar {
	return v.Sub(w).Len2()
}

// Angle returns the angle between v and w in radians, in [0, π].
// The acos argument is clamped to [-1, 1] to absorb rounding.
func (v Vec4) Angle(w Vec4) scalar.Scalar {
	c := v.Dot(w) / (v.Len() * w.Len())

	return scalar.Acos(scalar.Clamp(c, -1, 1))
}

// Project returns the projection of v onto w: (v·w / w·w)·w.
func (v Vec4) Project(w Vec4) Vec4 {
	return w.Scale(v.Dot(w) / w.Dot(w))
}

// Reflect returns v reflected across the hyperplane with normal n.
// n need not be unit length; the formula divides by Dot(n, n).
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Sub(n.Scale(2 * v.Dot(n) / n.Dot(n)))
}

// Lerp returns the linear interpolation from v to w at parameter t.
func (v Vec4) Lerp(w Vec4, t scalar.Scalar) Vec4 {
	return v.Add(w.Sub(v).Scale(t))
}

// Equal reports componentwise equality under scalar.Epsilon.
func (v Vec4) Equal(w Vec4) bool {
	return v.EqualEps(w, scalar.Epsilon)
}

// EqualEps reports componentwise equality under a caller tolerance.
func (v Vec4) EqualEps(w Vec4, eps scalar.Scalar) bool {
	if scalar.Abs(v.X-w.X) > eps {
		return false
	}
	if scalar.Abs(v.Y-w.Y) > eps {
		return false
	}
	if scalar.Abs(v.Z-w.Z) > eps {
		return false
	}
	if scalar.Abs(v.W-w.W) > eps {
		return false
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
