package vec

import (
	"fmt"

	"github.com/katalvlaran/camel/scalar"
)

// NewVec2 creates a 2-component vector from the supplied values.
func NewVec2(x, y scalar.Scalar) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero2 returns the 2-component zero vector.
func Zero2() Vec2 { return Vec2{} }

// One2 returns the 2-component all-ones vector.
func One2() Vec2 { return Vec2{1, 1} }

// UnitX2 returns the basis vector along x: (1, 0).
func UnitX2() Vec2 { return Vec2{1, 0} }

// UnitY2 returns the basis vector along y: (0, 1).
func UnitY2() Vec2 { return Vec2{0, 1} }

// Add returns v + w componentwise.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w componentwise.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// AddScalar returns v with t added to every component.
func (v Vec2) AddScalar(t scalar.Scalar) Vec2 {
	return Vec2{v.X + t, v.Y + t}
}

// SubScalar returns v with t subtracted from every component.
func (v Vec2) SubScalar(t scalar.Scalar) Vec2 {
	return Vec2{v.X - t, v.Y - t}
}

// Scale returns v with every component multiplied by t.
func (v Vec2) Scale(t scalar.Scalar) Vec2 {
	return Vec2{v.X * t, v.Y * t}
}

// Mul returns the componentwise product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{v.X * w.X, v.Y * w.Y}
}

// Div returns the componentwise quotient of v and w.
// Zero components of w yield IEEE-754 Inf/NaN results.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{v.X / w.X, v.Y / w.Y}
}

// Len2 returns the squared Euclidean norm of v.
func (v Vec2) Len2() scalar.Scalar {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the Euclidean norm of v.
func (v Vec2) Len() scalar.Scalar {
	return scalar.Sqrt(v.Len2())
}

// Normalize returns v divided by its length. The zero vector produces
// NaN components (IEEE-754 division), not an error.
func (v Vec2) Normalize() Vec2 {
	length := v.Len()

	return Vec2{v.X / length, v.Y / length}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) scalar.Scalar {
	return v.X*w.X + v.Y*w.Y
}

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) scalar.Scalar {
	return v.Sub(w).Len()
}

// Distance2 returns the squared Euclidean distance between v and w.
func (v Vec2) Distance2(w Vec2) scalar.Scalar {
	return v.Sub(w).Len2()
}

// Angle returns the angle between v and w in radians, in [0, π].
// The acos argument is clamped to [-1, 1] to absorb rounding.
func (v Vec2) Angle(w Vec2) scalar.Scalar {
	c := v.Dot(w) / (v.Len() * w.Len())

	return scalar.Acos(scalar.Clamp(c, -1, 1))
}

// Project returns the projection of v onto w: (v·w / w·w)·w.
func (v Vec2) Project(w Vec2) Vec2 {
	return w.Scale(v.Dot(w) / w.Dot(w))
}

// Reflect returns v reflected across the plane with normal n.
// n need not be unit length; the formula divides by Dot(n, n).
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n) / n.Dot(n)))
}

// Lerp returns the linear interpolation from v to w at parameter t.
func (v Vec2) Lerp(w Vec2, t scalar.Scalar) Vec2 {
	return v.Add(w.Sub(v).Scale(t))
}

// Equal reports componentwise equality under scalar.Epsilon.
func (v Vec2) Equal(w Vec2) bool {
	return v.EqualEps(w, scalar.Epsilon)
}

// EqualEps reports componentwise equality under a caller tolerance.
func (v Vec2) EqualEps(w Vec2, eps scalar.Scalar) bool {
	if scalar.Abs(v.X-w.X) > eps {
		return false
	}
	if scalar.Abs(v.Y-w.Y) > eps {
		return false
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
