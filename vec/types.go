package vec

import "github.com/katalvlaran/camel/scalar"

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y scalar.Scalar
}

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z scalar.Scalar
}

// Vec4 is a 4-component vector (homogeneous coordinates use W).
type Vec4 struct {
	X, Y, Z, W scalar.Scalar
}
