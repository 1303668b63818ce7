package transform_test

import (
	"fmt"

	"github.com/katalvlaran/camel/scalar"
	"github.com/katalvlaran/camel/transform"
	"github.com/katalvlaran/camel/vec"
)

// ExampleRotationZ rotates the x unit vector a quarter turn about the
// z axis, counter-clockwise.
func ExampleRotationZ() {
	r := transform.RotationZ(scalar.HalfPi, transform.RightHanded)
	v := r.MulVec(vec.NewVec3(1, 0, 0))
	fmt.Printf("(%.0f, %.0f, %.0f)\n", v.X, v.Y, v.Z)
	// Output:
	// (0, 1, 0)
}

// ExampleRotationAxis builds the same quarter turn from a non-unit
// axis, which the generator normalises.
func ExampleRotationAxis() {
	a := transform.RotationAxis(vec.NewVec3(0, 0, 2), scalar.HalfPi, transform.RightHanded)
	b := transform.RotationZ(scalar.HalfPi, transform.RightHanded)
	fmt.Println(a.EqualEps(b, scalar.Epsilon))
	// Output:
	// true
}

// ExampleTranslation transports a homogeneous point and undoes the
// move with the generated inverse.
func ExampleTranslation() {
	t := transform.Translation(3, -2, 5)
	p := t.MulVec(vec.NewVec4(1, 1, 1, 1))
	fmt.Printf("moved:   (%.0f, %.0f, %.0f, %.0f)\n", p.X, p.Y, p.Z, p.W)

	back := transform.InvTranslation(t).MulVec(p)
	fmt.Printf("back:    (%.0f, %.0f, %.0f, %.0f)\n", back.X, back.Y, back.Z, back.W)
	// Output:
	// moved:   (4, -1, 6, 1)
	// back:    (1, 1, 1, 1)
}

// ExampleScale3 stretches a point per axis.
func ExampleScale3() {
	s := transform.Scale3(2, 3, 4)
	v := s.MulVec(vec.NewVec3(1, 1, 1))
	fmt.Printf("(%.0f, %.0f, %.0f)\n", v.X, v.Y, v.Z)
	// Output:
	// (2, 3, 4)
}

// ExampleShearX3 shears along x: the x coordinate feeds into y and z.
func ExampleShearX3() {
	s := transform.ShearX3(2, 3)
	v := s.MulVec(vec.NewVec3(1, 1, 1))
	fmt.Printf("(%.0f, %.0f, %.0f)\n", v.X, v.Y, v.Z)
	// Output:
	// (1, 3, 4)
}
