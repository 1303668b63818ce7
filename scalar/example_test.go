package scalar_test

import (
	"fmt"

	"github.com/katalvlaran/camel/scalar"
)

// ExampleEqual compares two results of the same quantity that differ
// only by rounding.
func ExampleEqual() {
	a := scalar.Sqrt(2) * scalar.Sqrt(2)
	fmt.Println(a == 2.0)
	fmt.Println(scalar.Equal(a, 2.0))
	// Output:
	// false
	// true
}

// ExampleDegToRad converts a right angle and back.
func ExampleDegToRad() {
	r := scalar.DegToRad(90)
	fmt.Println(scalar.Equal(r, scalar.HalfPi))
	fmt.Printf("%.0f\n", scalar.RadToDeg(r))
	// Output:
	// true
	// 90
}

// ExampleClamp limits a value to the unit interval.
func ExampleClamp() {
	fmt.Println(scalar.Clamp(1.5, 0, 1))
	fmt.Println(scalar.Clamp(-0.2, 0, 1))
	fmt.Println(scalar.Clamp(0.7, 0, 1))
	// Output:
	// 1
	// 0
	// 0.7
}
