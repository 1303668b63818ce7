package mat_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/vec"
)

// ExampleMat2_Mul multiplies two 2×2 matrices; constructors take
// elements in row reading order.
func ExampleMat2_Mul() {
	a := mat.NewMat2(
		1, 2,
		3, 4)
	b := mat.NewMat2(
		5, 6,
		7, 8)

	fmt.Print(a.Mul(b))
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMat3_Inverse inverts a matrix and shows the singular-matrix
// error path.
func ExampleMat3_Inverse() {
	a := mat.NewMat3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0)

	inv, err := a.Inverse()
	if err != nil {
		panic(err)
	}
	fmt.Print(inv)

	degenerate := mat.NewMat3(
		1, 2, 3,
		1, 2, 3,
		4, 5, 6)
	if _, err = degenerate.Inverse(); errors.Is(err, mat.ErrSingular) {
		fmt.Println("no inverse: singular")
	}
	// Output:
	// [-24, 18, 5]
	// [20, -15, -4]
	// [-5, 4, 1]
	// no inverse: singular
}

// ExampleMat2x3_MulMat3x4 shows a rectangular product: the result shape
// is in the types, so a non-conformable product will not compile.
func ExampleMat2x3_MulMat3x4() {
	a := mat.NewMat2x3(
		1, 0, 0,
		0, 1, 0)
	b := mat.NewMat3x4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12)

	fmt.Print(a.MulMat3x4(b))
	// Output:
	// [1, 2, 3, 4]
	// [5, 6, 7, 8]
}

// ExampleMat3_MulVec applies a matrix to a column vector.
func ExampleMat3_MulVec() {
	swap := mat.NewMat3(
		0, 1, 0,
		1, 0, 0,
		0, 0, 1)

	fmt.Println(swap.MulVec(vec.NewVec3(1, 2, 3)))
	// Output:
	// (2, 1, 3)
}
