package mat_test

import (
	"testing"

	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/vec"
)

var (
	sinkMat4   mat.Mat4
	sinkVec4   vec.Vec4
	sinkScalar float64
	sinkErr    error
)

func BenchmarkMat4_Mul(b *testing.B) {
	m := mat.Ones4().AddScalar(0.5)
	n := mat.Identity4().AddScalar(0.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Mul(n)
	}
}

func BenchmarkMat4_MulVec(b *testing.B) {
	m := mat.Ones4().AddScalar(0.5)
	v := vec.NewVec4(1, 2, 3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec4 = m.MulVec(v)
	}
}

func BenchmarkMat4_Det(b *testing.B) {
	m := mat.NewMat4(
		4, 7, 2, 3,
		0, 5, 1, 8,
		2, 9, 6, 4,
		1, 3, 7, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkScalar = m.Det()
	}
}

func BenchmarkMat4_Inverse(b *testing.B) {
	m := mat.NewMat4(
		4, 7, 2, 3,
		0, 5, 1, 8,
		2, 9, 6, 4,
		1, 3, 7, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4, sinkErr = m.Inverse()
	}
}

func BenchmarkMat3_Transpose(b *testing.B) {
	m := mat.Ones3().AddScalar(0.5)
	var sink mat.Mat3
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.Transpose()
	}
	_ = sink
}
