package vec_test

import (
	"testing"

	"github.com/katalvlaran/camel/vec"
)

var sinkVec3 vec.Vec3

var sinkScalar float64

func BenchmarkVec3_Add(b *testing.B) {
	v := vec.NewVec3(1, 2, 3)
	w := vec.NewVec3(4, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Add(w)
	}
}

func BenchmarkVec3_Dot(b *testing.B) {
	v := vec.NewVec3(1, 2, 3)
	w := vec.NewVec3(4, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkScalar = v.Dot(w)
	}
}

func BenchmarkVec3_Cross(b *testing.B) {
	v := vec.NewVec3(1, 2, 3)
	w := vec.NewVec3(4, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Cross(w)
	}
}

func BenchmarkVec3_Normalize(b *testing.B) {
	v := vec.NewVec3(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Normalize()
	}
}
