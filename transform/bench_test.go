package transform_test

import (
	"testing"

	"github.com/katalvlaran/camel/mat"
	"github.com/katalvlaran/camel/scalar"
	"github.com/katalvlaran/camel/transform"
	"github.com/katalvlaran/camel/vec"
)

var (
	benchMat3 mat.Mat3
	benchMat4 mat.Mat4
)

func BenchmarkRotationZ(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchMat3 = transform.RotationZ(scalar.QuarterPi, transform.RightHanded)
	}
}

func BenchmarkRotationAxis(b *testing.B) {
	axis := vec.NewVec3(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMat3 = transform.RotationAxis(axis, scalar.QuarterPi, transform.RightHanded)
	}
}

func BenchmarkRotationAxis4(b *testing.B) {
	axis := vec.NewVec3(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMat4 = transform.RotationAxis4(axis, scalar.QuarterPi, transform.RightHanded)
	}
}

func BenchmarkTranslation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchMat4 = transform.Translation(3, -2, 5)
	}
}

func BenchmarkScale4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchMat4 = transform.Scale4(2, 3, 4)
	}
}

func BenchmarkInvRotation3(b *testing.B) {
	r := transform.RotationAxis(vec.NewVec3(1, 2, 3), scalar.QuarterPi, transform.RightHanded)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMat3 = transform.InvRotation3(r)
	}
}
