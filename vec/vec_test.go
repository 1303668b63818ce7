// Package vec_test contains unit and property tests for the fixed-size
// vector types.
package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/camel/scalar"
	"github.com/katalvlaran/camel/vec"
)

// propSeed makes the randomized property tests deterministic.
const propSeed = 0x5EED

// propRounds is how many random draws each property is checked against.
const propRounds = 64

// randScalar draws a bounded scalar away from overflow-prone magnitudes.
func randScalar(rng *rand.Rand) scalar.Scalar {
	return rng.Float64()*20 - 10
}

func randVec3(rng *rand.Rand) vec.Vec3 {
	return vec.NewVec3(randScalar(rng), randScalar(rng), randScalar(rng))
}

// TestVec2_Arithmetic covers componentwise add/sub/scale/broadcast.
func TestVec2_Arithmetic(t *testing.T) {
	v := vec.NewVec2(1, 2)
	w := vec.NewVec2(3, -4)

	assert.Equal(t, vec.NewVec2(4, -2), v.Add(w), "add is componentwise")
	assert.Equal(t, vec.NewVec2(-2, 6), v.Sub(w), "sub is componentwise")
	assert.Equal(t, vec.NewVec2(2, 4), v.Scale(2), "scale multiplies every component")
	assert.Equal(t, vec.NewVec2(11, 12), v.AddScalar(10), "add-scalar broadcasts")
	assert.Equal(t, vec.NewVec2(0, 1), v.SubScalar(1), "sub-scalar broadcasts")
	assert.Equal(t, vec.NewVec2(3, -8), v.Mul(w), "mul is componentwise")
	assert.Equal(t, vec.NewVec2(1.0/3.0, -0.5), v.Div(w), "div is componentwise")
}

// TestVec3_NormAndDistance pins the metric operations to hand values.
func TestVec3_NormAndDistance(t *testing.T) {
	v := vec.NewVec3(3, 4, 0)

	assert.Equal(t, 25.0, v.Len2(), "squared norm")
	assert.Equal(t, 5.0, v.Len(), "norm")
	assert.True(t, v.Normalize().Equal(vec.NewVec3(0.6, 0.8, 0)), "normalize divides by the length")

	w := vec.NewVec3(3, 4, 12)
	assert.Equal(t, 12.0, v.Distance(w), "distance is the norm of the difference")
	assert.Equal(t, 144.0, v.Distance2(w), "squared distance")
}

// TestVec3_NormalizeZero verifies the documented IEEE-754 behavior:
// the zero vector normalizes to NaN components, not an error.
func TestVec3_NormalizeZero(t *testing.T) {
	n := vec.Zero3().Normalize()
	assert.True(t, math.IsNaN(n.X) && math.IsNaN(n.Y) && math.IsNaN(n.Z), "0/0 must propagate as NaN")
}

// TestVec3_DotCrossIdentities checks dot symmetry, cross antisymmetry
// and orthogonality of a cross product to its operands.
func TestVec3_DotCrossIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	var v, w, c vec.Vec3
	for i := 0; i < propRounds; i++ {
		v, w = randVec3(rng), randVec3(rng)

		assert.InDelta(t, v.Dot(w), w.Dot(v), 1e-9, "dot is symmetric")

		c = v.Cross(w)
		assert.True(t, c.Equal(w.Cross(v).Scale(-1)), "cross is antisymmetric")
		assert.InDelta(t, 0, v.Dot(c), float64(scalar.Epsilon), "cross product is orthogonal to v")
		assert.InDelta(t, 0, w.Dot(c), float64(scalar.Epsilon), "cross product is orthogonal to w")
	}
}

// TestVec3_CrossHandValues pins the formula orientation.
func TestVec3_CrossHandValues(t *testing.T) {
	assert.Equal(t, vec.UnitZ3(), vec.UnitX3().Cross(vec.UnitY3()), "x × y = z")
	assert.Equal(t, vec.UnitX3(), vec.UnitY3().Cross(vec.UnitZ3()), "y × z = x")
	assert.Equal(t, vec.UnitY3(), vec.UnitZ3().Cross(vec.UnitX3()), "z × x = y")
}

// TestAngle covers right angles, parallel vectors and the clamp that
// keeps self-angles at exactly zero.
func TestAngle(t *testing.T) {
	assert.InDelta(t, scalar.HalfPi, vec.UnitX3().Angle(vec.UnitY3()), float64(scalar.Epsilon), "orthogonal axes are π/2 apart")
	assert.InDelta(t, scalar.Pi, vec.UnitX2().Angle(vec.UnitX2().Scale(-3)), float64(scalar.Epsilon), "opposite directions are π apart")

	// Without clamping, rounding can push the acos argument above 1
	// and yield NaN for the self-angle.
	v := vec.NewVec3(0.1, 0.2, 0.3)
	got := v.Angle(v)
	require.False(t, math.IsNaN(got), "self-angle must not be NaN")
	assert.InDelta(t, 0, got, float64(scalar.Epsilon), "self-angle is zero")
}

// TestProject verifies the projection is parallel to the target and
// reproduces a hand-computed value.
func TestProject(t *testing.T) {
	v := vec.NewVec3(2, 3, 4)
	w := vec.NewVec3(1, 0, 0)
	assert.True(t, v.Project(w).Equal(vec.NewVec3(2, 0, 0)), "projection onto x keeps only the x component")

	rng := rand.New(rand.NewSource(propSeed))
	for i := 0; i < propRounds; i++ {
		a, b := randVec3(rng), randVec3(rng)
		p := a.Project(b)
		assert.True(t, p.Cross(b).EqualEps(vec.Zero3(), 1e-4), "projection must be parallel to the target")
	}
}

// TestReflect_Involution checks reflect(reflect(v,n), n) = v for random
// vectors and a non-unit normal.
func TestReflect_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	var v, n vec.Vec3
	for i := 0; i < propRounds; i++ {
		v, n = randVec3(rng), randVec3(rng)
		if n.Len2() < 1e-6 {
			continue // a degenerate normal has no reflection plane
		}
		assert.True(t, v.Reflect(n).Reflect(n).EqualEps(v, 1e-6), "reflection across a plane is an involution")
	}

	// Non-unit normal: the formula self-normalises.
	got := vec.NewVec3(1, -1, 0).Reflect(vec.NewVec3(0, 5, 0))
	assert.True(t, got.Equal(vec.NewVec3(1, 1, 0)), "reflecting across y with a scaled normal")
}

// TestAdditiveGroup checks the additive-group and scaling laws on
// random vectors.
func TestAdditiveGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	var a, b, c vec.Vec3
	for i := 0; i < propRounds; i++ {
		a, b, c = randVec3(rng), randVec3(rng), randVec3(rng)

		assert.Equal(t, a, a.Add(vec.Zero3()), "zero is the additive identity")
		assert.True(t, a.Add(b).Equal(b.Add(a)), "addition commutes")
		assert.True(t, a.Add(b).Add(c).EqualEps(a.Add(b.Add(c)), 1e-9), "addition associates")
		assert.True(t, a.Sub(a).Equal(vec.Zero3()), "v - v = 0")
		assert.True(t, a.Scale(2).Scale(3).EqualEps(a.Scale(6), 1e-9), "scaling composes multiplicatively")
		assert.Equal(t, vec.Zero3(), a.Scale(0), "scaling by zero yields the zero vector")
		assert.Equal(t, a, a.Scale(1), "scaling by one is the identity")
	}
}

// TestLerp pins endpoint and midpoint behavior.
func TestLerp(t *testing.T) {
	a := vec.NewVec2(0, 0)
	b := vec.NewVec2(2, 4)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, vec.NewVec2(1, 2), a.Lerp(b, 0.5))
}

// TestEqual_Tolerance exercises the epsilon comparison surface.
func TestEqual_Tolerance(t *testing.T) {
	v := vec.NewVec4(1, 2, 3, 4)
	assert.True(t, v.Equal(v.AddScalar(0.5*scalar.Epsilon)), "within Epsilon compares equal")
	assert.False(t, v.Equal(v.AddScalar(10*scalar.Epsilon)), "outside Epsilon compares unequal")
	assert.True(t, v.EqualEps(v.AddScalar(0.01), 0.1), "loose custom tolerance accepts")
}

// TestConversions covers the Vec3↔Vec4 bridges and the basis constants.
func TestConversions(t *testing.T) {
	v3 := vec.NewVec3(1, 2, 3)
	assert.Equal(t, vec.NewVec4(1, 2, 3, 1), v3.ToVec4(1))
	assert.Equal(t, v3, v3.ToVec4(9).ToVec3())

	assert.Equal(t, 1.0, vec.UnitW4().W)
	assert.Equal(t, vec.NewVec2(1, 1), vec.One2())
}

// TestString smoke-checks the debug rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2, 3)", vec.NewVec3(1, 2, 3).String())
}
