// Package mat: matrix–matrix and matrix–vector products. Every
// conformable pairing of the nine shapes is covered; the method name
// carries the right-hand shape (MulMat3x4 …) except for the square
// same-shape products, which are plain Mul. All products delegate to
// mulKernel, so out(i,j) = Σ_t m(i,t)·b(t,j) uniformly.
package mat

import (
	"github.com/katalvlaran/camel/scalar"
	"github.com/katalvlaran/camel/vec"
)

// Mul returns the 2×2 product m·b.
func (m Mat2) Mul(b Mat2) Mat2 {
	var out Mat2
	mulKernel(m[:], b[:], 2, 2, 2, out[:])

	return out
}

// MulMat2x3 returns the 2×3 product m·b.
func (m Mat2) MulMat2x3(b Mat2x3) Mat2x3 {
	var out Mat2x3
	mulKernel(m[:], b[:], 2, 2, 3, out[:])

	return out
}

// MulMat2x4 returns the 2×4 product m·b.
func (m Mat2) MulMat2x4(b Mat2x4) Mat2x4 {
	var out Mat2x4
	mulKernel(m[:], b[:], 2, 2, 4, out[:])

	return out
}

// MulMat3x2 returns the 2×2 product m·b.
func (m Mat2x3) MulMat3x2(b Mat3x2) Mat2 {
	var out Mat2
	mulKernel(m[:], b[:], 2, 3, 2, out[:])

	return out
}

// MulMat3 returns the 2×3 product m·b.
func (m Mat2x3) MulMat3(b Mat3) Mat2x3 {
	var out Mat2x3
	mulKernel(m[:], b[:], 2, 3, 3, out[:])

	return out
}

// MulMat3x4 returns the 2×4 product m·b.
func (m Mat2x3) MulMat3x4(b Mat3x4) Mat2x4 {
	var out Mat2x4
	mulKernel(m[:], b[:], 2, 3, 4, out[:])

	return out
}

// MulMat4x2 returns the 2×2 product m·b.
func (m Mat2x4) MulMat4x2(b Mat4x2) Mat2 {
	var out Mat2
	mulKernel(m[:], b[:], 2, 4, 2, out[:])

	return out
}

// MulMat4x3 returns the 2×3 product m·b.
func (m Mat2x4) MulMat4x3(b Mat4x3) Mat2x3 {
	var out Mat2x3
	mulKernel(m[:], b[:], 2, 4, 3, out[:])

	return out
}

// MulMat4 returns the 2×4 product m·b.
func (m Mat2x4) MulMat4(b Mat4) Mat2x4 {
	var out Mat2x4
	mulKernel(m[:], b[:], 2, 4, 4, out[:])

	return out
}

// MulMat2 returns the 3×2 product m·b.
func (m Mat3x2) MulMat2(b Mat2) Mat3x2 {
	var out Mat3x2
	mulKernel(m[:], b[:], 3, 2, 2, out[:])

	return out
}

// MulMat2x3 returns the 3×3 product m·b.
func (m Mat3x2) MulMat2x3(b Mat2x3) Mat3 {
	var out Mat3
	mulKernel(m[:], b[:], 3, 2, 3, out[:])

	return out
}

// MulMat2x4 returns the 3×4 product m·b.
func (m Mat3x2) MulMat2x4(b Mat2x4) Mat3x4 {
	var out Mat3x4
	mulKernel(m[:], b[:], 3, 2, 4, out[:])

	return out
}

// MulMat3x2 returns the 3×2 product m·b.
func (m Mat3) MulMat3x2(b Mat3x2) Mat3x2 {
	var out Mat3x2
	mulKernel(m[:], b[:], 3, 3, 2, out[:])

	return out
}

// Mul returns the 3×3 product m·b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	mulKernel(m[:], b[:], 3, 3, 3, out[:])

	return out
}

// MulMat3x4 returns the 3×4 product m·b.
func (m Mat3) MulMat3x4(b Mat3x4) Mat3x4 {
	var out Mat3x4
	mulKernel(m[:], b[:], 3, 3, 4, out[:])

	return out
}

// MulMat4x2 returns the 3×2 product m·b.
func (m Mat3x4) MulMat4x2(b Mat4x2) Mat3x2 {
	var out Mat3x2
	mulKernel(m[:], b[:], 3, 4, 2, out[:])

	return out
}

// MulMat4x3 returns the 3×3 product m·b.
func (m Mat3x4) MulMat4x3(b Mat4x3) Mat3 {
	var out Mat3
	mulKernel(m[:], b[:], 3, 4, 3, out[:])

	return out
}

// MulMat4 returns the 3×4 product m·b.
func (m Mat3x4) MulMat4(b Mat4) Mat3x4 {
	var out Mat3x4
	mulKernel(m[:], b[:], 3, 4, 4, out[:])

	return out
}

// MulMat2 returns the 4×2 product m·b.
func (m Mat4x2) MulMat2(b Mat2) Mat4x2 {
	var out Mat4x2
	mulKernel(m[:], b[:], 4, 2, 2, out[:])

	return out
}

// MulMat2x3 returns the 4×3 product m·b.
func (m Mat4x2) MulMat2x3(b Mat2x3) Mat4x3 {
	var out Mat4x3
	mulKernel(m[:], b[:], 4, 2, 3, out[:])

	return out
}

// MulMat2x4 returns the 4×4 product m·b.
func (m Mat4x2) MulMat2x4(b Mat2x4) Mat4 {
	var out Mat4
	mulKernel(m[:], b[:], 4, 2, 4, out[:])

	return out
}

// MulMat3x2 returns the 4×2 product m·b.
func (m Mat4x3) MulMat3x2(b Mat3x2) Mat4x2 {
	var out Mat4x2
	mulKernel(m[:], b[:], 4, 3, 2, out[:])

	return out
}

// MulMat3 returns the 4×3 product m·b.
func (m Mat4x3) MulMat3(b Mat3) Mat4x3 {
	var out Mat4x3
	mulKernel(m[:], b[:], 4, 3, 3, out[:])

	return out
}

// MulMat3x4 returns the 4×4 product m·b.
func (m Mat4x3) MulMat3x4(b Mat3x4) Mat4 {
	var out Mat4
	mulKernel(m[:], b[:], 4, 3, 4, out[:])

	return out
}

// MulMat4x2 returns the 4×2 product m·b.
func (m Mat4) MulMat4x2(b Mat4x2) Mat4x2 {
	var out Mat4x2
	mulKernel(m[:], b[:], 4, 4, 2, out[:])

	return out
}

// MulMat4x3 returns the 4×3 product m·b.
func (m Mat4) MulMat4x3(b Mat4x3) Mat4x3 {
	var out Mat4x3
	mulKernel(m[:], b[:], 4, 4, 3, out[:])

	return out
}

// Mul returns the 4×4 product m·b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	mulKernel(m[:], b[:], 4, 4, 4, out[:])

	return out
}

// Vector bridges: a Vr is a r×1 column for MulVec (A·v) and a 1×r row
// for VecMul (vᵀ·A).

func vec2arr(v vec.Vec2) [2]scalar.Scalar { return [2]scalar.Scalar{v.X, v.Y} }

func vec3arr(v vec.Vec3) [3]scalar.Scalar { return [3]scalar.Scalar{v.X, v.Y, v.Z} }

func vec4arr(v vec.Vec4) [4]scalar.Scalar { return [4]scalar.Scalar{v.X, v.Y, v.Z, v.W} }

func arrVec2(a [2]scalar.Scalar) vec.Vec2 { return vec.Vec2{X: a[0], Y: a[1]} }

func arrVec3(a [3]scalar.Scalar) vec.Vec3 { return vec.Vec3{X: a[0], Y: a[1], Z: a[2]} }

func arrVec4(a [4]scalar.Scalar) vec.Vec4 { return vec.Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// MulVec returns the product m·v.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	in, out := vec2arr(v), [2]scalar.Scalar{}
	mulKernel(m[:], in[:], 2, 2, 1, out[:])

	return arrVec2(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat2) VecMul(v vec.Vec2) vec.Vec2 {
	in, out := vec2arr(v), [2]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 2, 2, out[:])

	return arrVec2(out)
}

// MulVec returns the product m·v.
func (m Mat2x3) MulVec(v vec.Vec3) vec.Vec2 {
	in, out := vec3arr(v), [2]scalar.Scalar{}
	mulKernel(m[:], in[:], 2, 3, 1, out[:])

	return arrVec2(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat2x3) VecMul(v vec.Vec2) vec.Vec3 {
	in, out := vec2arr(v), [3]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 2, 3, out[:])

	return arrVec3(out)
}

// MulVec returns the product m·v.
func (m Mat2x4) MulVec(v vec.Vec4) vec.Vec2 {
	in, out := vec4arr(v), [2]scalar.Scalar{}
	mulKernel(m[:], in[:], 2, 4, 1, out[:])

	return arrVec2(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat2x4) VecMul(v vec.Vec2) vec.Vec4 {
	in, out := vec2arr(v), [4]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 2, 4, out[:])

	return arrVec4(out)
}

// MulVec returns the product m·v.
func (m Mat3x2) MulVec(v vec.Vec2) vec.Vec3 {
	in, out := vec2arr(v), [3]scalar.Scalar{}
	mulKernel(m[:], in[:], 3, 2, 1, out[:])

	return arrVec3(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat3x2) VecMul(v vec.Vec3) vec.Vec2 {
	in, out := vec3arr(v), [2]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 3, 2, out[:])

	return arrVec2(out)
}

// MulVec returns the product m·v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	in, out := vec3arr(v), [3]scalar.Scalar{}
	mulKernel(m[:], in[:], 3, 3, 1, out[:])

	return arrVec3(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat3) VecMul(v vec.Vec3) vec.Vec3 {
	in, out := vec3arr(v), [3]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 3, 3, out[:])

	return arrVec3(out)
}

// MulVec returns the product m·v.
func (m Mat3x4) MulVec(v vec.Vec4) vec.Vec3 {
	in, out := vec4arr(v), [3]scalar.Scalar{}
	mulKernel(m[:], in[:], 3, 4, 1, out[:])

	return arrVec3(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat3x4) VecMul(v vec.Vec3) vec.Vec4 {
	in, out := vec3arr(v), [4]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 3, 4, out[:])

	return arrVec4(out)
}

// MulVec returns the product m·v.
func (m Mat4x2) MulVec(v vec.Vec2) vec.Vec4 {
	in, out := vec2arr(v), [4]scalar.Scalar{}
	mulKernel(m[:], in[:], 4, 2, 1, out[:])

	return arrVec4(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat4x2) VecMul(v vec.Vec4) vec.Vec2 {
	in, out := vec4arr(v), [2]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 4, 2, out[:])

	return arrVec2(out)
}

// MulVec returns the product m·v.
func (m Mat4x3) MulVec(v vec.Vec3) vec.Vec4 {
	in, out := vec3arr(v), [4]scalar.Scalar{}
	mulKernel(m[:], in[:], 4, 3, 1, out[:])

	return arrVec4(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat4x3) VecMul(v vec.Vec4) vec.Vec3 {
	in, out := vec4arr(v), [3]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 4, 3, out[:])

	return arrVec3(out)
}

// MulVec returns the product m·v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	in, out := vec4arr(v), [4]scalar.Scalar{}
	mulKernel(m[:], in[:], 4, 4, 1, out[:])

	return arrVec4(out)
}

// VecMul returns the row-vector product vᵀ·m.
func (m Mat4) VecMul(v vec.Vec4) vec.Vec4 {
	in, out := vec4arr(v), [4]scalar.Scalar{}
	mulKernel(in[:], m[:], 1, 4, 4, out[:])

	return arrVec4(out)
}
