package transform

import "github.com/katalvlaran/camel/scalar"

// Handedness selects the sign convention for positive rotation angles.
type Handedness int

const (
	// RightHanded rotates counter-clockwise looking along the positive
	// rotation axis toward the origin.
	RightHanded Handedness = iota
	// LeftHanded rotates clockwise: every generator treats it as the
	// right-handed rotation of the negated angle.
	LeftHanded
)

// String implements fmt.Stringer for diagnostics.
func (h Handedness) String() string {
	if h == LeftHanded {
		return "left-handed"
	}

	return "right-handed"
}

// signedAngle applies the handedness convention to an angle.
func signedAngle(theta scalar.Scalar, h Handedness) scalar.Scalar {
	if h == LeftHanded {
		return -theta
	}

	return theta
}
