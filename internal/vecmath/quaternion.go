package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is an immutable rotation stored as (x, y, z, w).
type Quaternion mgl64.Quat

// Identity is (0, 0, 0, 1).
func Identity() Quaternion { return Quaternion(mgl64.QuatIdent()) }

func Quat(x, y, z, w float64) Quaternion {
	return Quaternion{W: w, V: mgl64.Vec3{x, y, z}}
}

// FromAxisAngle builds the unit rotation of angle radians around axis.
func FromAxisAngle(axis Vector, angle float64) Quaternion {
	n := axis.Normalize()
	if n == Zero {
		return Identity()
	}
	return Quaternion(mgl64.QuatRotate(angle, mgl64.Vec3(n))).Normalize()
}

func (q Quaternion) X() float64 { return q.V[0] }
func (q Quaternion) Y() float64 { return q.V[1] }
func (q Quaternion) Z() float64 { return q.V[2] }

func (q Quaternion) Len() float64 { return mgl64.Quat(q).Len() }

// Normalize returns q scaled to unit length. The zero quaternion normalizes to
// the identity.
func (q Quaternion) Normalize() Quaternion {
	if q.Len() == 0 {
		return Identity()
	}
	return Quaternion(mgl64.Quat(q).Normalize())
}

// Multiply returns q*o: o's rotation first, then q's. Not commutative.
func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion(mgl64.Quat(q).Mul(mgl64.Quat(o)))
}

// Rotate applies an extra axis-angle rotation on top of q's orientation.
func (q Quaternion) Rotate(axis Vector, angle float64) Quaternion {
	return FromAxisAngle(axis, angle).Multiply(q)
}

// Apply rotates v by q.
func (q Quaternion) Apply(v Vector) Vector {
	return Vector(mgl64.Quat(q).Rotate(mgl64.Vec3(v)))
}

// ApproxEqual compares the four components within eps. q and -q encode the
// same rotation but are not equal here.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return math.Abs(q.W-o.W) <= eps && Vector(q.V).ApproxEqual(Vector(o.V), eps)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", q.V[0], q.V[1], q.V[2], q.W)
}
