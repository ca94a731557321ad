// Package vecmath provides the immutable vector and quaternion values used by
// transforms, physics and game logic. Both are thin named types over mathgl's
// float64 primitives.
package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is an immutable 3D vector. Every operation returns a new value.
type Vector mgl64.Vec3

var (
	Zero    = Vector{}
	One     = Vector{1, 1, 1}
	Up      = Vector{0, 1, 0}
	Right   = Vector{1, 0, 0}
	Forward = Vector{0, 0, 1}
)

func Vec(x, y, z float64) Vector { return Vector{x, y, z} }

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

func (v Vector) WithX(x float64) Vector { return Vector{x, v[1], v[2]} }
func (v Vector) WithY(y float64) Vector { return Vector{v[0], y, v[2]} }
func (v Vector) WithZ(z float64) Vector { return Vector{v[0], v[1], z} }

func (v Vector) Add(o Vector) Vector { return Vector(mgl64.Vec3(v).Add(mgl64.Vec3(o))) }
func (v Vector) Sub(o Vector) Vector { return Vector(mgl64.Vec3(v).Sub(mgl64.Vec3(o))) }

// Scale multiplies every component by s.
func (v Vector) Scale(s float64) Vector { return Vector(mgl64.Vec3(v).Mul(s)) }

// Mul multiplies component-wise.
func (v Vector) Mul(o Vector) Vector { return Vector{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

func (v Vector) Inverse() Vector { return v.Scale(-1) }

func (v Vector) Dot(o Vector) float64 { return mgl64.Vec3(v).Dot(mgl64.Vec3(o)) }

func (v Vector) Cross(o Vector) Vector { return Vector(mgl64.Vec3(v).Cross(mgl64.Vec3(o))) }

func (v Vector) Len() float64 { return mgl64.Vec3(v).Len() }

func (v Vector) DistanceTo(o Vector) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector along v. The zero vector normalizes to
// itself instead of NaN.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Horizontal drops the vertical component.
func (v Vector) Horizontal() Vector { return Vector{v[0], 0, v[2]} }

// Angle is the heading of v in the XZ plane, measured from +Z toward +X.
func (v Vector) Angle() float64 { return math.Atan2(v[0], v[2]) }

// Rotate turns v by angle radians around axis (Rodrigues' formula) with the
// right-hand rule, matching Quaternion.Apply of FromAxisAngle(axis, angle). A
// zero axis leaves v unchanged.
func (v Vector) Rotate(axis Vector, angle float64) Vector {
	k := axis.Normalize()
	if k == Zero {
		return v
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
