package physics

import "github.com/lightsout/lightsout/internal/vecmath"

// BodyType selects how the engine moves a rigid body.
type BodyType int

const (
	// Dynamic bodies are integrated every step and pushed out of fixed colliders.
	Dynamic BodyType = iota
	// Fixed bodies never move on their own.
	Fixed
	// Kinematic bodies move only when their translation is set.
	Kinematic
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed"
	case Kinematic:
		return "kinematic"
	}
	return "unknown"
}

// RigidBodyDesc describes a body to create.
type RigidBodyDesc struct {
	Type          BodyType
	Translation   vecmath.Vector
	Rotation      vecmath.Quaternion
	Linvel        vecmath.Vector
	GravityScale  float64
	LockRotations bool
}

func DynamicBody() RigidBodyDesc {
	return RigidBodyDesc{Type: Dynamic, Rotation: vecmath.Identity(), GravityScale: 1}
}

func FixedBody() RigidBodyDesc {
	return RigidBodyDesc{Type: Fixed, Rotation: vecmath.Identity()}
}

func KinematicBody() RigidBodyDesc {
	return RigidBodyDesc{Type: Kinematic, Rotation: vecmath.Identity()}
}

// RigidBody is a simulated body. Handles are never reused by an Engine.
type RigidBody struct {
	handle        uint32
	typ           BodyType
	translation   vecmath.Vector
	rotation      vecmath.Quaternion
	linvel        vecmath.Vector
	gravityScale  float64
	lockRotations bool
	colliders     []*Collider
	removed       bool
}

func (b *RigidBody) Handle() uint32 { return b.handle }
func (b *RigidBody) Type() BodyType { return b.typ }

func (b *RigidBody) Translation() vecmath.Vector     { return b.translation }
func (b *RigidBody) SetTranslation(p vecmath.Vector) { b.translation = p }

func (b *RigidBody) Rotation() vecmath.Quaternion { return b.rotation }

func (b *RigidBody) SetRotation(q vecmath.Quaternion) { b.rotation = q.Normalize() }

func (b *RigidBody) Linvel() vecmath.Vector     { return b.linvel }
func (b *RigidBody) SetLinvel(v vecmath.Vector) { b.linvel = v }

func (b *RigidBody) GravityScale() float64         { return b.gravityScale }
func (b *RigidBody) SetGravityScale(scale float64) { b.gravityScale = scale }

// LockRotations keeps contacts from turning the body. Explicit SetRotation
// calls still apply.
func (b *RigidBody) LockRotations(locked bool) { b.lockRotations = locked }
func (b *RigidBody) RotationsLocked() bool     { return b.lockRotations }

// Colliders lists the colliders still attached to the body.
func (b *RigidBody) Colliders() []*Collider {
	out := make([]*Collider, 0, len(b.colliders))
	for _, c := range b.colliders {
		if !c.removed {
			out = append(out, c)
		}
	}
	return out
}

// Removed reports whether the engine has destroyed the body.
func (b *RigidBody) Removed() bool { return b.removed }

// ColliderDesc describes a collider relative to its parent body.
type ColliderDesc struct {
	Shape  Shape
	Offset vecmath.Vector
	Sensor bool
}

func CuboidCollider(hx, hy, hz float64) ColliderDesc {
	return ColliderDesc{Shape: NewCuboid(hx, hy, hz)}
}

func CapsuleCollider(halfHeight, radius float64) ColliderDesc {
	return ColliderDesc{Shape: NewCapsule(halfHeight, radius)}
}

// WithOffset returns a copy translated by (x, y, z) in body space.
func (d ColliderDesc) WithOffset(x, y, z float64) ColliderDesc {
	d.Offset = vecmath.Vec(x, y, z)
	return d
}

// Collider is attached to exactly one body. The offset is not rotated with
// the body.
type Collider struct {
	handle  uint32
	body    *RigidBody
	shape   Shape
	offset  vecmath.Vector
	sensor  bool
	removed bool
}

func (c *Collider) Handle() uint32   { return c.handle }
func (c *Collider) Body() *RigidBody { return c.body }
func (c *Collider) Shape() Shape     { return c.shape }
func (c *Collider) Removed() bool    { return c.removed }
func (c *Collider) IsSensor() bool   { return c.sensor }

func (c *Collider) Center() vecmath.Vector {
	return c.body.translation.Add(c.offset)
}

func (c *Collider) bounds() aabb {
	return boxAround(c.Center(), c.shape.HalfExtents())
}
