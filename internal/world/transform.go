package world

import (
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// Transform is an entity's position and orientation.
type Transform interface {
	Position() vecmath.Vector
	SetPosition(vecmath.Vector)
	Rotation() vecmath.Quaternion
	SetRotation(vecmath.Quaternion)
}

// PlainTransform stores position and rotation in memory.
type PlainTransform struct {
	position vecmath.Vector
	rotation vecmath.Quaternion
}

func NewPlainTransform(pos vecmath.Vector) *PlainTransform {
	return &PlainTransform{position: pos, rotation: vecmath.Identity()}
}

func (t *PlainTransform) Position() vecmath.Vector         { return t.position }
func (t *PlainTransform) SetPosition(p vecmath.Vector)     { t.position = p }
func (t *PlainTransform) Rotation() vecmath.Quaternion     { return t.rotation }
func (t *PlainTransform) SetRotation(q vecmath.Quaternion) { t.rotation = q }

// BodyTransform reads and writes a rigid body. Until the body exists it
// holds the values the body will be created with.
type BodyTransform struct {
	body     *physics.RigidBody
	position vecmath.Vector
	rotation vecmath.Quaternion
}

func NewBodyTransform(pos vecmath.Vector) *BodyTransform {
	return &BodyTransform{position: pos, rotation: vecmath.Identity()}
}

func (t *BodyTransform) bind(b *physics.RigidBody) { t.body = b }

func (t *BodyTransform) Position() vecmath.Vector {
	if t.body == nil {
		return t.position
	}
	return t.body.Translation().Scale(physics.WorldScale)
}

func (t *BodyTransform) SetPosition(p vecmath.Vector) {
	if t.body == nil {
		t.position = p
		return
	}
	t.body.SetTranslation(p.Scale(1 / physics.WorldScale))
}

func (t *BodyTransform) Rotation() vecmath.Quaternion {
	if t.body == nil {
		return t.rotation
	}
	return t.body.Rotation()
}

func (t *BodyTransform) SetRotation(q vecmath.Quaternion) {
	if t.body == nil {
		t.rotation = q
		return
	}
	t.body.SetRotation(q)
}
