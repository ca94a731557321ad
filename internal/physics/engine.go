// Package physics is a small rigid-body engine: dynamic bodies fall under
// gravity and are pushed out of fixed colliders; ray casts answer
// line-of-sight queries. Contacts use axis-aligned bounds, which is exact for
// the grid-aligned rooms this engine simulates.
package physics

import (
	"math"

	"github.com/lightsout/lightsout/internal/vecmath"
)

// WorldScale converts world units to physics units. Transforms divide by it
// on write and multiply on read.
const WorldScale = 1.0

// DefaultTimestep is the fixed step advanced by Step.
const DefaultTimestep = 1.0 / 60.0

// DefaultGravity points down at 9.81 units/s².
var DefaultGravity = vecmath.Vec(0, -9.81, 0)

// Engine owns every body and collider of one world.
type Engine struct {
	gravity    vecmath.Vector
	timestep   float64
	nextHandle uint32
	steps      uint64
	bodies     []*RigidBody
	colliders  []*Collider
}

// Option configures an Engine.
type Option func(*Engine)

func WithGravity(g vecmath.Vector) Option {
	return func(e *Engine) { e.gravity = g }
}

func WithTimestep(seconds float64) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.timestep = seconds
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		gravity:   DefaultGravity,
		timestep:  DefaultTimestep,
		bodies:    make([]*RigidBody, 0, 256),
		colliders: make([]*Collider, 0, 1024),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) Timestep() float64       { return e.timestep }
func (e *Engine) Gravity() vecmath.Vector { return e.gravity }
func (e *Engine) Steps() uint64           { return e.steps }

// BodyCount includes bodies whose colliders have all been removed.
func (e *Engine) BodyCount() int     { return len(e.bodies) }
func (e *Engine) ColliderCount() int { return len(e.colliders) }

func (e *Engine) handle() uint32 {
	e.nextHandle++
	return e.nextHandle
}

func (e *Engine) CreateRigidBody(desc RigidBodyDesc) *RigidBody {
	rot := desc.Rotation
	if rot.Len() == 0 {
		rot = vecmath.Identity()
	}
	b := &RigidBody{
		handle:        e.handle(),
		typ:           desc.Type,
		translation:   desc.Translation,
		rotation:      rot.Normalize(),
		linvel:        desc.Linvel,
		gravityScale:  desc.GravityScale,
		lockRotations: desc.LockRotations,
	}
	e.bodies = append(e.bodies, b)
	return b
}

// CreateCollider attaches a collider to body.
func (e *Engine) CreateCollider(desc ColliderDesc, body *RigidBody) *Collider {
	c := &Collider{
		handle: e.handle(),
		body:   body,
		shape:  desc.Shape,
		offset: desc.Offset,
		sensor: desc.Sensor,
	}
	body.colliders = append(body.colliders, c)
	e.colliders = append(e.colliders, c)
	return c
}

// RemoveCollider detaches c from the simulation. Removing twice is a no-op.
func (e *Engine) RemoveCollider(c *Collider) {
	if c == nil || c.removed {
		return
	}
	c.removed = true
	for i, o := range e.colliders {
		if o == c {
			e.colliders = append(e.colliders[:i], e.colliders[i+1:]...)
			break
		}
	}
}

// RemoveRigidBody destroys b together with its remaining colliders.
func (e *Engine) RemoveRigidBody(b *RigidBody) {
	if b == nil || b.removed {
		return
	}
	for _, c := range b.colliders {
		e.RemoveCollider(c)
	}
	b.removed = true
	for i, o := range e.bodies {
		if o == b {
			e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
			break
		}
	}
}

// Step advances the simulation by one fixed timestep.
func (e *Engine) Step() {
	dt := e.timestep
	for _, b := range e.bodies {
		if b.typ != Dynamic {
			continue
		}
		b.linvel = b.linvel.Add(e.gravity.Scale(b.gravityScale * dt))
		b.translation = b.translation.Add(b.linvel.Scale(dt))
		e.resolveContacts(b)
	}
	e.steps++
}

// resolveContacts pushes b out of every fixed or kinematic collider it
// overlaps, along the axis of least penetration, and cancels the velocity
// component driving it inward.
func (e *Engine) resolveContacts(b *RigidBody) {
	for _, own := range b.colliders {
		if own.removed || own.sensor {
			continue
		}
		for _, other := range e.colliders {
			if other.body == b || other.sensor || other.body.typ == Dynamic {
				continue
			}
			box, obstacle := own.bounds(), other.bounds()
			if !box.overlaps(obstacle) {
				continue
			}
			axis, depth := 0, math.Inf(1)
			for i := 0; i < 3; i++ {
				pen := math.Min(box.max[i]-obstacle.min[i], obstacle.max[i]-box.min[i])
				if pen < depth {
					axis, depth = i, pen
				}
			}
			sign := 1.0
			if box.center()[axis] < obstacle.center()[axis] {
				sign = -1
			}
			b.translation[axis] += sign * depth
			if b.linvel[axis]*sign < 0 {
				b.linvel[axis] = 0
			}
		}
	}
}
