package world

import (
	"github.com/lightsout/lightsout/internal/core/ecs"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// TagSet is the set of tags an entity carries.
type TagSet map[string]struct{}

// Entity is one simulated object. It is created detached, becomes live on
// AddEntity and dead on RemoveEntity. Exactly one of the per-kind state
// pointers is set, matching kind.
type Entity struct {
	kind      Kind
	id        string
	handle    ecs.EntityID
	world     *World
	transform Transform
	container *render.Container
	tags      TagSet
	removed   bool

	body      *physics.RigidBody
	colliders []*physics.Collider

	scene      *Scene
	room       *Room
	player     *Player
	antagonist *Antagonist
	breaker    *Breaker
	battery    *Battery
	telephone  *Telephone
}

func newEntity(kind Kind, t Transform) *Entity {
	return &Entity{
		kind:      kind,
		transform: t,
		container: render.NewContainer(kind.String()),
		tags:      make(TagSet),
	}
}

func (e *Entity) Kind() Kind                   { return e.kind }
func (e *Entity) ID() string                   { return e.id }
func (e *Entity) Handle() ecs.EntityID         { return e.handle }
func (e *Entity) World() *World                { return e.world }
func (e *Entity) Transform() Transform         { return e.transform }
func (e *Entity) Container() *render.Container { return e.container }
func (e *Entity) Removed() bool                { return e.removed }

// Body is nil for entities without physics. Callers must not use the body of
// a removed entity.
func (e *Entity) Body() *physics.RigidBody { return e.body }

func (e *Entity) Position() vecmath.Vector { return e.transform.Position() }

func (e *Entity) AddTag(tag string) { e.tags[tag] = struct{}{} }

func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Per-kind state; nil when the entity is of another kind.
func (e *Entity) Scene() *Scene           { return e.scene }
func (e *Entity) Room() *Room             { return e.room }
func (e *Entity) Player() *Player         { return e.player }
func (e *Entity) Antagonist() *Antagonist { return e.antagonist }
func (e *Entity) Breaker() *Breaker       { return e.breaker }
func (e *Entity) Battery() *Battery       { return e.battery }
func (e *Entity) Telephone() *Telephone   { return e.telephone }

func (e *Entity) syncContainer() {
	e.container.Position = e.transform.Position()
	e.container.Rotation = e.transform.Rotation()
}

// physicsDesc reports the body and colliders for kinds that have physics.
func (e *Entity) physicsDesc() (physics.RigidBodyDesc, []physics.ColliderDesc, bool) {
	switch e.kind {
	case KindRoom:
		return e.room.physicsDesc()
	case KindPlayer:
		return e.player.physicsDesc()
	case KindAntagonist:
		return e.antagonist.physicsDesc()
	case KindBreaker:
		return e.breaker.physicsDesc()
	}
	return physics.RigidBodyDesc{}, nil, false
}

// initPhysics creates the body at the transform's pending pose and attaches
// every collider.
func (e *Entity) initPhysics() {
	desc, colliders, ok := e.physicsDesc()
	if !ok {
		return
	}
	bt, ok := e.transform.(*BodyTransform)
	if !ok {
		return
	}
	eng := e.world.physics
	desc.Translation = bt.position.Scale(1 / physics.WorldScale)
	desc.Rotation = bt.rotation
	e.body = eng.CreateRigidBody(desc)
	bt.bind(e.body)
	for _, cd := range colliders {
		e.colliders = append(e.colliders, eng.CreateCollider(cd, e.body))
	}
}

// releaseColliders removes the colliders. The rigid body stays allocated in
// the engine.
func (e *Entity) releaseColliders() {
	for _, c := range e.colliders {
		e.world.physics.RemoveCollider(c)
	}
}

func (e *Entity) initGraphics() {
	switch e.kind {
	case KindRoom:
		e.room.initGraphics()
	case KindPlayer:
		e.player.initGraphics()
	case KindAntagonist:
		e.antagonist.initGraphics()
	case KindBreaker:
		e.breaker.initGraphics()
	case KindBattery:
		e.battery.initGraphics()
	case KindScene:
		e.scene.initGraphics()
	}
}

func (e *Entity) onAdd() {
	switch e.kind {
	case KindScene:
		e.scene.onAdd()
	case KindRoom:
		e.AddTag(TagRoom)
	case KindPlayer:
		e.player.onAdd()
	case KindAntagonist:
		e.AddTag(TagAntagonist)
	case KindBattery:
		e.AddTag(TagBattery)
	case KindTelephone:
		e.telephone.onAdd()
	}
}

func (e *Entity) update(dt float64, tick uint64) {
	switch e.kind {
	case KindScene:
		e.scene.update(tick)
	case KindPlayer:
		e.player.update(dt, tick)
	case KindAntagonist:
		e.antagonist.update(tick)
	case KindBreaker:
		e.breaker.update()
	case KindBattery:
		e.battery.update()
	case KindTelephone:
		e.telephone.update(dt)
	}
}

func (e *Entity) postUpdate(dt float64, tick uint64) {
	switch e.kind {
	case KindPlayer:
		e.player.postUpdate()
	}
}

func (e *Entity) render(frame uint64) {
	switch e.kind {
	case KindScene:
		e.scene.render()
	case KindPlayer:
		e.player.render()
	case KindAntagonist:
		e.antagonist.render()
	case KindBattery:
		e.battery.render(frame)
	}
}

func (e *Entity) onRemove() {
	switch e.kind {
	case KindRoom:
		e.room.onRemove()
	case KindBreaker:
		e.breaker.onRemove()
	case KindTelephone:
		e.telephone.onRemove()
	}
}
