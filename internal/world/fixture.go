package world

import (
	"math"

	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// Breaker is a wall-mounted box that opens once and leaves a battery inside.
type Breaker struct {
	e        *Entity
	battery  *Entity
	doorOpen bool
	door     *render.Mesh
}

func NewBreaker(pos vecmath.Vector) *Entity {
	e := newEntity(KindBreaker, NewBodyTransform(pos))
	e.breaker = &Breaker{e: e}
	return e
}

func (b *Breaker) DoorOpen() bool { return b.doorOpen }

// BatteryEntity is the battery this breaker spawned, live or not.
func (b *Breaker) BatteryEntity() *Entity { return b.battery }

func (b *Breaker) physicsDesc() (physics.RigidBodyDesc, []physics.ColliderDesc, bool) {
	return physics.FixedBody(), []physics.ColliderDesc{physics.CuboidCollider(0.3, 0.5, 0.1)}, true
}

func (b *Breaker) initGraphics() {
	c := b.e.container
	const t = 0.1
	c.Add(render.Mesh{Name: "back", Offset: vecmath.Vec(0, 0, -0.05), Size: vecmath.Vec(0.6, 1, 0.01), Color: render.ColorMetal})
	c.Add(render.Mesh{Name: "left", Offset: vecmath.Vec(-0.3+t/2, 0, 0), Size: vecmath.Vec(t, 1-2*t, 0.2), Color: render.ColorMetal})
	c.Add(render.Mesh{Name: "right", Offset: vecmath.Vec(0.3-t/2, 0, 0), Size: vecmath.Vec(t, 1-2*t, 0.2), Color: render.ColorMetal})
	c.Add(render.Mesh{Name: "top", Offset: vecmath.Vec(0, 0.5-t/2, 0), Size: vecmath.Vec(0.6, t, 0.2), Color: render.ColorMetal})
	c.Add(render.Mesh{Name: "bottom", Offset: vecmath.Vec(0, -0.5+t/2, 0), Size: vecmath.Vec(0.6, t, 0.2), Color: render.ColorMetal})
	b.door = c.Add(render.Mesh{Name: "door", Offset: vecmath.Vec(0, 0, 0.1), Size: vecmath.Vec(0.6, 1, 0.01), Color: render.ColorMetal})
}

// update opens the door and places the battery on the first tick.
func (b *Breaker) update() {
	if b.battery != nil {
		return
	}
	b.toggleDoor()
	bat := NewBattery(b.e.Position())
	b.e.world.AddEntity(bat, "")
	b.battery = bat
}

func (b *Breaker) toggleDoor() {
	b.doorOpen = !b.doorOpen
	if b.doorOpen {
		b.door.Rotation = vecmath.FromAxisAngle(vecmath.Up, -math.Pi*0.8)
	} else {
		b.door.Rotation = vecmath.Identity()
	}
}

// onRemove takes an unclaimed battery down with the breaker.
func (b *Breaker) onRemove() {
	if b.battery != nil {
		b.e.world.RemoveEntity(b.battery)
	}
}

// Battery refills the flashlight when the player looks at it and presses use.
type Battery struct {
	e       *Entity
	hovered bool
	mesh    *render.Mesh
}

func NewBattery(pos vecmath.Vector) *Entity {
	e := newEntity(KindBattery, NewPlainTransform(pos))
	e.battery = &Battery{e: e}
	return e
}

func (b *Battery) Hovered() bool { return b.hovered }

func (b *Battery) initGraphics() {
	b.mesh = b.e.container.Add(render.Mesh{
		Name:   "cell",
		Offset: vecmath.Vec(0, 0.07, 0),
		Size:   vecmath.Vec(0.12, 0.14, 0.12),
		Color:  render.ColorBattery,
	})
}

func (b *Battery) update() {
	w := b.e.world
	player := w.RequireEntityByID(IDPlayer)
	if player.player.targeted != b.e {
		if b.hovered {
			b.hovered = false
			b.mesh.Color = render.ColorBattery
			w.fx.ShowPickupNote(false)
		}
		return
	}

	if !b.hovered {
		b.hovered = true
		b.mesh.Color = render.ColorHover
		w.fx.ShowPickupNote(true)
	}
	if w.input.IsKeyDown(input.KeyUse) {
		w.RemoveEntity(b.e)
		player.player.RefillBattery()
		w.fx.ShowPickupNote(false)
		w.playSound(effects.Collect)
	}
}

// render spins the cell and bobs it up and down.
func (b *Battery) render(frame uint64) {
	const spin = 0.01
	b.mesh.Rotation = b.mesh.Rotation.
		Rotate(vecmath.Right, spin).
		Rotate(vecmath.Up, spin).
		Rotate(vecmath.Forward, spin)
	bounce := math.Sin(float64(frame)/100*2*math.Pi) * 0.02
	b.mesh.Offset = b.mesh.Offset.WithY(0.07 + bounce)
}
