package world

import (
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/core/event"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

const (
	antagonistHalfHeight = 1.2
	antagonistRadius     = 0.5
	// antagonistStandHeight puts a fresh antagonist just above the floor.
	antagonistStandHeight = 0.01 + antagonistHalfHeight + antagonistRadius + 0.04
	jitter                = 0.05
)

// Antagonist chases the player while the lights are off.
type Antagonist struct {
	e         *Entity
	spotted   bool
	billboard *render.Mesh
}

func NewAntagonist(pos vecmath.Vector) *Entity {
	e := newEntity(KindAntagonist, NewBodyTransform(pos))
	e.antagonist = &Antagonist{e: e}
	return e
}

// Spotted reports whether the player has seen this antagonist.
func (a *Antagonist) Spotted() bool { return a.spotted }

func (a *Antagonist) physicsDesc() (physics.RigidBodyDesc, []physics.ColliderDesc, bool) {
	desc := physics.DynamicBody()
	desc.LockRotations = true
	return desc, []physics.ColliderDesc{physics.CapsuleCollider(antagonistHalfHeight, antagonistRadius)}, true
}

func (a *Antagonist) initGraphics() {
	a.billboard = a.e.container.Add(render.Mesh{
		Name:  "billboard",
		Size:  vecmath.Vec(1, 3.5, 0),
		Color: render.ColorShadow,
	})
}

// update steers toward the player, kills on contact, despawns when out of
// range or when the lights are back on, and fires the alert the first time
// the player sees it.
func (a *Antagonist) update(tick uint64) {
	w := a.e.world
	cfg := w.cfg.Antagonist
	player := w.RequireEntityByID(IDPlayer)
	p := player.player

	pos := a.e.Position()
	delta := player.Position().Sub(pos)

	speed := cfg.ChaseSpeed * (1 + p.settings.SpeedMultiplier)
	chase := delta.Horizontal().Normalize().Scale(speed)
	a.e.body.SetLinvel(chase.WithY(a.e.body.Linvel().Y()))
	a.e.transform.SetRotation(vecmath.FromAxisAngle(vecmath.Up, delta.Angle()))

	dist := delta.Len()
	if dist < cfg.KillDistance {
		p.Kill()
	}

	if dist > cfg.DespawnDistance || p.lightsOn() {
		w.RemoveEntity(a.e)
		return
	}

	if a.spotted || p.state != Alive {
		return
	}
	eye := p.Eye()
	ray := pos.Sub(eye)
	if w.physics.CountRayHits(eye, ray, 1, player.body, a.e.body) > 0 {
		return
	}
	if p.Facing().Dot(ray.Horizontal().Normalize()) <= cfg.LookThreshold {
		return
	}
	a.spotted = true
	w.playSound(effects.Spotted)
	w.playSound(effects.Stinger)
	event.Emit(w.events, event.AntagonistSpotted{Tick: tick, Distance: dist})
	w.log.Debug("antagonist spotted", zap.Uint64("tick", tick), zap.Float64("distance", dist))
}

// render shakes the billboard a little every frame.
func (a *Antagonist) render() {
	r := a.e.world.renderRng
	a.billboard.Offset = vecmath.Vec(
		r.Float64()*2*jitter-jitter,
		r.Float64()*2*jitter-jitter,
		0,
	)
}
