package world

import (
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/vecmath"
)

const (
	ringInterval = 3.5 // seconds between rings
	ringsPerCall = 5
	ringVolume   = 0.04
	ringMinDelay = 10.0
	ringMaxDelay = 60.0
)

// Telephone rings now and then while the lights are on.
type Telephone struct {
	e        *Entity
	nextRing float64 // seconds
	rings    int
	ringing  bool
	lit      bool // lights were on last tick
}

func NewTelephone() *Entity {
	e := newEntity(KindTelephone, NewPlainTransform(vecmath.Zero))
	e.telephone = &Telephone{e: e}
	return e
}

func (t *Telephone) Ringing() bool     { return t.ringing }
func (t *Telephone) Rings() int        { return t.rings }
func (t *Telephone) NextRing() float64 { return t.nextRing }

func (t *Telephone) onAdd() { t.rearm() }

func (t *Telephone) rearm() {
	t.nextRing = ringMinDelay + t.e.world.rng.Float64()*(ringMaxDelay-ringMinDelay)
	t.rings = 0
}

// update counts down while the lights are on and rings five times when the
// countdown expires. Lights going out silences the phone and restarts the
// countdown.
func (t *Telephone) update(dt float64) {
	w := t.e.world
	scene := w.RequireEntityByID(IDScene).scene
	if !scene.LightsOn() {
		if t.lit {
			if t.ringing {
				w.fx.StopSound(effects.Telephone)
			}
			t.ringing = false
			t.rearm()
		}
		t.lit = false
		return
	}

	t.lit = true
	t.nextRing -= dt
	if t.nextRing > 0 {
		return
	}
	w.fx.PlaySound(effects.Telephone, ringVolume)
	t.ringing = true
	t.rings++
	if t.rings < ringsPerCall {
		t.nextRing = ringInterval
		return
	}
	t.ringing = false
	t.rearm()
}

func (t *Telephone) onRemove() {
	if t.ringing {
		t.e.world.fx.StopSound(effects.Telephone)
	}
}
