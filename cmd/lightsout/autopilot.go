package main

import (
	"math/rand"

	"github.com/lightsout/lightsout/internal/input"
)

// autopilot walks the player around in headless runs: always forward, with a
// random turn every couple of seconds.
type autopilot struct {
	device *input.Virtual
	rng    *rand.Rand
	every  uint64
}

func newAutopilot(seed int64) *autopilot {
	d := input.NewVirtual()
	d.SetAxis(input.AxisVertical, 1)
	return &autopilot{device: d, rng: rand.New(rand.NewSource(seed)), every: 120}
}

// steer queues a turn on every interval boundary. The turn lands on the next
// render frame, which is when mouse look is applied.
func (a *autopilot) steer(tick uint64) {
	if tick%a.every != 0 {
		return
	}
	a.device.MoveMouse(a.rng.Float64()*1600-800, 0)
}
