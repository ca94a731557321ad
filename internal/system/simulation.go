package system

import (
	"time"

	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/world"
)

// SimulationSystem advances the world by one fixed step. The runner's dt is
// ignored: the world always steps by its configured tick rate.
// Phase 1 (Simulate).
type SimulationSystem struct {
	world *world.World
}

func NewSimulationSystem(w *world.World) *SimulationSystem {
	return &SimulationSystem{world: w}
}

func (s *SimulationSystem) Phase() coresys.Phase { return coresys.PhaseSimulate }

func (s *SimulationSystem) Update(_ time.Duration) {
	s.world.Tick()
}
