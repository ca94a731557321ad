package system

import (
	"time"

	"github.com/lightsout/lightsout/internal/core/event"
	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/world"
)

// RunStats summarises the run so far.
type RunStats struct {
	Blackouts      int // lights-off transitions
	Sightings      int // antagonists the player looked at
	PeakPopulation int
	Faults         int
}

// StatsSystem watches the settled world and the event stream.
// Phase 2 (Observe).
type StatsSystem struct {
	world *world.World
	stats RunStats
}

func NewStatsSystem(w *world.World, bus *event.Bus) *StatsSystem {
	s := &StatsSystem{world: w}
	event.Subscribe(bus, func(ev event.LightsChanged) {
		if !ev.On {
			s.stats.Blackouts++
		}
	})
	event.Subscribe(bus, func(event.AntagonistSpotted) {
		s.stats.Sightings++
	})
	return s
}

func (s *StatsSystem) Phase() coresys.Phase { return coresys.PhaseObserve }

func (s *StatsSystem) Update(_ time.Duration) {
	s.stats.PeakPopulation = max(s.stats.PeakPopulation, s.world.Count(world.KindAntagonist))
	s.stats.Faults = s.world.Faults()
}

func (s *StatsSystem) Stats() RunStats { return s.stats }
