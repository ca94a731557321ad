package system

import (
	"time"

	"github.com/lightsout/lightsout/internal/core/event"
	coresys "github.com/lightsout/lightsout/internal/core/system"
)

// EventDispatchSystem delivers the events queued during the previous tick.
// Phase 0 (Input).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
