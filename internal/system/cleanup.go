package system

import (
	"time"

	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/world"
)

// CleanupSystem recycles the handles of entities removed during the tick.
// Phase 4 (Cleanup).
type CleanupSystem struct {
	world *world.World
}

func NewCleanupSystem(w *world.World) *CleanupSystem {
	return &CleanupSystem{world: w}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDestroyQueue()
}
