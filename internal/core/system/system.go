package system

import "time"

// Phase orders systems within one runner tick.
type Phase int

const (
	PhaseInput    Phase = iota // 0: deliver last tick's events
	PhaseSimulate              // 1: world tick (update, physics step, post-update)
	PhaseObserve               // 2: read-only observers of settled state
	PhasePersist               // 3: journal writes
	PhaseCleanup               // 4: recycle released handles
)

// System is one unit of per-tick work.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
