package system

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/core/event"
	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/persist"
)

// RunRecorder stores finished runs. *persist.RunRepo implements it.
type RunRecorder interface {
	Insert(ctx context.Context, run persist.Run) error
}

// JournalSystem writes one row per finished run. Runs arrive through the
// PlayerKilled event and are written in the persist phase of the tick that
// delivers them.
// A nil recorder only logs. Phase 3 (Persist).
type JournalSystem struct {
	rec     RunRecorder
	log     *zap.Logger
	timeout time.Duration
	pending []persist.Run
	written int
	now     func() time.Time
}

func NewJournalSystem(bus *event.Bus, rec RunRecorder, log *zap.Logger) *JournalSystem {
	s := &JournalSystem{
		rec:     rec,
		log:     log,
		timeout: 5 * time.Second,
		now:     time.Now,
	}
	event.Subscribe(bus, s.onPlayerKilled)
	return s
}

func (s *JournalSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *JournalSystem) Update(_ time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	s.Flush(context.Background())
}

func (s *JournalSystem) onPlayerKilled(ev event.PlayerKilled) {
	id, err := uuid.Parse(ev.RunID)
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(ev.RunID))
	}
	s.pending = append(s.pending, persist.Run{
		ID:          id,
		Seed:        ev.Seed,
		Ticks:       ev.Tick,
		Distance:    ev.Distance,
		MaxInsanity: ev.MaxInsanity,
		EndedAt:     s.now(),
	})
}

// Flush writes every pending run. Failed writes are logged and dropped.
func (s *JournalSystem) Flush(ctx context.Context) {
	for _, run := range s.pending {
		s.log.Info("run finished",
			zap.Stringer("run", run.ID),
			zap.Uint64("ticks", run.Ticks),
			zap.Float64("distance", run.Distance),
			zap.Float64("max_insanity", run.MaxInsanity))
		if s.rec == nil {
			continue
		}
		wctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.rec.Insert(wctx, run)
		cancel()
		if err != nil {
			s.log.Error("journal write failed", zap.Stringer("run", run.ID), zap.Error(err))
			continue
		}
		s.written++
	}
	s.pending = s.pending[:0]
}

// Written reports how many runs reached the recorder.
func (s *JournalSystem) Written() int { return s.written }

// Pending reports how many runs wait for the next flush.
func (s *JournalSystem) Pending() int { return len(s.pending) }
