package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/core/event"
	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/persist"
	"github.com/lightsout/lightsout/internal/vecmath"
	"github.com/lightsout/lightsout/internal/world"
)

type memRecorder struct {
	runs []persist.Run
	err  error
}

func (m *memRecorder) Insert(_ context.Context, run persist.Run) error {
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, run)
	return nil
}

type game struct {
	cfg     *config.Config
	w       *world.World
	runner  *coresys.Runner
	fx      *effects.Recorder
	rec     *memRecorder
	journal *JournalSystem
	stats   *StatsSystem
	player  *world.Entity
	scene   *world.Entity
	logs    *observer.ObservedLogs
}

func newGame(t *testing.T) *game {
	t.Helper()
	cfg := config.Defaults()
	cfg.World.GenerationRadius = 2
	cfg.World.RetentionRadius = 3
	cfg.Lighting.MinInterval = 120
	cfg.Lighting.MaxInterval = 120
	require.NoError(t, cfg.Validate())

	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	bus := event.NewBus()
	g := &game{
		cfg:  cfg,
		fx:   &effects.Recorder{},
		rec:  &memRecorder{},
		logs: logs,
	}
	g.w = world.New(world.Deps{
		Config:  cfg,
		Log:     log,
		Effects: g.fx,
		Input:   input.NewVirtual(),
		Events:  bus,
		Seed:    11,
	})
	g.player, g.scene = world.Bootstrap(g.w)

	g.journal = NewJournalSystem(bus, g.rec, log)
	g.stats = NewStatsSystem(g.w, bus)
	g.runner = coresys.NewRunner()
	g.runner.Register(NewCleanupSystem(g.w))
	g.runner.Register(g.journal)
	g.runner.Register(g.stats)
	g.runner.Register(NewSimulationSystem(g.w))
	g.runner.Register(NewEventDispatchSystem(bus))
	return g
}

func (g *game) tick(n int) {
	for i := 0; i < n; i++ {
		g.runner.Tick(g.cfg.Game.TickRate)
	}
}

func TestScenarioQuietStart(t *testing.T) {
	g := newGame(t)
	g.tick(1)

	p := g.player.Player()
	require.Equal(t, world.Alive, p.State())
	require.Zero(t, g.w.Count(world.KindAntagonist))
	require.Equal(t, 25, g.scene.Scene().RoomCount())
	require.Equal(t, 25, g.w.Count(world.KindRoom))
	require.True(t, g.scene.Scene().LightsOn())
	require.Zero(t, g.w.Faults())
}

func TestScenarioFarAntagonistDespawns(t *testing.T) {
	g := newGame(t)
	a := world.NewAntagonist(vecmath.Vec(40, 1.75, 0))
	g.w.AddEntity(a, "")

	g.tick(1)
	require.True(t, a.Removed())
	require.Zero(t, g.w.Count(world.KindAntagonist))
	require.Zero(t, g.w.PendingHandles(), "cleanup recycled the handle")
	require.Equal(t, world.Alive, g.player.Player().State())
}

func TestScenarioCloseAntagonistKills(t *testing.T) {
	g := newGame(t)
	a := world.NewAntagonist(vecmath.Vec(2, 1.75, 0))
	g.w.AddEntity(a, "")

	g.tick(1)
	p := g.player.Player()
	require.Equal(t, world.Killed, p.State())
	require.Equal(t, uint64(1), p.KillTick())
	require.True(t, a.Removed(), "lights are on, so it leaves after the kill")
	require.Equal(t, 1, g.fx.Count(effects.Killed))
	require.Empty(t, g.rec.runs, "delivered on the next tick")

	g.tick(1)
	require.Len(t, g.rec.runs, 1)
	run := g.rec.runs[0]
	require.Equal(t, g.w.RunID(), run.ID.String())
	require.Equal(t, uint64(1), run.Ticks)
	require.Equal(t, int64(11), run.Seed)
	require.Equal(t, 1, g.journal.Written())

	g.tick(30)
	require.Equal(t, world.Killed, p.State())
	require.Len(t, g.rec.runs, 1)
}

func TestScenarioLightsComeBack(t *testing.T) {
	g := newGame(t)
	s := g.scene.Scene()
	s.SetLights(false)
	deadline, ok := s.Deadline()
	require.True(t, ok)

	for g.w.CurrentTick() < deadline {
		require.False(t, s.LightsOn())
		g.tick(1)
	}
	require.True(t, s.LightsOn())
	require.Equal(t, 0.8, g.w.RenderScene().Ambient.Intensity)

	g.tick(1)
	require.Equal(t, 1, g.stats.Stats().Blackouts)
}

func TestJournalWithoutRecorder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := event.NewBus()
	j := NewJournalSystem(bus, nil, zap.New(core))

	event.Emit(bus, event.PlayerKilled{RunID: "local", Tick: 90, Distance: 12})
	NewEventDispatchSystem(bus).Update(0)
	require.Equal(t, 1, j.Pending())
	j.Update(0)
	require.Zero(t, j.Pending())
	require.Zero(t, j.Written())

	entries := logs.FilterMessage("run finished").All()
	require.Len(t, entries, 1)
	want := uuid.NewSHA1(uuid.NameSpaceOID, []byte("local")).String()
	require.Equal(t, want, entries[0].ContextMap()["run"])
}

func TestJournalWriteFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := event.NewBus()
	rec := &memRecorder{err: errors.New("connection refused")}
	j := NewJournalSystem(bus, rec, zap.New(core))

	event.Emit(bus, event.PlayerKilled{RunID: "local"})
	NewEventDispatchSystem(bus).Update(0)
	j.Update(time.Second)
	require.Zero(t, j.Written())
	require.Zero(t, j.Pending(), "failed runs are dropped")
	require.Equal(t, 1, logs.FilterMessage("journal write failed").Len())
}
