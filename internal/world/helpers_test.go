package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/core/event"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/render"
)

type harness struct {
	w      *World
	cfg    *config.Config
	fx     *effects.Recorder
	in     *input.Virtual
	frames *render.Latest
	bus    *event.Bus
	logs   *observer.ObservedLogs
}

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.World.GenerationRadius = 1
	cfg.World.RetentionRadius = 2
	cfg.Lighting.MinInterval = 120
	cfg.Lighting.MaxInterval = 120
	return cfg
}

func newHarness(t *testing.T, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Validate())

	core, logs := observer.New(zap.DebugLevel)
	h := &harness{
		cfg:    cfg,
		fx:     &effects.Recorder{},
		in:     input.NewVirtual(),
		frames: &render.Latest{},
		bus:    event.NewBus(),
		logs:   logs,
	}
	h.w = New(Deps{
		Config:  cfg,
		Log:     zap.New(core),
		Effects: h.fx,
		Input:   h.in,
		Sink:    h.frames,
		Events:  h.bus,
		Seed:    7,
		RunID:   "test-run",
	})
	return h
}

// boot adds the standard singletons.
func (h *harness) boot() (player, scene *Entity) {
	return Bootstrap(h.w)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.w.Tick()
		h.w.FlushDestroyQueue()
	}
}

// drain delivers every queued event of type T.
func drain[T any](h *harness) []T {
	var got []T
	event.Subscribe(h.bus, func(ev T) { got = append(got, ev) })
	h.bus.SwapBuffers()
	h.bus.DispatchAll()
	return got
}
