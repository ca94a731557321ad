// Package world is the game runtime: the World owns the physics engine, the
// render scene and the live entity set, and drives every entity through the
// simulation clock (Tick) and the render clock (RenderFrame).
//
// A World is accessed only from the game loop goroutine; no locks.
package world

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/core/ecs"
	"github.com/lightsout/lightsout/internal/core/event"
	"github.com/lightsout/lightsout/internal/data"
	"github.com/lightsout/lightsout/internal/difficulty"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// Deps are the collaborators a World talks to. Zero fields get inert
// defaults so tests only set what they observe.
type Deps struct {
	Config     *config.Config
	Log        *zap.Logger
	Effects    effects.Sink
	Input      input.Device
	Sink       render.Sink
	Difficulty difficulty.Mapper
	Events     *event.Bus
	Sounds     *data.SoundTable
	Seed       int64
	RunID      string
}

type World struct {
	cfg    *config.Config
	log    *zap.Logger
	fx     effects.Sink
	input  input.Device
	sink   render.Sink
	mapper difficulty.Mapper
	events *event.Bus
	sounds *data.SoundTable

	physics *physics.Engine
	scene   *render.Scene

	handles  *ecs.World
	entities *ecs.Store[Entity]
	tags     *ecs.Store[TagSet]
	ids      map[string]*Entity

	rng       *rand.Rand // simulation
	renderRng *rand.Rand // cosmetic only, so frame rate never changes the simulation
	seed      int64
	runID     string

	dt          float64
	currentTick uint64
	frameIndex  uint64
	faults      int
	faulted     map[*Entity]struct{}
}

func New(deps Deps) *World {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	w := &World{
		cfg:      cfg,
		log:      deps.Log,
		fx:       deps.Effects,
		input:    deps.Input,
		sink:     deps.Sink,
		mapper:   deps.Difficulty,
		events:   deps.Events,
		sounds:   deps.Sounds,
		scene:    render.NewScene(),
		handles:  ecs.NewWorld(),
		entities: ecs.NewStore[Entity](512),
		tags:     ecs.NewStore[TagSet](512),
		ids:      make(map[string]*Entity),
		seed:     deps.Seed,
		runID:    deps.RunID,
		dt:       cfg.TickSeconds(),
		faulted:  make(map[*Entity]struct{}),
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	if w.fx == nil {
		w.fx = effects.Discard
	}
	if w.input == nil {
		w.input = input.NewVirtual()
	}
	if w.sink == nil {
		w.sink = render.Discard
	}
	if w.mapper == nil {
		w.mapper = difficulty.Builtin{MaxAntagonists: cfg.Antagonist.MaxCount}
	}
	if w.events == nil {
		w.events = event.NewBus()
	}
	if w.runID == "" {
		w.runID = uuid.NewString()
	}
	w.rng = rand.New(rand.NewSource(w.seed))
	w.renderRng = rand.New(rand.NewSource(w.seed ^ 0x5eed))
	w.physics = physics.NewEngine(
		physics.WithGravity(vecmath.Vec(0, -cfg.World.Gravity, 0)),
		physics.WithTimestep(w.dt),
	)
	w.handles.Registry().Register(w.entities)
	w.handles.Registry().Register(w.tags)
	w.log = w.log.With(zap.String("run", w.runID))
	return w
}

func (w *World) Config() *config.Config     { return w.cfg }
func (w *World) Log() *zap.Logger           { return w.log }
func (w *World) Physics() *physics.Engine   { return w.physics }
func (w *World) RenderScene() *render.Scene { return w.scene }
func (w *World) Events() *event.Bus         { return w.events }
func (w *World) Input() input.Device        { return w.input }
func (w *World) Effects() effects.Sink      { return w.fx }
func (w *World) RunID() string              { return w.runID }
func (w *World) Seed() int64                { return w.seed }
func (w *World) CurrentTick() uint64        { return w.currentTick }
func (w *World) FrameIndex() uint64         { return w.frameIndex }
func (w *World) Faults() int                { return w.faults }

// Rand is the seeded simulation random source.
func (w *World) Rand() *rand.Rand { return w.rng }

// Tick advances the simulation by one fixed step: update hooks, one physics
// step, then post-update hooks.
func (w *World) Tick() {
	w.currentTick++
	clear(w.faulted)

	for _, e := range w.snapshot() {
		if e.removed {
			continue
		}
		w.guard(e, "update", func() { e.update(w.dt, w.currentTick) })
	}

	w.physics.Step()

	for _, e := range w.snapshot() {
		if e.removed {
			continue
		}
		if _, bad := w.faulted[e]; bad {
			continue
		}
		w.guard(e, "post_update", func() { e.postUpdate(w.dt, w.currentTick) })
	}
}

// RenderFrame syncs containers, runs render hooks and submits one frame.
func (w *World) RenderFrame() {
	for _, e := range w.snapshot() {
		if e.removed {
			continue
		}
		e.syncContainer()
		w.guard(e, "render", func() { e.render(w.frameIndex) })
	}
	w.sink.Submit(w.scene.Snapshot(w.frameIndex))
	w.frameIndex++
}

// FlushDestroyQueue recycles the handles of removed entities. The cleanup
// system calls it once per tick, after every other system.
func (w *World) FlushDestroyQueue() {
	w.handles.FlushDestroyQueue()
}

// PendingHandles reports how many removed handles await recycling.
func (w *World) PendingHandles() int { return w.handles.Pending() }

// snapshot returns the live entities in handle order.
func (w *World) snapshot() []*Entity {
	ids := w.entities.Snapshot()
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// guard runs one hook, turning a panic into a logged fault so the clocks
// keep running. It reports whether the hook completed.
func (w *World) guard(e *Entity, hook string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			w.faults++
			w.faulted[e] = struct{}{}
			w.log.Error("entity hook panicked",
				zap.String("kind", e.kind.String()),
				zap.Stringer("handle", e.handle),
				zap.String("hook", hook),
				zap.Uint64("tick", w.currentTick),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	fn()
	return true
}

// playSound plays name at its catalogue volume.
func (w *World) playSound(name string) {
	vol := data.DefaultVolume
	if w.sounds != nil {
		vol = w.sounds.Volume(name)
	} else if v, ok := builtinVolumes[name]; ok {
		vol = v
	}
	w.fx.PlaySound(name, vol)
}

var builtinVolumes = map[string]float64{
	effects.FootStep:   1,
	effects.FlashLight: 0.5,
	effects.Collect:    0.5,
}
