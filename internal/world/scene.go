package world

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/core/event"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// LightState is the scene's lighting state.
type LightState int

const (
	LightsOn LightState = iota
	LightsOff
)

func (s LightState) String() string {
	if s == LightsOn {
		return "LIGHTS_ON"
	}
	return "LIGHTS_OFF"
}

// Scene is the singleton controller that streams rooms around the player and
// runs the lights cycle.
type Scene struct {
	e               *Entity
	rooms           map[GridCoord]*Entity
	lights          LightState
	deadline        uint64
	scheduled       bool
	flashlightShown bool
}

func NewScene() *Entity {
	e := newEntity(KindScene, NewPlainTransform(vecmath.Zero))
	e.scene = &Scene{e: e, rooms: make(map[GridCoord]*Entity)}
	return e
}

func (s *Scene) Lights() LightState { return s.lights }
func (s *Scene) LightsOn() bool     { return s.lights == LightsOn }

// Deadline is the tick of the next lights transition. ok is false during the
// grace period before the first transition is scheduled.
func (s *Scene) Deadline() (tick uint64, ok bool) { return s.deadline, s.scheduled }

func (s *Scene) RoomCount() int { return len(s.rooms) }

// RoomAt returns the room at c, or nil.
func (s *Scene) RoomAt(c GridCoord) *Entity { return s.rooms[c] }

// Rooms lists the coordinates of every live room, sorted.
func (s *Scene) Rooms() []GridCoord {
	out := make([]GridCoord, 0, len(s.rooms))
	for c := range s.rooms {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

func compareCoords(a, b GridCoord) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Z - b.Z
}

func (s *Scene) initGraphics() {
	w := s.e.world
	w.scene.Ambient.Color = w.cfg.Lighting.AmbientColor
	w.scene.Ambient.Intensity = w.cfg.Lighting.OnIntensity
	w.scene.Background = w.cfg.Lighting.OnBackground
}

func (s *Scene) onAdd() {
	s.generateRoom(GridCoord{})
	s.e.world.fx.SetAmbientVolume(s.e.world.cfg.Lighting.HumOnVolume)
}

func (s *Scene) update(tick uint64) {
	w := s.e.world
	player := w.RequireEntityByID(IDPlayer)
	s.StreamRooms(player.Position())

	if !s.scheduled {
		if p := player.player; p != nil && p.DistanceFromSpawn() >= w.cfg.Lighting.GraceDistance {
			s.schedule(tick)
		}
		return
	}
	if tick >= s.deadline {
		s.setLights(s.lights != LightsOn, tick)
	}
}

// StreamRooms creates every missing room within the generation radius of
// pos's cell and destroys rooms beyond the retention radius on either axis.
func (s *Scene) StreamRooms(pos vecmath.Vector) {
	cfg := s.e.world.cfg.World
	center := CellOf(pos, cfg.RoomSize)
	g := cfg.GenerationRadius

	for dx := -g; dx <= g; dx++ {
		for dz := -g; dz <= g; dz++ {
			c := GridCoord{X: center.X + dx, Z: center.Z + dz}
			if _, ok := s.rooms[c]; !ok {
				s.generateRoom(c)
			}
		}
	}

	var doomed []GridCoord
	for c := range s.rooms {
		if absInt(c.X-center.X) > cfg.RetentionRadius || absInt(c.Z-center.Z) > cfg.RetentionRadius {
			doomed = append(doomed, c)
		}
	}
	slices.SortFunc(doomed, compareCoords)
	for _, c := range doomed {
		s.e.world.RemoveEntity(s.rooms[c])
		delete(s.rooms, c)
	}
}

func (s *Scene) generateRoom(c GridCoord) {
	w := s.e.world
	walls, fixture := RoomLayout(w.seed, c, w.cfg.World)
	room := NewRoom(c, walls)
	w.AddEntity(room, "")
	s.rooms[c] = room
	if fixture {
		room.room.spawnFixture()
	}
}

// SetLights forces the lighting state and schedules the next transition.
func (s *Scene) SetLights(on bool) {
	s.setLights(on, s.e.world.currentTick)
}

func (s *Scene) setLights(on bool, tick uint64) {
	w := s.e.world
	cfg := w.cfg.Lighting
	if on {
		s.lights = LightsOn
		w.scene.Ambient.Intensity = cfg.OnIntensity
		w.scene.Background = cfg.OnBackground
		w.fx.SetAmbientVolume(cfg.HumOnVolume)
	} else {
		s.lights = LightsOff
		w.scene.Ambient.Intensity = cfg.OffIntensity
		w.scene.Background = cfg.OffBackground
		w.fx.SetAmbientVolume(cfg.HumOffVolume)
		if !s.flashlightShown {
			s.flashlightShown = true
			w.fx.SetFlashlightVisible(true)
		}
	}
	s.schedule(tick)
	event.Emit(w.events, event.LightsChanged{On: on, Tick: tick})
	w.log.Info("lights changed",
		zap.Stringer("state", s.lights),
		zap.Uint64("tick", tick),
		zap.Uint64("next", s.deadline))
}

func (s *Scene) schedule(tick uint64) {
	cfg := s.e.world.cfg.Lighting
	span := cfg.MaxInterval - cfg.MinInterval
	delay := cfg.MinInterval
	if span > 0 {
		delay += s.e.world.rng.Intn(span + 1)
	}
	s.deadline = tick + uint64(delay)
	s.scheduled = true
}

// render scrolls the environment textures at the current difficulty speeds.
func (s *Scene) render() {
	w := s.e.world
	p, err := w.FindByID(IDPlayer)
	if err != nil || p.player == nil {
		return
	}
	st := p.player.settings
	const rate = 0.002
	w.scene.Scroll.Wall = math.Mod(w.scene.Scroll.Wall+st.WallSpeed*rate, 1)
	w.scene.Scroll.Floor = math.Mod(w.scene.Scroll.Floor+st.FloorSpeed*rate, 1)
	w.scene.Scroll.Ceiling = math.Mod(w.scene.Scroll.Ceiling+st.CeilingSpeed*rate, 1)
}
