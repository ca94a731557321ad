package world

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// GridCoord identifies a room on the infinite floor grid.
type GridCoord struct {
	X, Z int
}

func (c GridCoord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Z) }

// Chebyshev is the larger of the two axis distances.
func (c GridCoord) Chebyshev(o GridCoord) int {
	return max(absInt(c.X-o.X), absInt(c.Z-o.Z))
}

// CellOf returns the room whose center is nearest to pos.
func CellOf(pos vecmath.Vector, roomSize float64) GridCoord {
	return GridCoord{
		X: int(math.Round(pos.X() / roomSize)),
		Z: int(math.Round(pos.Z() / roomSize)),
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Wall indexes a room's four half-walls. Each runs from the room center to
// the middle of one side.
type Wall int

const (
	WallNorth Wall = iota // +Z
	WallEast              // +X
	WallSouth             // -Z
	WallWest              // -X
)

// RoomLayout derives a room's walls and whether it gets a fixture. The result
// depends only on the seed and the coordinate. The origin room is walless.
func RoomLayout(seed int64, c GridCoord, cfg config.WorldConfig) (walls [4]bool, fixture bool) {
	if c == (GridCoord{}) {
		return walls, false
	}
	r := roomRand(seed, c)
	for i := range walls {
		walls[i] = r.Float64() < cfg.WallChance
	}
	fixture = walls[WallEast] &&
		c.Chebyshev(GridCoord{}) >= cfg.FixtureMinDistance &&
		r.Float64() < cfg.FixtureChance
	return walls, fixture
}

func roomRand(seed int64, c GridCoord) *rand.Rand {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.X)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.Z)))
	return rand.New(rand.NewSource(int64(xxhash.Sum64(buf[:]))))
}

// Room is one grid cell: a floor, a ceiling and up to four half-walls.
type Room struct {
	e       *Entity
	coord   GridCoord
	walls   [4]bool
	fixture *Entity
}

func NewRoom(c GridCoord, walls [4]bool) *Entity {
	e := newEntity(KindRoom, NewBodyTransform(vecmath.Zero))
	e.container.Label = "room " + c.String()
	e.room = &Room{e: e, coord: c, walls: walls}
	return e
}

func (r *Room) Coord() GridCoord    { return r.coord }
func (r *Room) Walls() [4]bool      { return r.walls }
func (r *Room) HasWall(w Wall) bool { return r.walls[w] }

// Fixture is the breaker spawned in this room, if any.
func (r *Room) Fixture() *Entity { return r.fixture }

func (r *Room) center() vecmath.Vector {
	s := r.e.world.cfg.World.RoomSize
	return vecmath.Vec(float64(r.coord.X)*s, 0, float64(r.coord.Z)*s)
}

// wallGeometry returns the half extents and local offset of wall i.
func wallGeometry(i Wall, cfg config.WorldConfig) (half, offset vecmath.Vector) {
	s, h, t := cfg.RoomSize, cfg.RoomHeight, cfg.WallThickness
	switch i {
	case WallNorth:
		return vecmath.Vec(t/2, h/2, s/4), vecmath.Vec(0, h/2, s/4)
	case WallEast:
		return vecmath.Vec(s/4, h/2, t/2), vecmath.Vec(s/4, h/2, 0)
	case WallSouth:
		return vecmath.Vec(t/2, h/2, s/4), vecmath.Vec(0, h/2, -s/4)
	default:
		return vecmath.Vec(s/4, h/2, t/2), vecmath.Vec(-s/4, h/2, 0)
	}
}

func (r *Room) physicsDesc() (physics.RigidBodyDesc, []physics.ColliderDesc, bool) {
	cfg := r.e.world.cfg.World
	r.e.transform.SetPosition(r.center())

	colliders := []physics.ColliderDesc{
		physics.CuboidCollider(cfg.RoomSize/2, 0.01, cfg.RoomSize/2), // floor
	}
	for i, present := range r.walls {
		if !present {
			continue
		}
		half, off := wallGeometry(Wall(i), cfg)
		colliders = append(colliders, physics.ColliderDesc{
			Shape:  physics.Cuboid{Half: half},
			Offset: off,
		})
	}
	return physics.FixedBody(), colliders, true
}

func (r *Room) initGraphics() {
	cfg := r.e.world.cfg.World
	c := r.e.container
	c.Add(render.Mesh{Name: "floor", Size: vecmath.Vec(cfg.RoomSize, 0.02, cfg.RoomSize), Color: render.ColorFloor})
	c.Add(render.Mesh{
		Name:   "ceiling",
		Offset: vecmath.Vec(0, cfg.RoomHeight, 0),
		Size:   vecmath.Vec(cfg.RoomSize, 0.02, cfg.RoomSize),
		Color:  render.ColorCeiling,
	})
	for i, present := range r.walls {
		if !present {
			continue
		}
		half, off := wallGeometry(Wall(i), cfg)
		c.Add(render.Mesh{Name: "wall", Offset: off, Size: half.Scale(2), Color: render.ColorWall})
	}
}

// spawnFixture mounts a breaker on the east wall.
func (r *Room) spawnFixture() {
	cfg := r.e.world.cfg.World
	pos := r.center().Add(vecmath.Vec(cfg.RoomSize/4, cfg.RoomHeight/2, 0.1))
	b := NewBreaker(pos)
	r.e.world.AddEntity(b, "")
	r.fixture = b
}

func (r *Room) onRemove() {
	if r.fixture != nil {
		r.e.world.RemoveEntity(r.fixture)
	}
}
