// Package render holds the scene graph that entities draw into and the frame
// snapshots handed to a display once per render tick.
package render

import "github.com/lightsout/lightsout/internal/vecmath"

// Colours shared by the game's scene.
const (
	ColorWall    uint32 = 0xc8c27a
	ColorFloor   uint32 = 0x8a7f4a
	ColorCeiling uint32 = 0xd9d5a7
	ColorShadow  uint32 = 0x222222
	ColorMetal   uint32 = 0x9a9a9a
	ColorBattery uint32 = 0xffffff
	ColorHover   uint32 = 0x00ff00
)

// Mesh is one drawable primitive, placed relative to its container.
type Mesh struct {
	Name     string
	Offset   vecmath.Vector
	Rotation vecmath.Quaternion
	Size     vecmath.Vector // full extents
	Color    uint32
	Hidden   bool
}

// Container is an entity's node in the scene graph. The world copies the
// entity transform into Position and Rotation before each render hook.
type Container struct {
	Label    string
	Position vecmath.Vector
	Rotation vecmath.Quaternion
	Meshes   []*Mesh
	attached bool
}

func NewContainer(label string) *Container {
	return &Container{Label: label, Rotation: vecmath.Identity()}
}

// Add appends a mesh and returns it so the owner can animate it later.
func (c *Container) Add(m Mesh) *Mesh {
	if m.Rotation.Len() == 0 {
		m.Rotation = vecmath.Identity()
	}
	mp := &m
	c.Meshes = append(c.Meshes, mp)
	return mp
}

// Mesh returns the first mesh called name, or nil.
func (c *Container) Mesh(name string) *Mesh {
	for _, m := range c.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (c *Container) Attached() bool { return c.attached }
