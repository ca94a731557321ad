package render

import "github.com/lightsout/lightsout/internal/vecmath"

// Light is the scene's ambient light.
type Light struct {
	Color     uint32
	Intensity float64
}

// Camera is the viewpoint submitted with every frame.
type Camera struct {
	Eye   vecmath.Vector
	Yaw   vecmath.Quaternion
	Pitch float64
}

// Scroll holds texture offsets for the environment surfaces.
type Scroll struct {
	Wall, Floor, Ceiling float64
}

// Scene is the render graph: attached containers plus global lighting.
type Scene struct {
	Background uint32
	Ambient    Light
	Camera     Camera
	Scroll     Scroll
	containers []*Container
}

func NewScene() *Scene {
	return &Scene{
		containers: make([]*Container, 0, 512),
		Camera:     Camera{Yaw: vecmath.Identity()},
	}
}

// Attach adds c to the graph. Attaching twice is a no-op.
func (s *Scene) Attach(c *Container) {
	if c.attached {
		return
	}
	c.attached = true
	s.containers = append(s.containers, c)
}

// Detach removes c from the graph. Detaching an unattached container is a no-op.
func (s *Scene) Detach(c *Container) {
	if !c.attached {
		return
	}
	c.attached = false
	for i, o := range s.containers {
		if o == c {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return
		}
	}
}

func (s *Scene) Len() int { return len(s.containers) }

// Snapshot flattens the graph into a Frame with meshes in world space.
func (s *Scene) Snapshot(index uint64) Frame {
	f := Frame{
		Index:      index,
		Background: s.Background,
		Ambient:    s.Ambient,
		Camera:     s.Camera,
		Scroll:     s.Scroll,
		Nodes:      make([]Node, 0, len(s.containers)*4),
	}
	for _, c := range s.containers {
		for _, m := range c.Meshes {
			if m.Hidden {
				continue
			}
			f.Nodes = append(f.Nodes, Node{
				Owner:    c.Label,
				Mesh:     m.Name,
				Position: c.Position.Add(c.Rotation.Apply(m.Offset)),
				Rotation: c.Rotation.Multiply(m.Rotation),
				Size:     m.Size,
				Color:    m.Color,
			})
		}
	}
	return f
}
