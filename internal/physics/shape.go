package physics

import "github.com/lightsout/lightsout/internal/vecmath"

// Shape is a collider geometry. Every shape is approximated by its
// axis-aligned bounding box for contacts and ray casts.
type Shape interface {
	HalfExtents() vecmath.Vector
}

// Cuboid is a box given by its half extents.
type Cuboid struct {
	Half vecmath.Vector
}

func NewCuboid(hx, hy, hz float64) Cuboid {
	return Cuboid{Half: vecmath.Vec(hx, hy, hz)}
}

func (c Cuboid) HalfExtents() vecmath.Vector { return c.Half }

// Capsule is a Y-aligned capsule: a segment of half length HalfHeight swept
// by Radius.
type Capsule struct {
	HalfHeight float64
	Radius     float64
}

func NewCapsule(halfHeight, radius float64) Capsule {
	return Capsule{HalfHeight: halfHeight, Radius: radius}
}

func (c Capsule) HalfExtents() vecmath.Vector {
	return vecmath.Vec(c.Radius, c.HalfHeight+c.Radius, c.Radius)
}

// aabb is an axis-aligned box in world space.
type aabb struct {
	min, max vecmath.Vector
}

func boxAround(center, half vecmath.Vector) aabb {
	return aabb{min: center.Sub(half), max: center.Add(half)}
}

func (a aabb) overlaps(b aabb) bool {
	for i := 0; i < 3; i++ {
		if a.max[i] <= b.min[i] || b.max[i] <= a.min[i] {
			return false
		}
	}
	return true
}

func (a aabb) center() vecmath.Vector {
	return a.min.Add(a.max).Scale(0.5)
}
