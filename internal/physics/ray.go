package physics

import (
	"math"

	"github.com/lightsout/lightsout/internal/vecmath"
)

// RayHit is the first collider a ray touches. Toi is measured in multiples
// of the ray direction.
type RayHit struct {
	Collider *Collider
	Toi      float64
}

// CastRay returns the nearest non-sensor collider hit by origin + t*dir for
// t in [0, maxToi], skipping colliders owned by any excluded body.
func (e *Engine) CastRay(origin, dir vecmath.Vector, maxToi float64, exclude ...*RigidBody) (RayHit, bool) {
	best := RayHit{Toi: math.Inf(1)}
	found := false
	e.eachRayHit(origin, dir, maxToi, exclude, func(c *Collider, t float64) {
		if t < best.Toi {
			best = RayHit{Collider: c, Toi: t}
			found = true
		}
	})
	return best, found
}

// CountRayHits reports how many colliders the ray crosses.
func (e *Engine) CountRayHits(origin, dir vecmath.Vector, maxToi float64, exclude ...*RigidBody) int {
	n := 0
	e.eachRayHit(origin, dir, maxToi, exclude, func(*Collider, float64) { n++ })
	return n
}

func (e *Engine) eachRayHit(origin, dir vecmath.Vector, maxToi float64, exclude []*RigidBody, fn func(*Collider, float64)) {
	end := origin.Add(dir.Scale(maxToi))
outer:
	for _, c := range e.colliders {
		if c.sensor {
			continue
		}
		for _, x := range exclude {
			if c.body == x {
				continue outer
			}
		}
		t, ok := segmentHitsBox(origin, end, c.bounds())
		if !ok {
			continue
		}
		fn(c, t*maxToi)
	}
}

// segmentHitsBox is the slab test for the segment a->b against box. It
// returns the entry parameter in [0,1].
func segmentHitsBox(a, b vecmath.Vector, box aabb) (float64, bool) {
	tMin, tMax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		d := b[i] - a[i]
		if math.Abs(d) < 1e-12 {
			if a[i] < box.min[i] || a[i] > box.max[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / d
		t1 := (box.min[i] - a[i]) * inv
		t2 := (box.max[i] - a[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
