package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/core/ecs"
)

// AddEntity makes e live and registers it under id when id is non-empty. An
// id that is already taken is reassigned to e. Init hooks run in a fixed
// order: graphics, physics, container attach, onAdd.
func (w *World) AddEntity(e *Entity, id string) {
	if e.world != nil {
		w.log.Warn("entity added twice",
			zap.String("kind", e.kind.String()),
			zap.Stringer("handle", e.handle))
		return
	}

	e.handle = w.handles.CreateEntity()
	w.entities.Set(e.handle, e)
	w.tags.Set(e.handle, &e.tags)
	if id != "" {
		if prev, taken := w.ids[id]; taken && prev != e {
			w.log.Warn("entity id reassigned",
				zap.String("id", id),
				zap.String("previous", prev.kind.String()),
				zap.String("kind", e.kind.String()))
			prev.id = ""
		}
		w.ids[id] = e
		e.id = id
	}
	e.world = w

	w.guard(e, "init_graphics", e.initGraphics)
	w.guard(e, "init_physics", e.initPhysics)
	w.scene.Attach(e.container)
	w.guard(e, "on_add", e.onAdd)
}

// RemoveEntity takes e out of the live set in one step, drops its id,
// detaches its container, releases its colliders and runs onRemove. The
// rigid body is left allocated. Removing a dead entity is a no-op.
func (w *World) RemoveEntity(e *Entity) {
	if e == nil || e.removed || e.world != w {
		return
	}
	e.removed = true
	w.handles.Release(e.handle)
	if e.id != "" && w.ids[e.id] == e {
		delete(w.ids, e.id)
	}
	w.scene.Detach(e.container)
	e.releaseColliders()
	w.guard(e, "on_remove", e.onRemove)
}

// FindByID returns the live entity registered under id.
func (w *World) FindByID(id string) (*Entity, error) {
	e, ok := w.ids[id]
	if !ok {
		return nil, fmt.Errorf("find %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// RequireEntityByID is FindByID for singletons that must exist once the world
// is bootstrapped. It panics when id is missing.
func (w *World) RequireEntityByID(id string) *Entity {
	e, err := w.FindByID(id)
	if err != nil {
		panic(err)
	}
	return e
}

// FindByTag lists the live entities carrying tag, in handle order.
func (w *World) FindByTag(tag string) []*Entity {
	var out []*Entity
	ecs.Each2(w.entities, w.tags, func(_ ecs.EntityID, e *Entity, tags *TagSet) {
		if _, ok := (*tags)[tag]; ok {
			out = append(out, e)
		}
	})
	return out
}

// Entities lists every live entity in handle order.
func (w *World) Entities() []*Entity { return w.snapshot() }

// Count reports how many live entities are of kind k.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.snapshot() {
		if e.kind == k {
			n++
		}
	}
	return n
}
