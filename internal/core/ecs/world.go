package ecs

// World owns handle allocation and the stores keyed by those handles.
// Release detaches a handle from every store immediately, but the handle's
// slot is only recycled when FlushDestroyQueue runs at the end of the tick, so
// a handle released mid-tick can never be reissued to a different entity
// within that same tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Release removes id's data from every store and queues the slot for reuse.
func (w *World) Release(id EntityID) {
	w.registry.RemoveAll(id)
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending reports how many released handles are waiting to be recycled.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue recycles every released handle.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		w.pool.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
