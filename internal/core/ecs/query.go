package ecs

// Each2 visits, in slot order, every handle present in both stores. It walks
// the smaller store and probes the larger one.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for _, id := range sa.Snapshot() {
			b, ok := sb.data[id]
			if !ok {
				continue
			}
			fn(id, sa.data[id], b)
		}
		return
	}
	for _, id := range sb.Snapshot() {
		a, ok := sa.data[id]
		if !ok {
			continue
		}
		fn(id, a, sb.data[id])
	}
}
