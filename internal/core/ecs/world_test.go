package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tag struct{ name string }

func TestZeroHandleNeverAlive(t *testing.T) {
	w := NewWorld()
	require.False(t, w.Alive(0))
	id := w.CreateEntity()
	require.False(t, id.IsZero())
	require.True(t, w.Alive(id))
}

func TestReleaseDefersRecycling(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](4)
	w.Registry().Register(tags)

	a := w.CreateEntity()
	tags.Set(a, &tag{name: "a"})
	w.Release(a)

	require.False(t, tags.Has(a))
	require.True(t, w.Alive(a), "slot stays reserved until flush")
	require.Equal(t, 1, w.Pending())

	b := w.CreateEntity()
	require.NotEqual(t, a.Index(), b.Index())

	w.FlushDestroyQueue()
	require.False(t, w.Alive(a))
	require.Zero(t, w.Pending())

	c := w.CreateEntity()
	require.Equal(t, a.Index(), c.Index())
	require.Equal(t, a.Generation()+1, c.Generation())
	require.False(t, w.Alive(a))
}

func TestEach2SlotOrder(t *testing.T) {
	w := NewWorld()
	names := NewStore[tag](4)
	flags := NewStore[bool](4)
	var ids []EntityID
	for i := 0; i < 5; i++ {
		id := w.CreateEntity()
		ids = append(ids, id)
		names.Set(id, &tag{})
		if i%2 == 0 {
			v := true
			flags.Set(id, &v)
		}
	}
	var seen []EntityID
	Each2(names, flags, func(id EntityID, _ *tag, _ *bool) { seen = append(seen, id) })
	require.Equal(t, []EntityID{ids[0], ids[2], ids[4]}, seen)
}
