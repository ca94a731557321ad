package render

import (
	"math"
	"testing"

	"github.com/lightsout/lightsout/internal/vecmath"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPlacesMeshesInWorldSpace(t *testing.T) {
	s := NewScene()
	c := NewContainer("room")
	c.Position = vecmath.Vec(10, 0, 0)
	c.Rotation = vecmath.FromAxisAngle(vecmath.Up, math.Pi/2)
	c.Add(Mesh{Name: "wall", Offset: vecmath.Vec(1, 0, 0), Size: vecmath.Vec(1, 1, 1)})
	c.Add(Mesh{Name: "hidden", Hidden: true})
	s.Attach(c)

	f := s.Snapshot(7)
	require.Equal(t, uint64(7), f.Index)
	require.Len(t, f.Nodes, 1)
	require.Equal(t, "room", f.Nodes[0].Owner)
	require.True(t, f.Nodes[0].Position.ApproxEqual(vecmath.Vec(10, 0, -1), 1e-9), "got %s", f.Nodes[0].Position)
}

func TestAttachDetachIdempotent(t *testing.T) {
	s := NewScene()
	c := NewContainer("x")
	s.Attach(c)
	s.Attach(c)
	require.Equal(t, 1, s.Len())
	require.True(t, c.Attached())

	s.Detach(c)
	s.Detach(c)
	require.Zero(t, s.Len())
	require.False(t, c.Attached())
}

func TestLatestSink(t *testing.T) {
	var l Latest
	var sink Sink = &l
	sink.Submit(Frame{Index: 1})
	sink.Submit(Frame{Index: 2})
	require.Equal(t, uint64(2), l.Submitted())
	require.Equal(t, uint64(2), l.Frame().Index)
}
