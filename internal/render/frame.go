package render

import "github.com/lightsout/lightsout/internal/vecmath"

// Node is one visible mesh in world space.
type Node struct {
	Owner    string
	Mesh     string
	Position vecmath.Vector
	Rotation vecmath.Quaternion
	Size     vecmath.Vector
	Color    uint32
}

// Frame is an immutable snapshot of the scene for one render tick.
type Frame struct {
	Index      uint64
	Background uint32
	Ambient    Light
	Camera     Camera
	Scroll     Scroll
	Nodes      []Node
}

// Sink receives one frame per render tick.
type Sink interface {
	Submit(Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame)

func (f SinkFunc) Submit(fr Frame) { f(fr) }

// Discard drops every frame.
var Discard Sink = SinkFunc(func(Frame) {})

// Latest keeps the most recent frame, for displays that draw on their own
// schedule and for tests.
type Latest struct {
	frame     Frame
	submitted uint64
}

func (l *Latest) Submit(f Frame) {
	l.frame = f
	l.submitted++
}

func (l *Latest) Frame() Frame      { return l.frame }
func (l *Latest) Submitted() uint64 { return l.submitted }
