package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lightsout/lightsout/internal/input"
)

var keyBindings = map[string]ebiten.Key{
	input.KeyFlashlight: ebiten.KeyF,
	input.KeyUse:        ebiten.KeyE,
}

// Keyboard is the input.Device for the window. Poll runs once per Update,
// before the simulation tick reads it.
type Keyboard struct {
	capture bool
	primed  bool
	lastX   int
	lastY   int
	dx, dy  float64
	fresh   map[string]bool
}

var _ input.Device = (*Keyboard)(nil)

func NewKeyboard(capture bool) *Keyboard {
	return &Keyboard{capture: capture, fresh: make(map[string]bool)}
}

// Poll samples edge-triggered keys and accumulates mouse motion.
func (k *Keyboard) Poll() {
	if k.capture && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		k.primed = false
	}

	x, y := ebiten.CursorPosition()
	if k.primed {
		k.dx += float64(x - k.lastX)
		k.dy += float64(y - k.lastY)
	}
	k.lastX, k.lastY, k.primed = x, y, true

	for name, key := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			k.fresh[name] = true
		}
	}
}

func (k *Keyboard) Axis(name string) float64 {
	switch name {
	case input.AxisHorizontal:
		return pair(ebiten.KeyD, ebiten.KeyArrowRight) - pair(ebiten.KeyA, ebiten.KeyArrowLeft)
	case input.AxisVertical:
		return pair(ebiten.KeyW, ebiten.KeyArrowUp) - pair(ebiten.KeyS, ebiten.KeyArrowDown)
	}
	return 0
}

func pair(a, b ebiten.Key) float64 {
	if ebiten.IsKeyPressed(a) || ebiten.IsKeyPressed(b) {
		return 1
	}
	return 0
}

func (k *Keyboard) IsKeyDown(key string) bool {
	b, ok := keyBindings[key]
	return ok && ebiten.IsKeyPressed(b)
}

func (k *Keyboard) IsKeyNewlyPressed(key string) bool {
	if k.fresh[key] {
		delete(k.fresh, key)
		return true
	}
	return false
}

func (k *Keyboard) FlushMouseDelta() (float64, float64) {
	dx, dy := k.dx, k.dy
	k.dx, k.dy = 0, 0
	return dx, dy
}
