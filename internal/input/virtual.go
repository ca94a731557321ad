package input

// Virtual is a Device driven by code.
type Virtual struct {
	axes   map[string]float64
	down   map[string]bool
	fresh  map[string]bool
	dx, dy float64
}

var _ Device = (*Virtual)(nil)

func NewVirtual() *Virtual {
	return &Virtual{
		axes:  make(map[string]float64),
		down:  make(map[string]bool),
		fresh: make(map[string]bool),
	}
}

// SetAxis stores v clamped to [-1, 1].
func (v *Virtual) SetAxis(name string, value float64) {
	switch {
	case value > 1:
		value = 1
	case value < -1:
		value = -1
	}
	v.axes[name] = value
}

func (v *Virtual) Press(key string) {
	if !v.down[key] {
		v.fresh[key] = true
	}
	v.down[key] = true
}

func (v *Virtual) Release(key string) {
	delete(v.down, key)
	delete(v.fresh, key)
}

func (v *Virtual) MoveMouse(dx, dy float64) {
	v.dx += dx
	v.dy += dy
}

func (v *Virtual) Axis(name string) float64 { return v.axes[name] }

func (v *Virtual) IsKeyDown(key string) bool { return v.down[key] }

func (v *Virtual) IsKeyNewlyPressed(key string) bool {
	if v.fresh[key] {
		delete(v.fresh, key)
		return true
	}
	return false
}

func (v *Virtual) FlushMouseDelta() (float64, float64) {
	dx, dy := v.dx, v.dy
	v.dx, v.dy = 0, 0
	return dx, dy
}
