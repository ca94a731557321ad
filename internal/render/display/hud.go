package display

import "github.com/lightsout/lightsout/internal/effects"

// HUD keeps the on-screen indicators the effect sink drives. Sounds are
// someone else's job.
type HUD struct {
	level     int
	visible   bool
	note      bool
	lastSound string
}

var _ effects.Sink = (*HUD)(nil)

func NewHUD() *HUD { return &HUD{level: 4} }

func (h *HUD) PlaySound(name string, _ float64) { h.lastSound = name }
func (h *HUD) StopSound(string)                 {}
func (h *HUD) SetAmbientVolume(float64)         {}
func (h *HUD) SetFlashlightLevel(level int)     { h.level = level }
func (h *HUD) SetFlashlightVisible(v bool)      { h.visible = v }
func (h *HUD) ShowPickupNote(show bool)         { h.note = show }

// lines returns the text overlay, top to bottom.
func (h *HUD) lines() []string {
	var out []string
	if h.visible {
		bar := []byte("[    ]")
		for i := 0; i < h.level && i < 4; i++ {
			bar[1+i] = '#'
		}
		out = append(out, "flashlight "+string(bar)+"  F")
	}
	if h.note {
		out = append(out, "E  pick up battery")
	}
	if h.lastSound != "" {
		out = append(out, "("+h.lastSound+")")
	}
	return out
}
