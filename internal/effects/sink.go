// Package effects carries the one-way audio and HUD notifications entities
// send out. Nothing flows back into the simulation.
package effects

import "go.uber.org/zap"

// Sound names.
const (
	FootStep   = "FootStep"
	FlashLight = "FlashLight"
	Collect    = "Collect"
	Telephone  = "Telephone"
	Spotted    = "Spotted"
	Stinger    = "Stinger"
	Killed     = "Killed"
	Hum        = "Hum"
)

// Sink receives fire-and-forget effect requests.
type Sink interface {
	PlaySound(name string, volume float64)
	StopSound(name string)
	SetAmbientVolume(volume float64)
	// SetFlashlightLevel takes the battery indicator level, 0 to 4.
	SetFlashlightLevel(level int)
	SetFlashlightVisible(visible bool)
	ShowPickupNote(show bool)
}

type discard struct{}

func (discard) PlaySound(string, float64) {}
func (discard) StopSound(string)          {}
func (discard) SetAmbientVolume(float64)  {}
func (discard) SetFlashlightLevel(int)    {}
func (discard) SetFlashlightVisible(bool) {}
func (discard) ShowPickupNote(bool)       {}

// Discard ignores everything.
var Discard Sink = discard{}

// Multi fans every request out to each sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multi []Sink

func (m multi) PlaySound(name string, volume float64) {
	for _, s := range m {
		s.PlaySound(name, volume)
	}
}

func (m multi) StopSound(name string) {
	for _, s := range m {
		s.StopSound(name)
	}
}

func (m multi) SetAmbientVolume(volume float64) {
	for _, s := range m {
		s.SetAmbientVolume(volume)
	}
}

func (m multi) SetFlashlightLevel(level int) {
	for _, s := range m {
		s.SetFlashlightLevel(level)
	}
}

func (m multi) SetFlashlightVisible(visible bool) {
	for _, s := range m {
		s.SetFlashlightVisible(visible)
	}
}

func (m multi) ShowPickupNote(show bool) {
	for _, s := range m {
		s.ShowPickupNote(show)
	}
}

// Logged writes every request to log at debug level. Headless runs use it in
// place of the HUD.
func Logged(log *zap.Logger) Sink { return logged{log: log} }

type logged struct{ log *zap.Logger }

func (l logged) PlaySound(name string, volume float64) {
	l.log.Debug("play sound", zap.String("sound", name), zap.Float64("volume", volume))
}

func (l logged) StopSound(name string) {
	l.log.Debug("stop sound", zap.String("sound", name))
}

func (l logged) SetAmbientVolume(volume float64) {
	l.log.Debug("ambient volume", zap.Float64("volume", volume))
}

func (l logged) SetFlashlightLevel(level int) {
	l.log.Debug("flashlight level", zap.Int("level", level))
}

func (l logged) SetFlashlightVisible(visible bool) {
	l.log.Debug("flashlight ui", zap.Bool("visible", visible))
}

func (l logged) ShowPickupNote(show bool) {
	l.log.Debug("pickup note", zap.Bool("show", show))
}
