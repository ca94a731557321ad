package effects

// Played is one recorded PlaySound call.
type Played struct {
	Name   string
	Volume float64
}

// Recorder remembers every request. It also tracks the HUD state the
// requests imply.
type Recorder struct {
	Played            []Played
	Stopped           []string
	AmbientVolume     float64
	FlashlightLevel   int
	FlashlightVisible bool
	PickupNote        bool
	LevelUpdates      int
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) PlaySound(name string, volume float64) {
	r.Played = append(r.Played, Played{Name: name, Volume: volume})
}

func (r *Recorder) StopSound(name string) { r.Stopped = append(r.Stopped, name) }

func (r *Recorder) SetAmbientVolume(volume float64) { r.AmbientVolume = volume }

func (r *Recorder) SetFlashlightLevel(level int) {
	r.FlashlightLevel = level
	r.LevelUpdates++
}

func (r *Recorder) SetFlashlightVisible(visible bool) { r.FlashlightVisible = visible }

func (r *Recorder) ShowPickupNote(show bool) { r.PickupNote = show }

// Count reports how many times name was played.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, p := range r.Played {
		if p.Name == name {
			n++
		}
	}
	return n
}
