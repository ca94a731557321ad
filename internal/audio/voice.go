package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lightsout/lightsout/internal/data"
)

// voice synthesizes one catalogue sound: an oscillator with an exponential
// fade. A looping voice never ends on its own.
type voice struct {
	wave    string
	freq    float64
	decay   float64 // per second
	rate    beep.SampleRate
	total   int // samples, ignored when looping
	loop    bool
	pos     int
	phase   float64
	stopped bool
	rng     *rand.Rand
}

func newVoice(s *data.Sound, rate beep.SampleRate, rng *rand.Rand) *voice {
	return &voice{
		wave:  s.Wave,
		freq:  s.Frequency,
		decay: s.Decay,
		rate:  rate,
		total: rate.N(s.Duration()),
		loop:  s.Loop,
		rng:   rng,
	}
}

func (v *voice) done() bool {
	return v.stopped || (!v.loop && v.pos >= v.total)
}

// stop ends the voice at the next buffer.
func (v *voice) stop() { v.stopped = true }

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.done() {
			return i, i > 0
		}

		var val float64
		switch v.wave {
		case data.WaveSquare:
			if v.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case data.WaveNoise:
			val = v.rng.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * v.phase)
		}
		if !v.loop && v.decay > 0 {
			val *= math.Exp(-v.decay * float64(v.pos) / float64(v.rate))
		}

		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// newVolume wraps s at a linear gain. Zero or less is silent, since the
// effect works in log space.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	fx := &effects.Volume{Streamer: s, Base: 2}
	setVolume(fx, vol)
	return fx
}

func setVolume(fx *effects.Volume, vol float64) {
	if vol <= 0 {
		fx.Volume, fx.Silent = 0, true
		return
	}
	fx.Volume, fx.Silent = math.Log2(vol), false
}
