// Package audio plays the effect sink's sounds through the system speaker.
// Every sound is synthesized from its catalogue entry; there are no assets.
package audio

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/data"
	fx "github.com/lightsout/lightsout/internal/effects"
)

// fallback is played for names missing from the catalogue.
var fallback = data.Sound{Wave: data.WaveSine, Frequency: 440, DurationMs: 120, Decay: 8}

// Engine is an effects.Sink that mixes one-shot voices and the ambient hum.
// HUD requests are ignored; the display handles those.
type Engine struct {
	rate    beep.SampleRate
	master  float64
	sounds  *data.SoundTable
	log     *zap.Logger
	lock    sync.Locker // guards everything the speaker goroutine reads
	mixer   *beep.Mixer
	playing map[string][]*voice
	hum     *effects.Volume
	rng     *rand.Rand
	device  bool
}

var _ fx.Sink = (*Engine)(nil)

// speakerLock serialises with the speaker's callback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewEngine opens the speaker and starts the mixer.
func NewEngine(cfg config.AudioConfig, sounds *data.SoundTable, log *zap.Logger) (*Engine, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(cfg.BufferSize)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	e := newEngine(rate, cfg.MasterVolume, sounds, log, speakerLock{})
	e.device = true
	speaker.Play(e.mixer)
	log.Info("audio ready",
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Duration("buffer", cfg.BufferSize),
		zap.Int("sounds", sounds.Count()))
	return e, nil
}

func newEngine(rate beep.SampleRate, master float64, sounds *data.SoundTable, log *zap.Logger, lock sync.Locker) *Engine {
	e := &Engine{
		rate:    rate,
		master:  master,
		sounds:  sounds,
		log:     log,
		lock:    lock,
		mixer:   &beep.Mixer{},
		playing: make(map[string][]*voice),
		rng:     rand.New(rand.NewSource(1)),
	}
	if hum := sounds.Get(fx.Hum); hum != nil {
		v := newVoice(hum, rate, e.rng)
		v.loop = true
		e.hum = newVolume(v, 0)
		e.mixer.Add(e.hum)
	}
	return e
}

func (e *Engine) PlaySound(name string, volume float64) {
	s := e.sounds.Get(name)
	if s == nil {
		e.log.Debug("sound not in catalogue", zap.String("sound", name))
		s = &fallback
	}
	v := newVoice(s, e.rate, e.rng)

	e.lock.Lock()
	defer e.lock.Unlock()
	live := e.playing[name][:0]
	for _, p := range e.playing[name] {
		if !p.done() {
			live = append(live, p)
		}
	}
	e.playing[name] = append(live, v)
	e.mixer.Add(newVolume(v, volume*e.master))
}

// StopSound ends every playing instance of name.
func (e *Engine) StopSound(name string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for _, v := range e.playing[name] {
		v.stop()
	}
	delete(e.playing, name)
}

// SetAmbientVolume sets the hum level. Zero silences it.
func (e *Engine) SetAmbientVolume(volume float64) {
	if e.hum == nil {
		return
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	setVolume(e.hum, volume*e.master)
}

func (e *Engine) SetFlashlightLevel(int)    {}
func (e *Engine) SetFlashlightVisible(bool) {}
func (e *Engine) ShowPickupNote(bool)       {}

// Voices reports how many streamers the mixer is running, hum included.
func (e *Engine) Voices() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.mixer.Len()
}

// Close silences everything and releases the speaker.
func (e *Engine) Close() {
	e.lock.Lock()
	e.mixer.Clear()
	e.lock.Unlock()
	if e.device {
		speaker.Close()
	}
}
