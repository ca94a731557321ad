package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultVolume applies to sounds without a catalogue entry or volume.
const DefaultVolume = 0.1

// Oscillator shapes.
const (
	WaveSine   = "sine"
	WaveSquare = "square"
	WaveNoise  = "noise"
)

// Sound is one catalogue entry. Sounds are synthesized, so the entry carries
// the generator parameters instead of an asset path.
type Sound struct {
	Name       string  `yaml:"name"`
	Volume     float64 `yaml:"volume"`
	Wave       string  `yaml:"wave"` // sine, square, noise
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
	Decay      float64 `yaml:"decay"` // exponential fade rate per second
	Loop       bool    `yaml:"loop"`
}

func (s *Sound) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// SoundTable indexes the catalogue by name.
type SoundTable struct {
	byName map[string]*Sound
}

// Get returns a sound by name, or nil if not found.
func (t *SoundTable) Get(name string) *Sound {
	return t.byName[name]
}

// Volume returns the catalogue volume for name, falling back to DefaultVolume.
func (t *SoundTable) Volume(name string) float64 {
	if s := t.byName[name]; s != nil && s.Volume > 0 {
		return s.Volume
	}
	return DefaultVolume
}

// Count returns the number of sounds loaded.
func (t *SoundTable) Count() int {
	return len(t.byName)
}

// Names lists every catalogued sound.
func (t *SoundTable) Names() []string {
	out := make([]string, 0, len(t.byName))
	for n := range t.byName {
		out = append(out, n)
	}
	return out
}

type soundFile struct {
	Sounds []Sound `yaml:"sounds"`
}

// LoadSoundTable loads the sound catalogue from YAML.
func LoadSoundTable(path string) (*SoundTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sounds: read %s: %w", path, err)
	}
	return ParseSoundTable(raw)
}

// ParseSoundTable builds a table from YAML bytes.
func ParseSoundTable(raw []byte) (*SoundTable, error) {
	var f soundFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("sounds: parse: %w", err)
	}

	t := &SoundTable{byName: make(map[string]*Sound, len(f.Sounds))}
	for i := range f.Sounds {
		s := &f.Sounds[i]
		if s.Name == "" {
			return nil, fmt.Errorf("sounds: entry %d has no name", i)
		}
		if _, dup := t.byName[s.Name]; dup {
			return nil, fmt.Errorf("sounds: duplicate entry %q", s.Name)
		}
		switch s.Wave {
		case "":
			s.Wave = WaveSine
		case WaveSine, WaveSquare, WaveNoise:
		default:
			return nil, fmt.Errorf("sounds: %s: unknown wave %q", s.Name, s.Wave)
		}
		t.byName[s.Name] = s
	}
	return t, nil
}
