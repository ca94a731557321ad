// Package difficulty maps the player's insanity to the settings that scale
// the game: antagonist population, their speed, and environment scrolling.
package difficulty

import "math"

const (
	// DefaultMaxAntagonists caps the population when no other cap is configured.
	DefaultMaxAntagonists = 6
	// MaxInsanity bounds the input; anything larger maps like MaxInsanity.
	MaxInsanity = 20.0
	// MaxScrollSpeed bounds every surface scroll speed.
	MaxScrollSpeed = 4.0
)

// Settings is the difficulty derived from one insanity value.
type Settings struct {
	Antagonists     int
	SpeedMultiplier float64
	WallSpeed       float64
	FloorSpeed      float64
	CeilingSpeed    float64
}

// Mapper turns insanity into settings.
type Mapper interface {
	ForInsanity(insanity float64) Settings
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(float64) Settings

func (f MapperFunc) ForInsanity(x float64) Settings { return f(x) }

// Builtin is the standard formula with a configurable population cap.
type Builtin struct {
	MaxAntagonists int
}

func (b Builtin) ForInsanity(x float64) Settings {
	x = Sanitize(x)
	s := Settings{
		Antagonists:     int(math.Round((x - 0.3) * 3)),
		SpeedMultiplier: 0.5 * x,
		WallSpeed:       step(x, 1),
		FloorSpeed:      step(x, 2),
		CeilingSpeed:    step(x, 3),
	}
	return s.Clamp(b.MaxAntagonists)
}

// ForInsanity applies the standard formula with DefaultMaxAntagonists.
func ForInsanity(x float64) Settings {
	return Builtin{MaxAntagonists: DefaultMaxAntagonists}.ForInsanity(x)
}

// Sanitize maps NaN and negatives to 0 and caps at MaxInsanity.
func Sanitize(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return math.Min(x, MaxInsanity)
}

func step(x, threshold float64) float64 {
	if x > threshold {
		return 1
	}
	return 0
}

// Clamp forces every field into its legal range. A negative cap counts as 0.
func (s Settings) Clamp(maxAntagonists int) Settings {
	if maxAntagonists < 0 {
		maxAntagonists = 0
	}
	s.Antagonists = min(max(s.Antagonists, 0), maxAntagonists)
	s.SpeedMultiplier = clampFloat(s.SpeedMultiplier, 0, 0.5*MaxInsanity)
	s.WallSpeed = clampFloat(s.WallSpeed, 0, MaxScrollSpeed)
	s.FloorSpeed = clampFloat(s.FloorSpeed, 0, MaxScrollSpeed)
	s.CeilingSpeed = clampFloat(s.CeilingSpeed, 0, MaxScrollSpeed)
	return s
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
