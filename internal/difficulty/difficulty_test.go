package difficulty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroInsanityIsCalm(t *testing.T) {
	s := ForInsanity(0)
	require.Equal(t, Settings{}, s)
}

func TestHugeInsanityIsFiniteAndCapped(t *testing.T) {
	for _, x := range []float64{1e6, 1e300, math.MaxFloat64, math.Inf(1)} {
		s := ForInsanity(x)
		require.GreaterOrEqual(t, s.Antagonists, 0)
		require.Equal(t, DefaultMaxAntagonists, s.Antagonists)
		require.False(t, math.IsInf(s.SpeedMultiplier, 0))
		require.Equal(t, ForInsanity(MaxInsanity), s)
	}
}

func TestDegenerateInputTreatedAsZero(t *testing.T) {
	require.Equal(t, ForInsanity(0), ForInsanity(-5))
	require.Equal(t, ForInsanity(0), ForInsanity(math.NaN()))
	require.Equal(t, ForInsanity(0), ForInsanity(math.Inf(-1)))
}

func TestThresholds(t *testing.T) {
	s := ForInsanity(1.0)
	require.Equal(t, 2, s.Antagonists)
	require.Equal(t, 0.5, s.SpeedMultiplier)
	require.Zero(t, s.WallSpeed)

	s = ForInsanity(2.5)
	require.Equal(t, 1.0, s.WallSpeed)
	require.Equal(t, 1.0, s.FloorSpeed)
	require.Zero(t, s.CeilingSpeed)

	require.Equal(t, 1.0, ForInsanity(3.01).CeilingSpeed)
	require.Equal(t, 0, ForInsanity(0.4).Antagonists)
	require.Equal(t, 1, ForInsanity(0.5).Antagonists)
}

func TestMonotonic(t *testing.T) {
	prev := ForInsanity(0)
	for x := 0.0; x <= MaxInsanity+5; x += 0.01 {
		s := ForInsanity(x)
		require.GreaterOrEqual(t, s.Antagonists, prev.Antagonists, "x=%v", x)
		require.GreaterOrEqual(t, s.SpeedMultiplier, prev.SpeedMultiplier, "x=%v", x)
		require.GreaterOrEqual(t, s.WallSpeed, prev.WallSpeed)
		require.GreaterOrEqual(t, s.FloorSpeed, prev.FloorSpeed)
		require.GreaterOrEqual(t, s.CeilingSpeed, prev.CeilingSpeed)
		prev = s
	}
}

func TestClamp(t *testing.T) {
	s := Settings{
		Antagonists:     99,
		SpeedMultiplier: math.NaN(),
		WallSpeed:       -1,
		FloorSpeed:      100,
		CeilingSpeed:    0.5,
	}.Clamp(3)
	require.Equal(t, Settings{Antagonists: 3, FloorSpeed: MaxScrollSpeed, CeilingSpeed: 0.5}, s)
	require.Zero(t, Settings{Antagonists: 2}.Clamp(-1).Antagonists)
}

func TestBuiltinCap(t *testing.T) {
	require.Equal(t, 2, Builtin{MaxAntagonists: 2}.ForInsanity(10).Antagonists)
	var m Mapper = MapperFunc(func(float64) Settings { return Settings{Antagonists: 1} })
	require.Equal(t, 1, m.ForInsanity(0).Antagonists)
}
