package effects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	s := Multi(a, nil, b, Logged(zap.NewNop()), Discard)

	s.PlaySound(Collect, 0.5)
	s.SetFlashlightLevel(3)
	s.SetFlashlightVisible(true)
	s.ShowPickupNote(true)
	s.StopSound(Telephone)
	s.SetAmbientVolume(0.2)

	for _, r := range []*Recorder{a, b} {
		require.Equal(t, []Played{{Name: Collect, Volume: 0.5}}, r.Played)
		require.Equal(t, 3, r.FlashlightLevel)
		require.True(t, r.FlashlightVisible)
		require.True(t, r.PickupNote)
		require.Equal(t, []string{Telephone}, r.Stopped)
		require.Equal(t, 0.2, r.AmbientVolume)
		require.Equal(t, 1, r.Count(Collect))
	}
}
