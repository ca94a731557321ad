package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/core/event"
)

func TestLightsGracePeriod(t *testing.T) {
	h := newHarness(t)
	player, scene := h.boot()
	s := scene.Scene()
	require.Equal(t, LightsOn, s.Lights())
	require.Equal(t, h.cfg.Lighting.HumOnVolume, h.fx.AmbientVolume)

	h.ticks(10)
	_, ok := s.Deadline()
	require.False(t, ok, "nothing scheduled near spawn")

	player.Transform().SetPosition(player.Position().WithX(25))
	h.ticks(1)
	deadline, ok := s.Deadline()
	require.True(t, ok)
	require.Equal(t, uint64(11+120), deadline)
	require.True(t, s.LightsOn())
}

func TestLightsCycle(t *testing.T) {
	h := newHarness(t)
	_, scene := h.boot()
	s := scene.Scene()

	s.SetLights(false)
	require.Equal(t, LightsOff, s.Lights())
	require.Equal(t, h.cfg.Lighting.OffIntensity, h.w.RenderScene().Ambient.Intensity)
	require.Equal(t, h.cfg.Lighting.OffBackground, h.w.RenderScene().Background)
	require.Equal(t, h.cfg.Lighting.HumOffVolume, h.fx.AmbientVolume)
	require.True(t, h.fx.FlashlightVisible)

	deadline, ok := s.Deadline()
	require.True(t, ok)
	require.Equal(t, uint64(120), deadline)

	h.ticks(119)
	require.False(t, s.LightsOn())
	h.ticks(1)
	require.True(t, s.LightsOn())
	require.Equal(t, h.cfg.Lighting.OnIntensity, h.w.RenderScene().Ambient.Intensity)
	next, _ := s.Deadline()
	require.Equal(t, uint64(240), next)

	changes := drain[event.LightsChanged](h)
	require.Equal(t, []event.LightsChanged{{On: false, Tick: 0}, {On: true, Tick: 120}}, changes)
}

func TestLightsScheduleWithinInterval(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Lighting.MinInterval = 600
		c.Lighting.MaxInterval = 1800
	})
	_, scene := h.boot()
	s := scene.Scene()
	for i := 0; i < 50; i++ {
		s.SetLights(i%2 == 0)
		deadline, _ := s.Deadline()
		require.GreaterOrEqual(t, deadline, uint64(600))
		require.LessOrEqual(t, deadline, uint64(1800))
	}
}

func TestSceneScrollsWithDifficulty(t *testing.T) {
	h := newHarness(t)
	player, _ := h.boot()
	h.w.RenderFrame()
	require.Zero(t, h.w.RenderScene().Scroll.Wall)

	player.Player().SetInsanity(2.5)
	h.w.RenderFrame()
	sc := h.w.RenderScene().Scroll
	require.InDelta(t, 0.002, sc.Wall, 1e-12)
	require.InDelta(t, 0.002, sc.Floor, 1e-12)
	require.Zero(t, sc.Ceiling)
}
