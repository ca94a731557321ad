package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lightsout/lightsout/internal/effects"
)

func TestTelephoneRingsFiveTimes(t *testing.T) {
	h := newHarness(t)
	h.boot()
	phone := h.w.RequireEntityByID(IDTelephone).Telephone()
	require.GreaterOrEqual(t, phone.NextRing(), ringMinDelay)
	require.LessOrEqual(t, phone.NextRing(), ringMaxDelay)

	phone.nextRing = 0.001
	h.ticks(1)
	require.True(t, phone.Ringing())
	require.Equal(t, 1, phone.Rings())
	require.Equal(t, []effects.Played{{Name: effects.Telephone, Volume: ringVolume}}, h.fx.Played)

	h.ticks(200)
	require.Equal(t, 1, phone.Rings())
	h.ticks(15)
	require.Equal(t, 2, phone.Rings())

	for i := 0; i < 3; i++ {
		phone.nextRing = 0
		h.ticks(1)
	}
	require.False(t, phone.Ringing())
	require.Zero(t, phone.Rings())
	require.Equal(t, 5, h.fx.Count(effects.Telephone))
	require.GreaterOrEqual(t, phone.NextRing(), ringMinDelay)
}

func TestTelephoneSilencedByDarkness(t *testing.T) {
	h := newHarness(t)
	_, scene := h.boot()
	phone := h.w.RequireEntityByID(IDTelephone).Telephone()
	phone.nextRing = 0.001
	h.ticks(1)
	require.True(t, phone.Ringing())

	scene.Scene().SetLights(false)
	h.ticks(1)
	require.False(t, phone.Ringing())
	require.Zero(t, phone.Rings())
	require.Equal(t, []string{effects.Telephone}, h.fx.Stopped)

	// the countdown is frozen while dark
	before := phone.NextRing()
	h.ticks(30)
	require.Equal(t, before, phone.NextRing())
	require.Equal(t, 1, h.fx.Count(effects.Telephone))
}

func TestTelephoneRemovedWhileRinging(t *testing.T) {
	h := newHarness(t)
	h.boot()
	e := h.w.RequireEntityByID(IDTelephone)
	e.Telephone().nextRing = 0.001
	h.ticks(1)
	h.w.RemoveEntity(e)
	require.Equal(t, []string{effects.Telephone}, h.fx.Stopped)
}
