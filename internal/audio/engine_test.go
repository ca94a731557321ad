package audio

import (
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/data"
)

const testRate = beep.SampleRate(8000)

func testTable(t *testing.T) *data.SoundTable {
	t.Helper()
	table, err := data.ParseSoundTable([]byte(`
sounds:
  - name: Beep
    volume: 0.5
    wave: square
    frequency: 1000
    duration_ms: 10
  - name: Hum
    volume: 0.05
    frequency: 60
    loop: true
`))
	require.NoError(t, err)
	return table
}

func newTestEngine(t *testing.T) *Engine {
	return newEngine(testRate, 1, testTable(t), zap.NewNop(), &sync.Mutex{})
}

// pull streams n samples from s.
func pull(s beep.Streamer, n int) (got int, ok bool, buf [][2]float64) {
	buf = make([][2]float64, n)
	got, ok = s.Stream(buf)
	return got, ok, buf
}

func TestVoiceLength(t *testing.T) {
	s := &data.Sound{Wave: data.WaveSine, Frequency: 100, DurationMs: 10}
	v := newVoice(s, testRate, nil)

	n, ok, _ := pull(v, 50)
	require.Equal(t, 50, n)
	require.True(t, ok)
	n, ok, _ = pull(v, 50)
	require.Equal(t, 30, n, "10ms at 8kHz is 80 samples")
	require.True(t, ok)
	n, ok, _ = pull(v, 50)
	require.Zero(t, n)
	require.False(t, ok)
}

func TestVoiceDecay(t *testing.T) {
	s := &data.Sound{Wave: data.WaveSquare, Frequency: 1, DurationMs: 1000, Decay: 2}
	v := newVoice(s, testRate, nil)
	_, _, buf := pull(v, 8000)
	require.Equal(t, 1.0, buf[0][0])
	// just under half a period in, the square is still high
	require.InDelta(t, math.Exp(-1), buf[3999][0], 1e-3)
}

func TestVoiceStop(t *testing.T) {
	s := &data.Sound{Wave: data.WaveSine, Frequency: 60, Loop: true}
	v := newVoice(s, testRate, nil)
	n, ok, _ := pull(v, 100)
	require.Equal(t, 100, n)
	require.True(t, ok, "a loop does not end")

	v.stop()
	require.True(t, v.done())
	n, ok, _ = pull(v, 100)
	require.Zero(t, n)
	require.False(t, ok)
}

func TestEnginePlayAndStop(t *testing.T) {
	e := newTestEngine(t)
	require.Equal(t, 1, e.Voices(), "hum is always mixed")

	e.PlaySound("Beep", 0.5)
	e.PlaySound("Beep", 0.5)
	e.PlaySound("Unknown", 0.1)
	require.Equal(t, 4, e.Voices())
	require.Len(t, e.playing["Beep"], 2)

	e.StopSound("Beep")
	require.Empty(t, e.playing["Beep"])

	// the mixer drops finished streamers as it streams
	pull(e.mixer, 10)
	require.Equal(t, 2, e.Voices())
	pull(e.mixer, 2000)
	require.Equal(t, 1, e.Voices())
}

func TestEngineAmbientVolume(t *testing.T) {
	e := newTestEngine(t)
	require.True(t, e.hum.Silent)

	e.SetAmbientVolume(0.5)
	require.False(t, e.hum.Silent)
	require.InDelta(t, -1, e.hum.Volume, 1e-12)

	e.SetAmbientVolume(0)
	require.True(t, e.hum.Silent)
}

func TestEngineWithoutHum(t *testing.T) {
	table, err := data.ParseSoundTable([]byte("sounds: []\n"))
	require.NoError(t, err)
	e := newEngine(testRate, 1, table, zap.NewNop(), &sync.Mutex{})
	e.SetAmbientVolume(1)
	require.Zero(t, e.Voices())
	e.Close()
}
