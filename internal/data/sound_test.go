package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const catalogue = `
sounds:
  - name: FootStep
    volume: 1
    wave: noise
    duration_ms: 60
    decay: 40
  - name: Collect
    volume: 0.5
    frequency: 880
    duration_ms: 200
  - name: Hum
    wave: square
    frequency: 60
    loop: true
`

func TestLoadSoundTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogue), 0o644))

	tbl, err := LoadSoundTable(path)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Count())
	require.Equal(t, 1.0, tbl.Volume("FootStep"))
	require.Equal(t, 0.5, tbl.Volume("Collect"))
	require.Equal(t, DefaultVolume, tbl.Volume("Hum"))
	require.Equal(t, DefaultVolume, tbl.Volume("Missing"))
	require.Equal(t, "sine", tbl.Get("Collect").Wave)
	require.Equal(t, 200*time.Millisecond, tbl.Get("Collect").Duration())
	require.True(t, tbl.Get("Hum").Loop)
	require.Nil(t, tbl.Get("Missing"))
}

func TestParseSoundTableRejectsBadEntries(t *testing.T) {
	_, err := ParseSoundTable([]byte("sounds:\n  - volume: 1\n"))
	require.Error(t, err)

	_, err = ParseSoundTable([]byte("sounds:\n  - name: A\n  - name: A\n"))
	require.ErrorContains(t, err, "duplicate")

	_, err = ParseSoundTable([]byte("sounds:\n  - name: A\n    wave: saw\n"))
	require.ErrorContains(t, err, "unknown wave")
}

func TestLoadSoundTableMissingFile(t *testing.T) {
	_, err := LoadSoundTable(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
