package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lightsout.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
seed = 42
tick_rate = "20ms"

[world]
generation_radius = 3
retention_radius = 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.Game.Seed)
	require.Equal(t, 20*time.Millisecond, cfg.Game.TickRate)
	require.Equal(t, 3, cfg.World.GenerationRadius)
	require.Equal(t, 5, cfg.World.RetentionRadius)
	require.Equal(t, 10.0, cfg.World.RoomSize, "untouched keys keep defaults")
	require.NotZero(t, cfg.Game.StartTime)
}

func TestRetentionMustCoverGeneration(t *testing.T) {
	path := writeConfig(t, `
[world]
generation_radius = 8
retention_radius = 4
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "retention_radius")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.Lighting.MinInterval = 100
	cfg.Lighting.MaxInterval = 10
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.ErrorContains(t, err, "min_interval")
	require.ErrorContains(t, err, "logging.format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	_, err := Load(writeConfig(t, "[world\n"))
	require.ErrorContains(t, err, "parse config")
}
