package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/difficulty"
)

func newTestEngine(t *testing.T, src string) *Engine {
	t.Helper()
	root := t.TempDir()
	if src != "" {
		dir := filepath.Join(root, "difficulty")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sanity.lua"), []byte(src), 0o644))
	}
	e, err := NewEngine(root, 4, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNoScriptUsesBuiltin(t *testing.T) {
	e := newTestEngine(t, "")
	require.False(t, e.HasDifficultyOverride())
	require.Equal(t, difficulty.Builtin{MaxAntagonists: 4}.ForInsanity(1.5), e.ForInsanity(1.5))
}

func TestOverrideIsClamped(t *testing.T) {
	e := newTestEngine(t, `
function difficulty_settings(x)
  return { antagonists = x * 100, wall_speed = -3 }
end`)
	require.True(t, e.HasDifficultyOverride())

	s := e.ForInsanity(2.5)
	require.Equal(t, 4, s.Antagonists)
	require.Zero(t, s.WallSpeed)
	require.Equal(t, 1.25, s.SpeedMultiplier, "missing fields keep the built-in value")
	require.Equal(t, 1.0, s.FloorSpeed)
}

func TestScriptSeesMaxAntagonists(t *testing.T) {
	e := newTestEngine(t, `
function difficulty_settings(x)
  return { antagonists = MAX_ANTAGONISTS - 1 }
end`)
	require.Equal(t, 3, e.ForInsanity(0).Antagonists)
}

func TestRuntimeErrorFallsBack(t *testing.T) {
	e := newTestEngine(t, `
function difficulty_settings(x)
  error("boom")
end`)
	require.Equal(t, difficulty.Builtin{MaxAntagonists: 4}.ForInsanity(3.2), e.ForInsanity(3.2))
	require.Equal(t, 1, e.Failures())
}

func TestNonTableFallsBack(t *testing.T) {
	e := newTestEngine(t, `function difficulty_settings(x) return 7 end`)
	require.Equal(t, difficulty.Builtin{MaxAntagonists: 4}.ForInsanity(1), e.ForInsanity(1))
	require.Equal(t, 1, e.Failures())
}

func TestSyntaxErrorFailsLoad(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "difficulty")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("function ("), 0o644))
	_, err := NewEngine(root, 4, zap.NewNop())
	require.Error(t, err)
}
