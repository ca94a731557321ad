package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/difficulty"
)

// Engine wraps a single gopher-lua VM holding the game's formula overrides.
// Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	fallback difficulty.Builtin
	failures int
}

var _ difficulty.Mapper = (*Engine)(nil)

// NewEngine creates a Lua engine and loads every script under scriptsDir/difficulty.
// maxAntagonists is handed to scripts and caps whatever they return.
func NewEngine(scriptsDir string, maxAntagonists int, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("MAX_ANTAGONISTS", lua.LNumber(maxAntagonists))

	e := &Engine{
		vm:       vm,
		log:      log,
		fallback: difficulty.Builtin{MaxAntagonists: maxAntagonists},
	}

	if err := e.loadDir(filepath.Join(scriptsDir, "difficulty")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load difficulty scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasDifficultyOverride reports whether a script defined difficulty_settings.
func (e *Engine) HasDifficultyOverride() bool {
	return e.vm.GetGlobal("difficulty_settings") != lua.LNil
}

// ForInsanity calls the Lua difficulty_settings function. Fields the script
// leaves out keep the built-in value; any failure falls back to the built-in
// formula. The result is always clamped.
func (e *Engine) ForInsanity(insanity float64) difficulty.Settings {
	base := e.fallback.ForInsanity(insanity)

	fn := e.vm.GetGlobal("difficulty_settings")
	if fn == lua.LNil {
		return base
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(difficulty.Sanitize(insanity))); err != nil {
		e.fail("lua difficulty_settings error", zap.Error(err))
		return base
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.fail("lua difficulty_settings returned non-table", zap.String("type", result.Type().String()))
		return base
	}

	s := difficulty.Settings{
		Antagonists:     int(numberOr(rt, "antagonists", float64(base.Antagonists))),
		SpeedMultiplier: numberOr(rt, "speed_multiplier", base.SpeedMultiplier),
		WallSpeed:       numberOr(rt, "wall_speed", base.WallSpeed),
		FloorSpeed:      numberOr(rt, "floor_speed", base.FloorSpeed),
		CeilingSpeed:    numberOr(rt, "ceiling_speed", base.CeilingSpeed),
	}
	return s.Clamp(e.fallback.MaxAntagonists)
}

// fail logs the first failure and then every 600th, so a broken script does
// not flood the log at tick rate.
func (e *Engine) fail(msg string, fields ...zap.Field) {
	if e.failures%600 == 0 {
		e.log.Error(msg, append(fields, zap.Int("failures", e.failures+1))...)
	}
	e.failures++
}

// Failures reports how many calls fell back to the built-in formula.
func (e *Engine) Failures() int { return e.failures }

func numberOr(t *lua.LTable, key string, def float64) float64 {
	v := t.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
