package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lightsout/lightsout/internal/audio"
	"github.com/lightsout/lightsout/internal/config"
	"github.com/lightsout/lightsout/internal/core/event"
	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/data"
	"github.com/lightsout/lightsout/internal/difficulty"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/persist"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/render/display"
	"github.com/lightsout/lightsout/internal/scripting"
	"github.com/lightsout/lightsout/internal/system"
	"github.com/lightsout/lightsout/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(runID string, seed int64) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m               LIGHTS  OUT                 \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mrun:\033[0m %s \033[90m(seed: %d)\033[0m\n\n", runID, seed)
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label, value string) {
	dotsLen := max(42-len(label)-len(value), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), value)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main game logic ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/lightsout.toml"
	if p := os.Getenv("LIGHTSOUT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = cfg.Game.StartTime
	}
	runID := uuid.NewString()
	printBanner(runID, seed)

	// 3. Data tables and scripts
	printSection("Data")
	sounds, err := data.LoadSoundTable(cfg.Audio.SoundsPath)
	if err != nil {
		return fmt.Errorf("load sounds: %w", err)
	}
	printStat("sounds", fmt.Sprint(sounds.Count()))

	var mapper difficulty.Mapper = difficulty.Builtin{MaxAntagonists: cfg.Antagonist.MaxCount}
	if cfg.Scripting.Enabled {
		lua, err := scripting.NewEngine(cfg.Scripting.Dir, cfg.Antagonist.MaxCount, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer lua.Close()
		if lua.HasDifficultyOverride() {
			mapper = lua
			printOK("difficulty script loaded")
		} else {
			printOK("builtin difficulty formula")
		}
	}
	fmt.Println()

	// 4. Optional run journal
	var recorder system.RunRecorder
	if cfg.Database.Enabled {
		printSection("Database")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		version, err := persist.RunMigrations(ctx, db.Pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		printOK(fmt.Sprintf("schema at version %d", version))

		repo := persist.NewRunRepo(db)
		recorder = repo
		printRecentRuns(ctx, repo, cfg, log)
		fmt.Println()
	}

	// 5. Effects and input
	sinks := []effects.Sink{effects.Logged(log)}
	if cfg.Audio.Enabled && !cfg.Game.Headless {
		eng, err := audio.NewEngine(cfg.Audio, sounds, log)
		if err != nil {
			log.Warn("audio unavailable, running silent", zap.Error(err))
		} else {
			defer eng.Close()
			sinks = append(sinks, eng)
		}
	}

	var (
		hud   *display.HUD
		keys  *display.Keyboard
		pilot *autopilot
		dev   input.Device
	)
	if cfg.Game.Headless {
		pilot = newAutopilot(seed)
		dev = pilot.device
	} else {
		hud = display.NewHUD()
		keys = display.NewKeyboard(cfg.Window.CaptureMouse)
		sinks = append(sinks, hud)
		dev = keys
	}

	// 6. World and systems
	bus := event.NewBus()
	frames := &render.Latest{}
	w := world.New(world.Deps{
		Config:     cfg,
		Log:        log,
		Effects:    effects.Multi(sinks...),
		Input:      dev,
		Sink:       frames,
		Difficulty: mapper,
		Events:     bus,
		Sounds:     sounds,
		Seed:       seed,
		RunID:      runID,
	})
	player, _ := world.Bootstrap(w)

	runner := coresys.NewRunner()
	journal := system.NewJournalSystem(bus, recorder, log)
	stats := system.NewStatsSystem(w, bus)
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewSimulationSystem(w))
	runner.Register(stats)
	runner.Register(journal)
	runner.Register(system.NewCleanupSystem(w))

	// 7. Run
	printSection("Running")
	printReady(fmt.Sprintf("tick %s", cfg.Game.TickRate))
	if cfg.Game.Headless {
		printReady(fmt.Sprintf("headless, frame %s", cfg.Game.FrameRate))
		fmt.Println()
		err = runHeadless(cfg, w, runner, pilot, player, log)
	} else {
		printReady(fmt.Sprintf("window %dx%d", cfg.Window.Width, cfg.Window.Height))
		fmt.Println()
		err = display.New(w, runner, keys, hud, frames, cfg.Window, cfg.Game.TickRate).Run()
	}

	journal.Flush(context.Background())
	printSummary(player.Player(), stats.Stats(), w.CurrentTick(), cfg.Game.TickRate)
	return err
}

// runHeadless drives both clocks from tickers until the player dies, the tick
// limit is hit, or a shutdown signal arrives.
func runHeadless(cfg *config.Config, w *world.World, runner *coresys.Runner, pilot *autopilot, player *world.Entity, log *zap.Logger) error {
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()
	frameTicker := time.NewTicker(cfg.Game.FrameRate)
	defer frameTicker.Stop()

	p := player.Player()
	for {
		select {
		case <-ticker.C:
			pilot.steer(w.CurrentTick())
			runner.Tick(cfg.Game.TickRate)
			tick := w.CurrentTick()
			// one extra tick delivers the death to the journal
			if p.State() == world.Killed && tick > p.KillTick() {
				return nil
			}
			if cfg.Game.MaxTicks > 0 && tick >= cfg.Game.MaxTicks {
				log.Info("tick limit reached", zap.Uint64("tick", tick))
				return nil
			}
		case <-frameTicker.C:
			w.RenderFrame()
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func printRecentRuns(ctx context.Context, repo *persist.RunRepo, cfg *config.Config, log *zap.Logger) {
	runs, err := repo.Recent(ctx, cfg.Database.RecentRuns)
	if err != nil {
		log.Warn("recent runs unavailable", zap.Error(err))
		return
	}
	p := message.NewPrinter(language.English)
	for _, r := range runs {
		printStat(r.EndedAt.Format("2006-01-02 15:04"),
			p.Sprintf("%.1fm in %v", r.Distance, r.Survived(cfg.Game.TickRate).Round(time.Second)))
	}
	if best, ok, err := repo.Best(ctx); err == nil && ok {
		printStat("best", p.Sprintf("%.1fm", best.Distance))
	}
}

func printSummary(p *world.Player, st system.RunStats, ticks uint64, tick time.Duration) {
	out := message.NewPrinter(language.English)
	fmt.Println()
	printSection("Run over")
	printStat("ticks", out.Sprintf("%d", ticks))
	printStat("survived", (time.Duration(ticks) * tick).Round(time.Second).String())
	printStat("distance", out.Sprintf("%.1f", p.MaxDistance()))
	printStat("peak insanity", out.Sprintf("%.2f", p.MaxInsanity()))
	printStat("blackouts", out.Sprintf("%d", st.Blackouts))
	printStat("sightings", out.Sprintf("%d", st.Sightings))
	printStat("peak population", out.Sprintf("%d", st.PeakPopulation))
	if st.Faults > 0 {
		printStat("faults", out.Sprintf("%d", st.Faults))
	}
	printStat("state", p.State().String())
	fmt.Println()
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
