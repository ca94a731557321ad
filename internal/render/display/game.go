// Package display runs the world inside an ebiten window: Update is the
// simulation clock, Draw is the render clock, and the frame is drawn as a
// top-down map around the player.
package display

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lightsout/lightsout/internal/config"
	coresys "github.com/lightsout/lightsout/internal/core/system"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
	"github.com/lightsout/lightsout/internal/world"
)

type Game struct {
	world  *world.World
	runner *coresys.Runner
	keys   *Keyboard
	hud    *HUD
	frames *render.Latest
	cfg    config.WindowConfig
	tick   time.Duration
}

// New wires the window to an already bootstrapped world. frames must be the
// sink the world submits to.
func New(w *world.World, runner *coresys.Runner, keys *Keyboard, hud *HUD, frames *render.Latest, cfg config.WindowConfig, tick time.Duration) *Game {
	return &Game{world: w, runner: runner, keys: keys, hud: hud, frames: frames, cfg: cfg, tick: tick}
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(int(math.Round(float64(time.Second) / float64(g.tick))))
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.keys.Poll()
	g.runner.Tick(g.tick)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.RenderFrame()
	frame := g.frames.Frame()
	light := frame.Ambient.Intensity
	screen.Fill(shade(frame.Background, 1))

	cx, cy := float64(g.cfg.Width)/2, float64(g.cfg.Height)/2
	facing := frame.Camera.Yaw.Apply(vecmath.Vec(0, 0, -1)).Horizontal().Normalize()
	scale := g.cfg.MapScale
	eye := frame.Camera.Eye

	for _, n := range frame.Nodes {
		if n.Mesh == "ceiling" {
			continue
		}
		x, y := project(n.Position.Sub(eye), facing, scale)
		w := math.Max(n.Size.X()*scale, 1)
		h := math.Max(n.Size.Z()*scale, 1)
		k := math.Max(light, 0.15)
		if n.Mesh == "floor" {
			k *= 0.5
		}
		vector.FillRect(screen, float32(cx+x-w/2), float32(cy+y-h/2), float32(w), float32(h), shade(n.Color, k), false)
	}

	// player marker and view direction
	vector.FillCircle(screen, float32(cx), float32(cy), 4, shade(0xffffff, 1), true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-24), 2, shade(0xffffdd, 1), true)

	g.drawOverlay(screen)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	lines := g.hud.lines()
	if p, err := g.world.FindByID(world.IDPlayer); err == nil && p.Player() != nil {
		pl := p.Player()
		lines = append([]string{
			fmt.Sprintf("insanity %.2f  distance %.1f", pl.Insanity(), pl.DistanceFromSpawn()),
		}, lines...)
		if pl.State() == world.Killed {
			lines = append(lines, "", "YOU DIED  Esc to quit")
		}
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 8, 8+i*14)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
