package world

import (
	"math"

	"go.uber.org/zap"

	"github.com/lightsout/lightsout/internal/core/event"
	"github.com/lightsout/lightsout/internal/difficulty"
	"github.com/lightsout/lightsout/internal/effects"
	"github.com/lightsout/lightsout/internal/input"
	"github.com/lightsout/lightsout/internal/physics"
	"github.com/lightsout/lightsout/internal/render"
	"github.com/lightsout/lightsout/internal/vecmath"
)

// LifeState is the player's terminal-state machine.
type LifeState int

const (
	Alive LifeState = iota
	Killed
)

func (s LifeState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "KILLED"
}

// Player capsule and spawn geometry.
const (
	playerHalfHeight = 0.5
	playerRadius     = 0.5
	maxPitch         = math.Pi/2 - 0.01
)

// camForward is the look direction of an unrotated camera.
var camForward = vecmath.Vec(0, 0, -1)

type Player struct {
	e     *Entity
	state LifeState
	spawn vecmath.Vector
	pitch float64

	insanity    float64
	maxInsanity float64
	settings    difficulty.Settings

	flashlightOn bool
	battery      float64
	level        int // last indicator level pushed to the HUD

	lastPos     vecmath.Vector
	stride      float64
	maxDistance float64

	targeted *Entity // battery under the crosshair
	killTick uint64
}

func NewPlayer(spawn vecmath.Vector) *Entity {
	e := newEntity(KindPlayer, NewBodyTransform(spawn))
	e.player = &Player{
		e:       e,
		spawn:   spawn,
		battery: 1,
		level:   -1,
		lastPos: spawn,
	}
	return e
}

func (p *Player) State() LifeState              { return p.state }
func (p *Player) Insanity() float64             { return p.insanity }
func (p *Player) MaxInsanity() float64          { return p.maxInsanity }
func (p *Player) Settings() difficulty.Settings { return p.settings }
func (p *Player) FlashlightOn() bool            { return p.flashlightOn }
func (p *Player) BatteryLevel() float64         { return p.battery }
func (p *Player) Spawn() vecmath.Vector         { return p.spawn }
func (p *Player) Pitch() float64                { return p.pitch }
func (p *Player) Targeted() *Entity             { return p.targeted }
func (p *Player) MaxDistance() float64          { return p.maxDistance }

// SetInsanity overrides the sanity scalar and refreshes the difficulty.
func (p *Player) SetInsanity(x float64) {
	p.insanity = difficulty.Sanitize(x)
	p.maxInsanity = math.Max(p.maxInsanity, p.insanity)
	p.settings = p.e.world.mapper.ForInsanity(p.insanity)
}

// DistanceFromSpawn is the current horizontal distance from the spawn point.
func (p *Player) DistanceFromSpawn() float64 {
	return p.e.Position().Sub(p.spawn).Horizontal().Len()
}

// Eye is the camera position.
func (p *Player) Eye() vecmath.Vector {
	return p.e.Position().Add(vecmath.Vec(0, p.e.world.cfg.Player.EyeHeight, 0))
}

// Facing is the horizontal unit direction the player looks and walks toward.
func (p *Player) Facing() vecmath.Vector {
	return p.e.transform.Rotation().Apply(camForward).Horizontal().Normalize()
}

// Yaw is the heading of the body rotation around Up, zero when facing -Z.
func (p *Player) Yaw() float64 {
	q := p.e.transform.Rotation()
	return 2 * math.Atan2(q.Y(), q.W)
}

// LookDir includes the camera pitch.
func (p *Player) LookDir() vecmath.Vector {
	q := p.e.transform.Rotation().Multiply(vecmath.FromAxisAngle(vecmath.Right, p.pitch))
	return q.Apply(camForward).Normalize()
}

func (p *Player) physicsDesc() (physics.RigidBodyDesc, []physics.ColliderDesc, bool) {
	desc := physics.DynamicBody()
	desc.GravityScale = 0 // gravity is applied by the movement code
	return desc, []physics.ColliderDesc{physics.CapsuleCollider(playerHalfHeight, playerRadius)}, true
}

func (p *Player) initGraphics() {
	p.e.container.Add(render.Mesh{
		Name:  "body",
		Size:  vecmath.Vec(playerRadius*2, (playerHalfHeight+playerRadius)*2, playerRadius*2),
		Color: 0xffffff,
	})
}

func (p *Player) onAdd() {
	p.lastPos = p.e.Position()
	p.settings = p.e.world.mapper.ForInsanity(p.insanity)
	p.pushLevel()
}

func (p *Player) update(dt float64, tick uint64) {
	w := p.e.world
	if p.state == Killed {
		p.move(vecmath.Zero, dt)
		return
	}

	h := w.input.Axis(input.AxisHorizontal)
	v := -w.input.Axis(input.AxisVertical)
	local := vecmath.Vec(h, 0, v).Normalize()
	p.move(local.Rotate(vecmath.Up, p.Yaw()), dt)

	p.updateFlashlight(dt)
	lightsOn := p.lightsOn()
	p.updateSanity(lightsOn, dt)
	if !lightsOn {
		p.populate()
	}
	p.updateTarget()
}

// move blends horizontal velocity toward dir*MaxSpeed and accumulates gravity.
func (p *Player) move(dir vecmath.Vector, dt float64) {
	cfg := p.e.world.cfg.Player
	cur := p.e.body.Linvel()
	target := dir.Scale(cfg.MaxSpeed)
	next := cur.Horizontal().Add(target.Sub(cur.Horizontal()).Scale(cfg.Acceleration))
	p.e.body.SetLinvel(next.WithY(cur.Y() - cfg.Gravity*dt))
}

func (p *Player) updateFlashlight(dt float64) {
	w := p.e.world
	if w.input.IsKeyNewlyPressed(input.KeyFlashlight) && (p.flashlightOn || p.battery > 0) {
		p.flashlightOn = !p.flashlightOn
		w.playSound(effects.FlashLight)
	}
	if p.flashlightOn {
		p.battery -= w.cfg.Player.BatteryDrain * dt
		if p.battery <= 0 {
			p.battery = 0
			p.flashlightOn = false
		}
	}
	p.pushLevel()
}

func (p *Player) pushLevel() {
	level := int(math.Ceil(p.battery * 4))
	level = min(max(level, 0), 4)
	if level != p.level {
		p.level = level
		p.e.world.fx.SetFlashlightLevel(level)
	}
}

// RefillBattery tops the flashlight battery back up.
func (p *Player) RefillBattery() {
	p.battery = 1
	p.pushLevel()
}

func (p *Player) lightsOn() bool {
	s, err := p.e.world.FindByID(IDScene)
	if err != nil || s.scene == nil {
		return true
	}
	return s.scene.LightsOn()
}

func (p *Player) updateSanity(lightsOn bool, dt float64) {
	cfg := p.e.world.cfg.Sanity
	x := p.insanity
	switch {
	case lightsOn:
		x = math.Max(0, x-cfg.DrainPerSecond*dt)
	case p.flashlightOn:
		x += cfg.GainPerSecond * dt
	default:
		x += cfg.DarkGainPerSecond * dt
	}
	p.SetInsanity(x)
}

// populate tops the antagonist population up to the current cap, spawning on
// a ring around the player.
func (p *Player) populate() {
	w := p.e.world
	cfg := w.cfg.Antagonist
	have := len(w.FindByTag(TagAntagonist))
	pos := p.e.Position()
	for ; have < p.settings.Antagonists; have++ {
		angle := w.rng.Float64() * 2 * math.Pi
		radius := cfg.SpawnMinRadius + w.rng.Float64()*(cfg.SpawnMaxRadius-cfg.SpawnMinRadius)
		at := vecmath.Vec(
			pos.X()+math.Sin(angle)*radius,
			antagonistStandHeight,
			pos.Z()+math.Cos(angle)*radius,
		)
		w.AddEntity(NewAntagonist(at), "")
		w.log.Debug("antagonist spawned",
			zap.Uint64("tick", w.currentTick),
			zap.Stringer("at", at),
			zap.Int("population", have+1))
	}
}

// updateTarget picks the nearest battery in reach that the player looks at.
func (p *Player) updateTarget() {
	w := p.e.world
	cfg := w.cfg.Player
	eye, look := p.Eye(), p.LookDir()
	p.targeted = nil
	best := math.Inf(1)
	for _, b := range w.FindByTag(TagBattery) {
		to := b.Position().Sub(eye)
		d := to.Len()
		if d > cfg.PickupRange || d >= best {
			continue
		}
		if look.Dot(to.Normalize()) > cfg.PickupDot {
			p.targeted, best = b, d
		}
	}
}

func (p *Player) postUpdate() {
	pos := p.e.Position()
	step := pos.Sub(p.lastPos).Horizontal().Len()
	p.lastPos = pos
	p.maxDistance = math.Max(p.maxDistance, p.DistanceFromSpawn())
	if p.state != Alive {
		return
	}
	p.stride += step
	if stride := p.e.world.cfg.Player.FootstepStride; p.stride >= stride {
		p.stride = math.Mod(p.stride, stride)
		p.e.world.playSound(effects.FootStep)
	}
}

// Kill moves the player to the terminal state. Later calls do nothing.
func (p *Player) Kill() {
	if p.state == Killed {
		return
	}
	w := p.e.world
	p.state = Killed
	p.killTick = w.currentTick
	p.flashlightOn = false
	p.targeted = nil
	p.e.transform.SetPosition(p.e.Position().Sub(vecmath.Vec(0, w.cfg.Player.KillDrop, 0)))

	w.playSound(effects.Killed)
	w.playSound(effects.Stinger)
	w.fx.ShowPickupNote(false)

	event.Emit(w.events, event.PlayerKilled{
		RunID:       w.runID,
		Tick:        w.currentTick,
		Distance:    p.maxDistance,
		MaxInsanity: p.maxInsanity,
		Seed:        w.seed,
	})
	w.log.Info("player killed",
		zap.Uint64("tick", w.currentTick),
		zap.Float64("distance", p.maxDistance),
		zap.Float64("max_insanity", p.maxInsanity))
}

// KillTick is the tick the player died on, zero while alive.
func (p *Player) KillTick() uint64 { return p.killTick }

// render applies mouse look and places the camera.
func (p *Player) render() {
	w := p.e.world
	dx, dy := w.input.FlushMouseDelta()
	if p.state == Alive {
		sens := w.cfg.Player.MouseSensitivity
		p.e.transform.SetRotation(p.e.transform.Rotation().Rotate(vecmath.Up, -dx*sens))
		p.pitch = math.Max(-maxPitch, math.Min(maxPitch, p.pitch-dy*sens))
	}
	w.scene.Camera.Eye = p.Eye()
	w.scene.Camera.Yaw = p.e.transform.Rotation()
	w.scene.Camera.Pitch = p.pitch
}
