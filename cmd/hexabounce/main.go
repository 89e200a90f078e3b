// Demo binary: a ball bouncing inside a spinning hexagon. The physics lives
// in the physics package; this layer drives it once per frame, renders the
// result, and maps the keyboard onto the tunable parameters.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"michelo851a1203/hexabounce/hexagon"
	"michelo851a1203/hexabounce/physics"
	"michelo851a1203/hexabounce/vec"
)

const (
	trailLength = 40
	sparkCount  = 12
	sparkLife   = 0.4
)

// demoConfig is the file-loadable shape of the demo's settings.
type demoConfig struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Hexagon struct {
		Radius float64 `yaml:"radius"`
	} `yaml:"hexagon"`
	Physics physics.Config `yaml:"physics"`
}

func defaultDemoConfig() demoConfig {
	var c demoConfig
	c.Window.Width = 800
	c.Window.Height = 600
	c.Hexagon.Radius = 200
	c.Physics = physics.DefaultConfig()
	return c
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// spark is a short-lived collision particle.
type spark struct {
	pos  vec.Vec
	vel  vec.Vec
	life float64
}

type Game struct {
	cfg    demoConfig
	engine *physics.Engine
	log    *zap.Logger
	rng    *rand.Rand

	trail  []vec.Vec
	sparks []spark
}

func NewGame(cfg demoConfig, log *zap.Logger) *Game {
	center := vec.New(float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2)
	hex := hexagon.New(center, cfg.Hexagon.Radius, 0)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := &Game{
		cfg:    cfg,
		engine: physics.NewEngine(cfg.Physics, hex, rng),
		log:    log,
		rng:    rng,
	}
	g.engine.Start()
	return g
}

func (g *Game) Update() error {
	g.handleInput()

	dt := 1.0 / 60
	g.engine.Update(dt)

	state := g.engine.State()
	g.trail = append(g.trail, state.Position)
	if len(g.trail) > trailLength {
		g.trail = g.trail[len(g.trail)-trailLength:]
	}

	if g.engine.CollidedLastStep() {
		g.emitSparks(state.Position)
	}
	g.updateSparks(dt)

	return nil
}

// handleInput maps keys onto the engine: space toggles the run state, R
// resets, and the tuning keys nudge one parameter each through UpdateConfig.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Stop()
			g.log.Info("simulation stopped")
		} else {
			g.engine.Start()
			g.log.Info("simulation started")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.trail = g.trail[:0]
		g.log.Info("simulation reset")
	}

	cfg := g.engine.Config()
	adjust := func(name string, cur, delta, min float64) {
		v := cur + delta
		if v < min {
			v = min
		}
		g.engine.UpdateConfig(patchFor(name, v))
		g.log.Info("parameter adjusted", zap.String("name", name), zap.Float64("value", v))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		adjust("gravity", cfg.Gravity, 50, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		adjust("gravity", cfg.Gravity, -50, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		adjust("rotation_speed", cfg.RotationSpeed, 0.1, -5)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		adjust("rotation_speed", cfg.RotationSpeed, -0.1, -5)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		adjust("restitution", cfg.Restitution, 0.05, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		adjust("restitution", cfg.Restitution, -0.05, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		adjust("friction", cfg.Friction, 0.005, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		adjust("friction", cfg.Friction, -0.005, 0)
	}
}

func patchFor(name string, v float64) physics.Patch {
	switch name {
	case "gravity":
		return physics.Patch{Gravity: &v}
	case "rotation_speed":
		return physics.Patch{RotationSpeed: &v}
	case "restitution":
		return physics.Patch{Restitution: &v}
	case "friction":
		return physics.Patch{Friction: &v}
	}
	return physics.Patch{}
}

func (g *Game) emitSparks(at vec.Vec) {
	for i := 0; i < sparkCount; i++ {
		dir := vec.New(1, 0).Rotate(g.rng.Float64() * 2 * math.Pi)
		g.sparks = append(g.sparks, spark{
			pos:  at,
			vel:  dir.Scale(60 + g.rng.Float64()*120),
			life: sparkLife,
		})
	}
}

func (g *Game) updateSparks(dt float64) {
	alive := g.sparks[:0]
	for _, s := range g.sparks {
		s.life -= dt
		if s.life <= 0 {
			continue
		}
		s.pos = s.pos.Add(s.vel.Scale(dt))
		alive = append(alive, s)
	}
	g.sparks = alive
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	hex := g.engine.Hexagon()
	for _, e := range hex.Edges {
		vector.StrokeLine(screen,
			float32(e.A.X), float32(e.A.Y),
			float32(e.B.X), float32(e.B.Y),
			2, color.White, true)
	}

	// Trail, oldest first so recent positions draw on top.
	for i, p := range g.trail {
		t := float64(i) / trailLength
		r := float32(g.engine.Config().BallRadius * 0.5 * t)
		alpha := uint8(90 * t)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r,
			color.RGBA{255, 80, 80, alpha}, true)
	}

	for _, s := range g.sparks {
		alpha := uint8(255 * s.life / sparkLife)
		vector.DrawFilledCircle(screen, float32(s.pos.X), float32(s.pos.Y), 2,
			color.RGBA{255, 220, 120, alpha}, true)
	}

	state := g.engine.State()
	vector.DrawFilledCircle(screen,
		float32(state.Position.X), float32(state.Position.Y),
		float32(g.engine.Config().BallRadius),
		color.RGBA{255, 0, 0, 255}, true)

	cfg := g.engine.Config()
	hud := fmt.Sprintf(
		"gravity %.0f (up/down)  rotation %.2f (left/right)\nrestitution %.2f (a/d)  friction %.3f (s/w)\nspeed %.1f  energy %.0f\nspace: start/stop  r: reset",
		cfg.Gravity, cfg.RotationSpeed, cfg.Restitution, cfg.Friction,
		g.engine.Speed(), g.engine.KineticEnergy())
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}
	log.Info("starting",
		zap.String("config", *configPath),
		zap.Float64("gravity", cfg.Physics.Gravity),
		zap.Float64("rotation_speed", cfg.Physics.RotationSpeed))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Bouncing Ball in a Spinning Hexagon")
	if err := ebiten.RunGame(NewGame(cfg, log)); err != nil {
		log.Fatal("game loop failed", zap.Error(err))
	}
}
