// Package physics owns the ball's kinematic state and the live hexagon and
// advances the simulation one clamped timestep at a time.
package physics

import (
	"math/rand"

	"michelo851a1203/hexabounce/hexagon"
	"michelo851a1203/hexabounce/vec"
)

const (
	// maxStep bounds dt so a long frame gap (backgrounded window) cannot
	// destabilize the explicit Euler integrator.
	maxStep = 0.016

	// stallSpeed and perturbSpeed drive the anti-stall kick: when both
	// velocity components drop under stallSpeed after a bounce, each axis
	// gets a uniform [-perturbSpeed, perturbSpeed] injection so the ball
	// never settles into a dead low-amplitude loop against a moving wall.
	stallSpeed   = 10
	perturbSpeed = 25

	// launchSpeed bounds the randomized per-axis velocity the ball starts
	// (and restarts) with.
	launchSpeed = 150
)

// BallState is the ball's kinematic state. Acceleration is a per-step scratch
// accumulator and is zeroed at the end of every step.
type BallState struct {
	Position     vec.Vec
	Velocity     vec.Vec
	Acceleration vec.Vec
}

// Engine runs the simulation. It is single-writer: the frame driver calls
// Update once per frame and readers get copies, so no locking exists.
type Engine struct {
	ball     BallState
	hex      hexagon.Hexagon
	cfg      Config
	rng      *rand.Rand
	running  bool
	collided bool
}

// NewEngine builds an engine with the ball at the hexagon's center and a
// randomized small launch velocity drawn from rng. The rng is injected so
// tests can seed it and assert exact outputs.
func NewEngine(cfg Config, hex hexagon.Hexagon, rng *rand.Rand) *Engine {
	e := &Engine{hex: hex, cfg: cfg, rng: rng}
	e.ball.Position = hex.Center
	e.ball.Velocity = e.randomLaunch()
	return e
}

func (e *Engine) randomLaunch() vec.Vec {
	return vec.New(
		(e.rng.Float64()*2-1)*launchSpeed,
		(e.rng.Float64()*2-1)*launchSpeed,
	)
}

// Start lets subsequent Update calls take effect.
func (e *Engine) Start() { e.running = true }

// Stop turns Update into a no-op. State is left as is.
func (e *Engine) Stop() { e.running = false }

// Running reports whether Update currently has any effect.
func (e *Engine) Running() bool { return e.running }

// Reset recenters the ball with a fresh random launch velocity and zero
// acceleration. Config, hexagon rotation, and run state are untouched.
func (e *Engine) Reset() {
	e.ball.Position = e.hex.Center
	e.ball.Velocity = e.randomLaunch()
	e.ball.Acceleration = vec.Vec{}
	e.collided = false
}

// Update advances the simulation by dt seconds. It is a no-op while stopped.
// dt is clamped to 16ms; callers pass the raw frame delta.
func (e *Engine) Update(dt float64) {
	if !e.running {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}
	e.collided = false

	// Gravity accumulates into the per-step acceleration.
	e.ball.Acceleration.Y += e.cfg.Gravity

	// Drag decays velocity directly, before this step's acceleration is
	// integrated in. The ordering is part of the model's tuning.
	e.ball.Velocity = e.ball.Velocity.Scale(1 - e.cfg.Friction*dt)

	e.ball.Velocity = e.ball.Velocity.Add(e.ball.Acceleration.Scale(dt))
	e.ball.Acceleration = vec.Vec{}

	if speed := e.ball.Velocity.Magnitude(); speed > e.cfg.MaxVelocity {
		e.ball.Velocity = e.ball.Velocity.Scale(e.cfg.MaxVelocity / speed)
	}

	e.ball.Position = e.ball.Position.Add(e.ball.Velocity.Scale(dt))

	e.resolveCollision()

	// The hexagon turns after collision resolution, so this frame's bounce
	// used last frame's orientation. The one-frame lag is invisible at
	// interactive frame rates.
	e.hex = e.hex.Rotate(e.cfg.RotationSpeed * dt)
}

func (e *Engine) resolveCollision() {
	contact, hit := e.hex.CircleCollision(e.ball.Position, e.cfg.BallRadius)
	if !hit {
		return
	}
	e.collided = true

	// Push the ball out along the inward normal in one pass. A very deep
	// overlap may need the next frame's correction too; dt stays small
	// enough that it never shows.
	n := contact.Edge.Normal
	e.ball.Position = e.ball.Position.Add(n.Scale(contact.Depth))

	// Reflect about the normal, scaling only the normal-reversal term by
	// restitution. Tangential velocity passes through unscaled.
	v := e.ball.Velocity
	e.ball.Velocity = v.Sub(n.Scale(2 * e.cfg.Restitution * v.Dot(n)))

	// Anti-stall kick.
	if abs(e.ball.Velocity.X) < stallSpeed && abs(e.ball.Velocity.Y) < stallSpeed {
		e.ball.Velocity.X += (e.rng.Float64()*2 - 1) * perturbSpeed
		e.ball.Velocity.Y += (e.rng.Float64()*2 - 1) * perturbSpeed
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// State returns a copy of the ball state. The engine keeps exclusive
// ownership of the live struct.
func (e *Engine) State() BallState {
	return e.ball
}

// Hexagon returns the current hexagon. Hexagons are immutable values, so
// sharing is safe.
func (e *Engine) Hexagon() hexagon.Hexagon {
	return e.hex
}

// Speed returns |velocity|.
func (e *Engine) Speed() float64 {
	return e.ball.Velocity.Magnitude()
}

// KineticEnergy returns ½|velocity|², assuming unit mass.
func (e *Engine) KineticEnergy() float64 {
	return 0.5 * e.ball.Velocity.MagnitudeSquared()
}

// CollidedLastStep reports whether the most recent effective Update resolved
// a collision. Consumed by decorative effects only.
func (e *Engine) CollidedLastStep() bool {
	return e.collided
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// UpdateConfig merges the patch into the current config. The new values take
// effect on the next Update call.
func (e *Engine) UpdateConfig(p Patch) {
	p.apply(&e.cfg)
}

// SetBallPosition moves the ball. The argument is copied, never aliased.
func (e *Engine) SetBallPosition(p vec.Vec) {
	e.ball.Position = p
}

// SetBallVelocity overrides the ball's velocity. The argument is copied,
// never aliased.
func (e *Engine) SetBallVelocity(v vec.Vec) {
	e.ball.Velocity = v
}
