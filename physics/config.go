package physics

// Config holds the tunable simulation parameters. Values are applied as
// given: out-of-range settings produce implausible but non-crashing behavior,
// which keeps the parameter surface forgiving for interactive tweaking.
type Config struct {
	// Gravity is the downward acceleration in px/s². Screen-space y grows
	// downward, so it is added to the y acceleration.
	Gravity float64 `yaml:"gravity"`
	// Friction is a velocity-proportional drag coefficient per second.
	Friction float64 `yaml:"friction"`
	// Restitution scales the normal component of a bounce (1 = elastic).
	Restitution float64 `yaml:"restitution"`
	// RotationSpeed is the hexagon's angular velocity in rad/s, signed.
	RotationSpeed float64 `yaml:"rotation_speed"`
	// BallRadius is the ball's collision radius in px.
	BallRadius float64 `yaml:"ball_radius"`
	// MaxVelocity caps the ball's speed in px/s.
	MaxVelocity float64 `yaml:"max_velocity"`
}

// DefaultConfig returns the tuning the demo starts with.
func DefaultConfig() Config {
	return Config{
		Gravity:       500,
		Friction:      0.01,
		Restitution:   0.9,
		RotationSpeed: 0.5,
		BallRadius:    10,
		MaxVelocity:   2000,
	}
}

// Patch is a partial Config. Nil fields leave the current value unchanged,
// so callers can adjust one parameter without restating the rest.
type Patch struct {
	Gravity       *float64
	Friction      *float64
	Restitution   *float64
	RotationSpeed *float64
	BallRadius    *float64
	MaxVelocity   *float64
}

func (p Patch) apply(c *Config) {
	if p.Gravity != nil {
		c.Gravity = *p.Gravity
	}
	if p.Friction != nil {
		c.Friction = *p.Friction
	}
	if p.Restitution != nil {
		c.Restitution = *p.Restitution
	}
	if p.RotationSpeed != nil {
		c.RotationSpeed = *p.RotationSpeed
	}
	if p.BallRadius != nil {
		c.BallRadius = *p.BallRadius
	}
	if p.MaxVelocity != nil {
		c.MaxVelocity = *p.MaxVelocity
	}
}
