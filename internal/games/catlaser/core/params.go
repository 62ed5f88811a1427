package core

// Params holds every tunable constant of the simulation.
// Values are in world pixels and ticks.
type Params struct {
	// Physics
	Gravity     float64 // added to dy every tick
	MaxDy       float64 // terminal fall speed
	JumpImpulse float64 // dy is set to -JumpImpulse on jump
	FloatRise   float64 // gravity fraction removed while rising with jump held
	FloatFall   float64 // gravity fraction removed while falling with jump held
	WalkSpeed   float64
	WalkAccel   float64
	RunSpeed    float64
	RunAccel    float64
	Decel       float64 // per-tick slowdown with no direction held

	// Shooting
	ChargeTierTicks int     // ticks of charge per laser tier
	MaxCharge       int     // charge ticks beyond this add nothing
	ShootCooldown   int     // ticks after firing before charging may restart
	RecoilPerTier   float64 // upward dy impulse per charge tier
	RecoilCeiling   float64 // recoil is skipped when dy <= this
	LaserBehind     float64 // lasers die this far left of the camera
	LaserAhead      float64 // lasers die this far right of the camera

	// Action tiles
	SpikeLaunch    float64
	SpikeKnockback float64

	// Presentation
	AnimDelay  int     // ticks per animation step
	ViewWidth  float64 // viewport width in world pixels
	ViewHeight float64 // viewport height in world pixels
	CameraLead float64 // camera.x = player.x - CameraLead
	FallMargin int     // rows below the level before the player respawns
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:     0.25,
		MaxDy:       6,
		JumpImpulse: 4.00,
		FloatRise:   0.40,
		FloatFall:   0.60,
		WalkSpeed:   1.5,
		WalkAccel:   0.30,
		RunSpeed:    2.5,
		RunAccel:    0.50,
		Decel:       0.40,

		ChargeTierTicks: 30,
		MaxCharge:       60,
		ShootCooldown:   30,
		RecoilPerTier:   1.50,
		RecoilCeiling:   -1,
		LaserBehind:     32,
		LaserAhead:      192,

		SpikeLaunch:    5,
		SpikeKnockback: 2,

		AnimDelay:  8,
		ViewWidth:  160,
		ViewHeight: 160,
		CameraLead: 72,
		FallMargin: 2,
	}
}

// sanitized fills zero values that would stall or divide by zero.
func (p Params) sanitized() Params {
	d := DefaultParams()
	if p.AnimDelay <= 0 {
		p.AnimDelay = d.AnimDelay
	}
	if p.ChargeTierTicks <= 0 {
		p.ChargeTierTicks = d.ChargeTierTicks
	}
	if p.ViewWidth <= 0 {
		p.ViewWidth = d.ViewWidth
	}
	if p.ViewHeight <= 0 {
		p.ViewHeight = d.ViewHeight
	}
	return p
}

// ChargeTier returns the laser tier (0, 1 or 2 with stock tuning) for a
// charge held for t ticks.
func (p Params) ChargeTier(t int) int {
	return min(t, p.MaxCharge) / p.ChargeTierTicks
}

// LaserSpeed returns the horizontal laser speed for a charge of t ticks.
func (p Params) LaserSpeed(t int) float64 {
	return 2 * float64(p.ChargeTier(t)+1)
}
