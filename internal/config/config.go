// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Shooting   PlatformerShooting `yaml:"shooting"`
	Hazards    PlatformerHazards  `yaml:"hazards"`
	View       PlatformerView     `yaml:"view"`
	Arena      ArenaConfig        `yaml:"arena"`
	Input      InputConfig        `yaml:"input"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines movement parameters, in pixels per tick.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	MaxFall     float64 `yaml:"max_fall"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	FloatRise   float64 `yaml:"float_rise"` // gravity fraction removed while rising with jump held
	FloatFall   float64 `yaml:"float_fall"` // gravity fraction removed while falling with jump held
	WalkSpeed   float64 `yaml:"walk_speed"`
	WalkAccel   float64 `yaml:"walk_accel"`
	RunSpeed    float64 `yaml:"run_speed"`
	RunAccel    float64 `yaml:"run_accel"`
	Decel       float64 `yaml:"decel"`
}

// PlatformerShooting defines laser charge parameters, in ticks.
type PlatformerShooting struct {
	ChargeTier    int     `yaml:"charge_tier"`
	MaxCharge     int     `yaml:"max_charge"`
	Cooldown      int     `yaml:"cooldown"`
	RecoilPerTier float64 `yaml:"recoil_per_tier"`
	RecoilCeiling float64 `yaml:"recoil_ceiling"`
	LaserBehind   float64 `yaml:"laser_behind"`
	LaserAhead    float64 `yaml:"laser_ahead"`
}

// PlatformerHazards defines action tile strengths.
type PlatformerHazards struct {
	SpikeLaunch    float64 `yaml:"spike_launch"`
	SpikeKnockback float64 `yaml:"spike_knockback"`
}

// PlatformerView defines the viewport. With FitScreen set the viewport is
// sized from the terminal and Width/Height are ignored.
type PlatformerView struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FitScreen  bool    `yaml:"fit_screen"`
	CameraLead float64 `yaml:"camera_lead"` // fraction of the view width kept left of the player
	AnimDelay  int     `yaml:"anim_delay"`
	FallMargin int     `yaml:"fall_margin"`
}

// ArenaConfig defines the generated arena used when no level is chosen.
type ArenaConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Floor       int     `yaml:"floor"`
	CrateChance float64 `yaml:"crate_chance"`
	SpikeChance float64 `yaml:"spike_chance"`
	CeilingMax  int     `yaml:"ceiling_max"`
	SpawnX      int     `yaml:"spawn_x"`
	SpawnY      int     `yaml:"spawn_y"`
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // ticks a key stays held after its last press
}

// DifficultyConfig scales arena hazards.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Level   float64       `yaml:"level"` // 0.0 = easy, 1.0 = hard
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	CrateChance float64 `yaml:"crate_chance"` // added to the arena crate chance
	SpikeChance float64 `yaml:"spike_chance"` // added to the arena spike chance
	SpikeLaunch float64 `yaml:"spike_launch"` // added to the spike launch speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the difficulty level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ToParams converts the config into simulation parameters. The camera lead
// is resolved against the configured view width.
func (c PlatformerConfig) ToParams() core.Params {
	p := core.DefaultParams()

	p.Gravity = c.Physics.Gravity
	p.MaxDy = c.Physics.MaxFall
	p.JumpImpulse = c.Physics.JumpImpulse
	p.FloatRise = c.Physics.FloatRise
	p.FloatFall = c.Physics.FloatFall
	p.WalkSpeed = c.Physics.WalkSpeed
	p.WalkAccel = c.Physics.WalkAccel
	p.RunSpeed = c.Physics.RunSpeed
	p.RunAccel = c.Physics.RunAccel
	p.Decel = c.Physics.Decel

	p.ChargeTierTicks = c.Shooting.ChargeTier
	p.MaxCharge = c.Shooting.MaxCharge
	p.ShootCooldown = c.Shooting.Cooldown
	p.RecoilPerTier = c.Shooting.RecoilPerTier
	p.RecoilCeiling = c.Shooting.RecoilCeiling
	p.LaserBehind = c.Shooting.LaserBehind
	p.LaserAhead = c.Shooting.LaserAhead

	p.SpikeLaunch = c.Hazards.SpikeLaunch
	p.SpikeKnockback = c.Hazards.SpikeKnockback
	if c.Difficulty.Enabled {
		p.SpikeLaunch += c.Difficulty.Level * c.Difficulty.Scaling.SpikeLaunch
	}

	p.AnimDelay = c.View.AnimDelay
	p.FallMargin = c.View.FallMargin
	if c.View.Width > 0 {
		p.ViewWidth = c.View.Width
	}
	if c.View.Height > 0 {
		p.ViewHeight = c.View.Height
	}
	p.CameraLead = c.View.CameraLead * p.ViewWidth
	return p
}

// Fit resizes the viewport of p to a terminal area of cols x rows cells,
// where one cell covers pxW x pxH world pixels.
func (c PlatformerConfig) Fit(p core.Params, cols, rows, pxW, pxH int) core.Params {
	if !c.View.FitScreen || cols <= 0 || rows <= 0 {
		return p
	}
	// Lasers keep the same margin past the right edge of the view.
	p.LaserAhead += float64(cols*pxW) - p.ViewWidth
	p.ViewWidth = float64(cols * pxW)
	p.ViewHeight = float64(rows * pxH)
	p.CameraLead = c.View.CameraLead * p.ViewWidth
	return p
}
