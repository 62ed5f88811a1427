package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:     0.25,
			MaxFall:     6,
			JumpImpulse: 4.0,
			FloatRise:   0.40,
			FloatFall:   0.60,
			WalkSpeed:   1.5,
			WalkAccel:   0.30,
			RunSpeed:    2.5,
			RunAccel:    0.50,
			Decel:       0.40,
		},
		Shooting: PlatformerShooting{
			ChargeTier:    30,
			MaxCharge:     60,
			Cooldown:      30,
			RecoilPerTier: 1.5,
			RecoilCeiling: -1,
			LaserBehind:   32,
			LaserAhead:    192,
		},
		Hazards: PlatformerHazards{
			SpikeLaunch:    5,
			SpikeKnockback: 2,
		},
		View: PlatformerView{
			Width:      160,
			Height:     160,
			FitScreen:  true,
			CameraLead: 0.45,
			AnimDelay:  8,
			FallMargin: 2,
		},
		Arena: ArenaConfig{
			Width:       40,
			Height:      10,
			Floor:       8,
			CrateChance: 0.20,
			SpikeChance: 0.05,
			CeilingMax:  1,
			SpawnX:      1,
			SpawnY:      5,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Level:   0.3,
			Scaling: ScalingConfig{
				CrateChance: 0.10,
				SpikeChance: 0.10,
				SpikeLaunch: 1.5,
			},
		},
	}
}
