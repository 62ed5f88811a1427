package config

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
)

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Level = InitialLevelForPreset(preset)
	}

	// Adjust hazards based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Arena.SpikeChance = 0
		cfg.Arena.CrateChance = 0.10
		cfg.Hazards.SpikeKnockback = 1
	case DifficultyHard:
		cfg.Arena.SpikeChance = 0.10
		cfg.Arena.CeilingMax = 2
		cfg.Hazards.SpikeKnockback = 3
	}
}

// ArenaOptions returns the generator options for the configured arena with
// difficulty scaling applied.
func (c PlatformerConfig) ArenaOptions() levels.ArenaOptions {
	o := levels.ArenaOptions{
		Width:       c.Arena.Width,
		Height:      c.Arena.Height,
		Floor:       c.Arena.Floor,
		CrateChance: c.Arena.CrateChance,
		SpikeChance: c.Arena.SpikeChance,
		CeilingMax:  c.Arena.CeilingMax,
		SpawnX:      c.Arena.SpawnX,
		SpawnY:      c.Arena.SpawnY,
	}
	if c.Difficulty.Enabled {
		level := core.ClampF(c.Difficulty.Level, 0.0, 1.0)
		o.CrateChance = core.ClampF(o.CrateChance+level*c.Difficulty.Scaling.CrateChance, 0.0, 1.0)
		if o.SpikeChance > 0 {
			o.SpikeChance = core.ClampF(o.SpikeChance+level*c.Difficulty.Scaling.SpikeChance, 0.0, 1.0)
		}
	}
	return o
}
