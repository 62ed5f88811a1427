package catlaser

import (
	"hash/fnv"

	sim "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
)

// Snapshot captures the game state for determinism testing.
// Uses primitive types only so two snapshots compare with ==.
type Snapshot struct {
	Tick     int
	Paused   bool
	PlayerX  float64
	PlayerY  float64
	PlayerDX float64
	PlayerDY float64
	Facing   string
	CameraX  float64

	Tiles   int
	Sprites int
	Stats   sim.Stats

	// LevelHash is an FNV-1a hash of the current level code.
	LevelHash uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Tick:      g.state.Tick,
		Paused:    g.paused,
		CameraX:   g.state.Camera.X,
		Tiles:     g.state.World.TileCount(),
		Sprites:   len(g.state.World.Sprites()),
		Stats:     g.state.Stats,
		LevelHash: hashCode(levels.Encode(g.state.World)),
	}
	if p := g.state.World.Player(); p != nil {
		s.PlayerX, s.PlayerY = p.X, p.Y
		s.PlayerDX, s.PlayerDY = p.DX, p.DY
		s.Facing = p.Player.Facing.String()
	}
	return s
}

func hashCode(code string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(code))
	return h.Sum64()
}
