package levels

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
)

// ArenaOptions shapes the jump arena generator.
type ArenaOptions struct {
	Width, Height int
	Floor         int     // base row of the ground surface
	CrateChance   float64 // chance a ground cell is a crate
	SpikeChance   float64 // chance a column gets a spike on its surface
	CeilingMax    int     // deepest ceiling row
	SpawnX        int
	SpawnY        int
}

// DefaultArenaOptions returns the stock 40x10 arena.
func DefaultArenaOptions() ArenaOptions {
	return ArenaOptions{
		Width:       40,
		Height:      10,
		Floor:       8,
		CrateChance: 0.20,
		SpikeChance: 0.05,
		CeilingMax:  1,
		SpawnX:      1,
		SpawnY:      5,
	}
}

// randInt returns an integer in [a, b).
func randInt(rng *rand.Rand, a, b int) int {
	return a + rng.Intn(b-a)
}

// Arena generates a jump arena: uneven ground from Floor-3 to Floor+1 with
// crates mixed in, and a ragged ceiling. Columns next to the spawn keep the
// base floor and no spikes so the player starts on open ground.
func Arena(rng *rand.Rand, o ArenaOptions) Layout {
	l := NewLayout(o.Width, o.Height)
	l.Background = core.SheetBgNature

	for x := 0; x < o.Width; x++ {
		top := o.Floor + randInt(rng, -3, 2)
		nearSpawn := x >= o.SpawnX-1 && x <= o.SpawnX+1
		if nearSpawn {
			top = o.Floor
		}
		for y := max(top, 0); y < o.Height; y++ {
			code := CodeNatureConnected
			if rng.Float64() < o.CrateChance {
				code = CodeNatureCrate
			}
			l.SetTile(x, y, code)
		}
		for y := randInt(rng, 0, max(o.CeilingMax, 0)+1); y >= 0; y-- {
			l.SetTile(x, y, CodeNatureConnected)
		}
		if !nearSpawn && rng.Float64() < o.SpikeChance && top-1 > o.CeilingMax+1 {
			l.SetTile(x, top-1, CodeNatureSpike)
		}
	}

	clearSpawn(l, o.SpawnX, o.SpawnY)
	return l
}

// Scatter fills a w x h level with connected tiles at density pct on the
// sunset background.
func Scatter(rng *rand.Rand, w, h int, pct float64) Layout {
	l := NewLayout(w, h)
	l.Background = core.SheetBgNatureSunset
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if rng.Float64() < pct {
				l.SetTile(x, y, CodeNatureConnected)
			}
		}
	}
	clearSpawn(l, 1, 5)
	return l
}

// clearSpawn empties the spawn cell and the one above and places the player.
func clearSpawn(l Layout, x, y int) {
	l.SetTile(x, y, "")
	l.SetTile(x, y-1, "")
	l.SetSprite(x, y, CodePlayer)
}
