// Package levels builds Catatatatat worlds from level codes and generators.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
)

// Empty marks a cell with no tile in a level code.
const Empty = "_"

// Level codes.
const (
	CodeNatureConnected = "nature_ct"
	CodeNatureCrate     = "nature_crate"
	CodeNatureSpike     = "nature_spike"
	CodeTilesBlock      = "tiles_block"
	CodePlayer          = "player"
)

var (
	// ErrUnknownCode is returned for tile or sprite codes missing from the registry.
	ErrUnknownCode = errors.New("unknown level code")
	// ErrMalformed is returned for level text that does not follow the format.
	ErrMalformed = errors.New("malformed level")
)

type tileBuilder func(x, y int, p core.Params) *core.Tile

type spriteBuilder func(x, y int, p core.Params) *core.Sprite

var tileCodes = map[string]tileBuilder{
	CodeNatureConnected: func(x, y int, _ core.Params) *core.Tile {
		return core.NewConnectedTile(x, y, core.SheetNature)
	},
	CodeNatureCrate: func(x, y int, _ core.Params) *core.Tile {
		return core.NewBreakableTile(x, y, core.SheetNature, core.Frame{Col: 0, Row: 7}, "crate")
	},
	CodeNatureSpike: func(x, y int, p core.Params) *core.Tile {
		return core.NewSpikeTile(x, y, core.SheetNature, core.Frame{Col: 1, Row: 7}, p.SpikeLaunch, p.SpikeKnockback)
	},
	CodeTilesBlock: func(x, y int, _ core.Params) *core.Tile {
		return core.NewTile(x, y, core.SheetTiles, core.Frame{})
	},
}

var spriteCodes = map[string]spriteBuilder{
	CodePlayer: func(x, y int, p core.Params) *core.Sprite {
		return core.NewPlayer(float64(x*core.TileSize), float64(y*core.TileSize), p)
	},
}

// NewTile builds the tile registered under code at grid cell (x, y).
func NewTile(code string, x, y int, p core.Params) (*core.Tile, error) {
	build, ok := tileCodes[code]
	if !ok {
		return nil, fmt.Errorf("tile %q: %w", code, ErrUnknownCode)
	}
	t := build(x, y, p)
	t.Code = code
	return t, nil
}

// NewSprite builds the sprite registered under code at grid cell (x, y).
func NewSprite(code string, x, y int, p core.Params) (*core.Sprite, error) {
	build, ok := spriteCodes[code]
	if !ok {
		return nil, fmt.Errorf("sprite %q: %w", code, ErrUnknownCode)
	}
	s := build(x, y, p)
	s.Code = code
	return s, nil
}

// IsTileCode reports whether code names a registered tile.
func IsTileCode(code string) bool {
	_, ok := tileCodes[code]
	return ok
}

// IsSpriteCode reports whether code names a registered sprite.
func IsSpriteCode(code string) bool {
	_, ok := spriteCodes[code]
	return ok
}

// TileCodes returns the registered tile codes in sorted order.
func TileCodes() []string {
	return sortedKeys(tileCodes)
}

// SpriteCodes returns the registered sprite codes in sorted order.
func SpriteCodes() []string {
	return sortedKeys(spriteCodes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
