package core

import (
	"iter"
	"math"
)

// World owns the tile grid and the ordered sprite list.
//
// The grid is column-major: tiles[x][y]. A cell is nil or holds exactly one
// tile. The player, when present, is kept at index 0 of the sprite list.
type World struct {
	Width, Height int
	// Background is the parallax sheet; empty draws no background.
	Background Sheet

	tiles   [][]*Tile
	sprites []*Sprite
	player  *Sprite
}

// NewWorld creates an empty w x h world.
func NewWorld(w, h int) *World {
	w, h = max(w, 0), max(h, 0)
	tiles := make([][]*Tile, w)
	for x := range tiles {
		tiles[x] = make([]*Tile, h)
	}
	return &World{Width: w, Height: h, tiles: tiles}
}

// InBounds reports whether (x, y) is a grid cell of the world.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// TileAt returns the tile at (x, y), or nil for empty and out-of-range cells.
func (w *World) TileAt(x, y int) *Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.tiles[x][y]
}

// neighborOffsets lists the 8 neighbors in slot order NW, N, NE, W, E, SW, S, SE.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 tiles around (x, y) in slot order. With a sheet,
// only connected tiles of that sheet fill a slot; an empty sheet accepts
// any tile.
func (w *World) Neighbors(x, y int, sheet Sheet) [8]*Tile {
	var out [8]*Tile
	for i, d := range neighborOffsets {
		t := w.TileAt(x+d[0], y+d[1])
		if t == nil {
			continue
		}
		if sheet != "" && (!t.Connected() || t.Sheet != sheet) {
			continue
		}
		out[i] = t
	}
	return out
}

// Occupancy returns the autotile neighborhood of (x, y) for sheet.
func (w *World) Occupancy(x, y int, sheet Sheet) Neighborhood {
	var n Neighborhood
	for i, t := range w.Neighbors(x, y, sheet) {
		n[i] = t != nil
	}
	return n
}

// Block returns the 3x3 cells centered on (x, y), column by column
// (x-1 column first, top to bottom). Empty cells are nil.
func (w *World) Block(x, y int) [9]*Tile {
	var out [9]*Tile
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			out[i] = w.TileAt(x+dx, y+dy)
			i++
		}
	}
	return out
}

// Corners returns the distinct tiles under the rounded top-left, top-right,
// bottom-left and bottom-right points of hb.
func (w *World) Corners(hb Hitbox) []*Tile {
	left, right := math.Round(hb.X), math.Round(hb.Right())
	top, bottom := math.Round(hb.Y), math.Round(hb.Bottom())
	points := [4][2]float64{{left, top}, {right, top}, {left, bottom}, {right, bottom}}

	out := make([]*Tile, 0, 4)
	for _, p := range points {
		t := w.TileAt(cellOf(p[0]), cellOf(p[1]))
		if t == nil {
			continue
		}
		dup := false
		for _, seen := range out {
			if seen == t {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// Retexture recomputes the frame of the connected tile at (x, y).
func (w *World) Retexture(x, y int) {
	t := w.TileAt(x, y)
	if t == nil || !t.Connected() {
		return
	}
	t.Anim = Still(Classify(w.Occupancy(x, y, t.Sheet)))
}

func (w *World) retextureBlock(x, y int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			w.Retexture(x+dx, y+dy)
		}
	}
}

// RetextureAll recomputes every connected tile. Loaders place tiles and
// call it once instead of paying per placement.
func (w *World) RetextureAll() {
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			w.Retexture(x, y)
		}
	}
}

// PlaceTile puts t at (x, y) and retextures the surrounding block.
// It fails on occupied or out-of-range cells.
func (w *World) PlaceTile(x, y int, t *Tile) bool {
	if t == nil || !w.InBounds(x, y) || w.tiles[x][y] != nil {
		return false
	}
	t.GX, t.GY = x, y
	w.tiles[x][y] = t
	w.retextureBlock(x, y)
	return true
}

// SetTile puts t at (x, y) without retexturing, replacing any tile there.
func (w *World) SetTile(x, y int, t *Tile) bool {
	if !w.InBounds(x, y) {
		return false
	}
	if t != nil {
		t.GX, t.GY = x, y
	}
	w.tiles[x][y] = t
	return true
}

// RemoveTile clears (x, y) and retextures its neighbors.
func (w *World) RemoveTile(x, y int) bool {
	if w.TileAt(x, y) == nil {
		return false
	}
	w.tiles[x][y] = nil
	w.retextureBlock(x, y)
	return true
}

// Tiles iterates the grid column by column, top to bottom.
func (w *World) Tiles() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for x := 0; x < w.Width; x++ {
			for y := 0; y < w.Height; y++ {
				t := w.tiles[x][y]
				if t == nil {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// TileCount returns the number of occupied cells.
func (w *World) TileCount() int {
	n := 0
	for range w.Tiles() {
		n++
	}
	return n
}

// Spawn adds s to the sprite list. The first player spawned goes to the
// front; everything else is appended and first updates on the next pass.
func (w *World) Spawn(s *Sprite) {
	if s == nil {
		return
	}
	s.despawned = false
	if s.Kind == SpritePlayer && w.player == nil {
		w.player = s
		w.sprites = append([]*Sprite{s}, w.sprites...)
		return
	}
	w.sprites = append(w.sprites, s)
}

// Despawn marks s for removal at the next Sweep. Despawning a sprite that
// is already gone does nothing.
func (w *World) Despawn(s *Sprite) {
	if s == nil || s.despawned {
		return
	}
	s.despawned = true
	if s == w.player {
		w.player = nil
	}
}

// Sweep drops despawned sprites, keeping the order of the rest.
func (w *World) Sweep() {
	kept := w.sprites[:0]
	for _, s := range w.sprites {
		if !s.despawned {
			kept = append(kept, s)
		}
	}
	clear(w.sprites[len(kept):])
	w.sprites = kept
}

// Sprites returns the sprite list. Sprites despawned since the last Sweep
// are still present and report Despawned.
func (w *World) Sprites() []*Sprite {
	return w.sprites
}

// Player returns the player sprite, or nil.
func (w *World) Player() *Sprite {
	return w.player
}

// SpriteAt returns the coded sprite whose spawn cell is (x, y).
func (w *World) SpriteAt(x, y int) *Sprite {
	for _, s := range w.sprites {
		if s.despawned || s.Code == "" {
			continue
		}
		if sx, sy := s.SpawnCell(); sx == x && sy == y {
			return s
		}
	}
	return nil
}

// PlaceSprite moves s to cell (x, y), makes that its spawn point and adds it
// to the world. A cell holds at most one coded sprite and a world at most
// one player.
func (w *World) PlaceSprite(x, y int, s *Sprite) bool {
	if s == nil || !w.InBounds(x, y) || w.SpriteAt(x, y) != nil {
		return false
	}
	if s.Kind == SpritePlayer && w.player != nil {
		return false
	}
	s.X, s.Y = float64(x*TileSize), float64(y*TileSize)
	s.Spawn = Vector2{X: s.X, Y: s.Y}
	w.Spawn(s)
	return true
}

// RemoveSprite removes the coded sprite spawned at (x, y).
func (w *World) RemoveSprite(x, y int) bool {
	s := w.SpriteAt(x, y)
	if s == nil {
		return false
	}
	w.Despawn(s)
	w.Sweep()
	return true
}
