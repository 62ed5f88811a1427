package core

import "math"

// TileKind selects how a grid tile looks and reacts.
type TileKind int

const (
	TileStatic TileKind = iota
	TileConnected
	TileBreakable
	TileAction
)

// String returns the kind name.
func (k TileKind) String() string {
	switch k {
	case TileStatic:
		return "static"
	case TileConnected:
		return "connected"
	case TileBreakable:
		return "breakable"
	case TileAction:
		return "action"
	default:
		return "unknown"
	}
}

// EffectKind is what an action tile does to a sprite that touches one side.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectLaunch sets dy to -Amount.
	EffectLaunch
	// EffectKnockback pushes the sprite away from the struck side at Amount.
	EffectKnockback
	// EffectHalt zeroes velocity along the struck axis.
	EffectHalt
)

// Effect is one side's response on an action tile.
type Effect struct {
	Kind   EffectKind
	Amount float64
}

// Apply runs the effect on s, which struck side of the tile.
func (e Effect) Apply(s *Sprite, struck Side) {
	switch e.Kind {
	case EffectLaunch:
		s.DY = -e.Amount
	case EffectKnockback:
		switch struck {
		case SideUp:
			s.DY = -e.Amount
		case SideDown:
			s.DY = e.Amount
		case SideLeft:
			s.DX = -e.Amount
		case SideRight:
			s.DX = e.Amount
		}
	case EffectHalt:
		if struck == SideUp || struck == SideDown {
			s.DY = 0
		} else {
			s.DX = 0
		}
	}
}

// Tile is a static grid entity. Connected tiles get their frame from the
// world's autotiler; breakable tiles carry debris; action tiles carry one
// effect per side, indexed by Side.
type Tile struct {
	Kind   TileKind
	GX, GY int
	Sheet  Sheet
	Anim   Animation
	Hitbox Hitbox
	Code   string

	Debris  Debris
	Effects [4]Effect
}

// NewTile creates a static tile at grid cell (gx, gy) showing frame f.
func NewTile(gx, gy int, sheet Sheet, f Frame) *Tile {
	return &Tile{
		Kind:   TileStatic,
		GX:     gx,
		GY:     gy,
		Sheet:  sheet,
		Anim:   Still(f),
		Hitbox: NewHitbox(0, 0, TileSize, TileSize),
	}
}

// NewConnectedTile creates an autotiled tile. Its frame is assigned when it
// is placed in a world.
func NewConnectedTile(gx, gy int, sheet Sheet) *Tile {
	t := NewTile(gx, gy, sheet, UnknownFrame)
	t.Kind = TileConnected
	return t
}

// NewBreakableTile creates a tile that lasers destroy, leaving the named
// debris type (unknown names leave a crate).
func NewBreakableTile(gx, gy int, sheet Sheet, f Frame, debris string) *Tile {
	t := NewTile(gx, gy, sheet, f)
	t.Kind = TileBreakable
	d, ok := DebrisTypes[debris]
	if !ok {
		d = DebrisTypes["crate"]
	}
	t.Debris = d
	return t
}

// NewActionTile creates a tile with per-side effects.
func NewActionTile(gx, gy int, sheet Sheet, f Frame, effects [4]Effect) *Tile {
	t := NewTile(gx, gy, sheet, f)
	t.Kind = TileAction
	t.Effects = effects
	return t
}

// NewSpikeTile creates an action tile that launches sprites landing on top
// and knocks back sprites walking into its sides.
func NewSpikeTile(gx, gy int, sheet Sheet, f Frame, launch, knockback float64) *Tile {
	var fx [4]Effect
	fx[SideUp] = Effect{Kind: EffectLaunch, Amount: launch}
	fx[SideLeft] = Effect{Kind: EffectKnockback, Amount: knockback}
	fx[SideRight] = Effect{Kind: EffectKnockback, Amount: knockback}
	fx[SideDown] = Effect{Kind: EffectHalt}
	return NewActionTile(gx, gy, sheet, f, fx)
}

// X returns the tile's left edge in world pixels.
func (t *Tile) X() float64 { return float64(t.GX * TileSize) }

// Y returns the tile's top edge in world pixels.
func (t *Tile) Y() float64 { return float64(t.GY * TileSize) }

// Box returns the tile's hitbox in world coordinates.
func (t *Tile) Box() Hitbox {
	return t.Hitbox.At(t.X(), t.Y())
}

// Connected reports whether the tile takes part in autotiling.
func (t *Tile) Connected() bool { return t.Kind == TileConnected }

// Breakable reports whether lasers destroy the tile.
func (t *Tile) Breakable() bool { return t.Kind == TileBreakable }

// cellOf converts a world coordinate to a grid index.
func cellOf(v float64) int {
	return int(math.Floor(v / TileSize))
}
