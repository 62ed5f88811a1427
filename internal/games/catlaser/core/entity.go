package core

// SpriteKind selects the per-tick behavior of a dynamic entity.
type SpriteKind int

const (
	SpriteGeneric SpriteKind = iota
	SpritePlayer
	SpriteLaser
	SpriteParticle
)

// String returns the kind name.
func (k SpriteKind) String() string {
	switch k {
	case SpriteGeneric:
		return "sprite"
	case SpritePlayer:
		return "player"
	case SpriteLaser:
		return "laser"
	case SpriteParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Sprite is a moving entity owned by the world's sprite list.
type Sprite struct {
	Kind   SpriteKind
	X, Y   float64
	DX, DY float64
	W, H   int // draw size in pixels
	Sheet  Sheet
	Anim   Animation
	Hitbox Hitbox

	// Collidable sprites trigger action tiles under their corners.
	Collidable bool
	// SelfDestruct sprites leave the world when their loop wraps.
	SelfDestruct bool

	// Spawn is the load-time origin; fall-out respawns return here and
	// level encoding places the sprite's code at this cell.
	Spawn Vector2
	// Code is the level code the sprite was built from, empty for
	// transient sprites.
	Code string

	Player *PlayerState

	despawned bool
}

// NewSprite creates a generic 16x16 sprite showing frame f.
func NewSprite(x, y float64, sheet Sheet, f Frame) *Sprite {
	return &Sprite{
		Kind:   SpriteGeneric,
		X:      x,
		Y:      y,
		W:      TileSize,
		H:      TileSize,
		Sheet:  sheet,
		Anim:   Still(f),
		Hitbox: NewHitbox(0, 0, TileSize, TileSize),
		Spawn:  Vector2{X: x, Y: y},
	}
}

// NewParticle creates a sprite that plays loop once and removes itself.
func NewParticle(x, y float64, sheet Sheet, loop AnimLoop, tick int) *Sprite {
	s := NewSprite(x, y, sheet, Frame{})
	s.Kind = SpriteParticle
	s.Anim = NewAnimation(loop, tick)
	s.SelfDestruct = true
	return s
}

// NewLaser creates a laser moving horizontally at dx.
func NewLaser(x, y, dx float64, tick int) *Sprite {
	s := NewSprite(x, y, SheetCat, Frame{Col: 2, Row: 4})
	s.Kind = SpriteLaser
	s.Anim.Start = tick
	s.Hitbox = NewHitbox(6, 6, 4, 4)
	s.DX = dx
	return s
}

// Box returns the sprite's hitbox in world coordinates.
func (s *Sprite) Box() Hitbox {
	return s.Hitbox.At(s.X, s.Y)
}

// Cell returns the grid cell containing the sprite's origin.
func (s *Sprite) Cell() (int, int) {
	return cellOf(s.X), cellOf(s.Y)
}

// SpawnCell returns the grid cell of the sprite's load-time origin.
func (s *Sprite) SpawnCell() (int, int) {
	return cellOf(s.Spawn.X), cellOf(s.Spawn.Y)
}

// Despawned reports whether the sprite has been removed from its world.
func (s *Sprite) Despawned() bool {
	return s.despawned
}
