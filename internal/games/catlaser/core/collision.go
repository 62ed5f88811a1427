// Package core implements the Catatatatat simulation: AABB collision,
// connected-tile autotiling, the entity model, the world grid and the
// fixed-order per-tick update loop with its player controller.
//
// The package draws through the Canvas interface and reads a per-tick
// Input snapshot; it has no terminal or timer dependencies.
package core

// TileSize is the edge length of one grid cell in world pixels.
const TileSize = 16

// Vector2 is a point in world-pixel coordinates.
type Vector2 struct {
	X, Y float64
}

// Hitbox is an axis-aligned collision box. OffsetX/OffsetY place it relative
// to its owner's origin; X/Y hold the world position after At is applied.
type Hitbox struct {
	X, Y             float64
	W, H             float64
	OffsetX, OffsetY float64
}

// NewHitbox creates a hitbox of size w x h offset from its owner's origin.
func NewHitbox(offsetX, offsetY, w, h float64) Hitbox {
	return Hitbox{W: w, H: h, OffsetX: offsetX, OffsetY: offsetY}
}

// At returns the box positioned for an owner whose origin is (x, y).
func (h Hitbox) At(x, y float64) Hitbox {
	h.X = x + h.OffsetX
	h.Y = y + h.OffsetY
	return h
}

// Right returns the x-coordinate of the right edge.
func (h Hitbox) Right() float64 { return h.X + h.W }

// Bottom returns the y-coordinate of the bottom edge.
func (h Hitbox) Bottom() float64 { return h.Y + h.H }

// Side names an edge of a box.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Penetration holds how far box A has pushed into box B along each edge.
// Every magnitude is positive while the boxes overlap:
//
//	Left  = bx+bw - ax  (A's left edge past B's right edge)
//	Right = ax+aw - bx  (A's right edge past B's left edge)
//	Upper = by+bh - ay  (A's top edge past B's bottom edge)
//	Lower = ay+ah - by  (A's bottom edge past B's top edge)
type Penetration struct {
	Left, Right, Upper, Lower float64
}

// Overlap tests two world-positioned boxes. ok is false unless all four
// half-plane tests hold; touching edges do not overlap.
func Overlap(a, b Hitbox) (p Penetration, ok bool) {
	if !(a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y) {
		return Penetration{}, false
	}
	return Penetration{
		Left:  b.Right() - a.X,
		Right: a.Right() - b.X,
		Upper: b.Bottom() - a.Y,
		Lower: a.Bottom() - b.Y,
	}, true
}

// Min returns the shallowest of the four magnitudes.
func (p Penetration) Min() float64 {
	return min(p.Left, p.Right, p.Upper, p.Lower)
}

// MinSide returns the edge of A with the shallowest penetration.
// Ties resolve in the order Upper, Lower, Left, Right.
func (p Penetration) MinSide() Side {
	m := p.Min()
	switch m {
	case p.Upper:
		return SideUp
	case p.Lower:
		return SideDown
	case p.Left:
		return SideLeft
	default:
		return SideRight
	}
}

// Struck returns the side of B that A ran into: the side opposite A's
// shallowest edge. A falling onto B strikes B's top (SideUp).
func (p Penetration) Struck() Side {
	switch p.MinSide() {
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}
