package core

import "math"

// Input is the held state of the logical keys for one tick.
type Input struct {
	Left, Right bool
	Jump        bool
	Crouch      bool
	Run         bool
	Shoot       bool
}

// Facing is the direction the player looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns -1 for left and 1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// PlayerState is the controller state carried by the player sprite.
type PlayerState struct {
	Facing    Facing
	Running   bool
	Crouching bool
	// CanJump is set while the jump key is up and cleared by a jump.
	CanJump bool

	Charging    bool
	ChargeStart int // tick charging began
	Cooldown    int // charging may restart from this tick

	MaxDy float64

	leftAt, rightAt int // tick each direction was last pressed
	prev            Input
}

// Player animation loops, indexed by Facing.
var (
	idleLoops   = [2]AnimLoop{Loop([2]int{1, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 1}), Loop([2]int{0, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1})}
	riseLoops   = [2]AnimLoop{Loop([2]int{1, 2}), Loop([2]int{0, 2})}
	crouchLoops = [2]AnimLoop{Loop([2]int{1, 3}), Loop([2]int{0, 3})}
	chargeLoops = [2]AnimLoop{Loop([2]int{1, 4}, [2]int{1, 4}, [2]int{1, 5}, [2]int{1, 5}), Loop([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 5}, [2]int{0, 5})}
)

// NewPlayer creates the player sprite at (x, y) facing right.
func NewPlayer(x, y float64, p Params) *Sprite {
	s := NewSprite(x, y, SheetCat, Frame{})
	s.Kind = SpritePlayer
	s.Code = "player"
	s.Hitbox = NewHitbox(1, 4, 14, 12)
	s.Collidable = true
	s.Anim = NewAnimation(idleLoops[FacingLeft], 0)
	s.Player = &PlayerState{
		Facing:  FacingRight,
		MaxDy:   p.MaxDy,
		leftAt:  -1,
		rightAt: -1,
	}
	return s
}

// Grounded reports whether the player could jump this tick: not moving
// vertically and some tile directly below its center cell.
func (s *State) Grounded(sp *Sprite) bool {
	if sp.DY != 0 {
		return false
	}
	n := s.World.Neighbors(cellOf(sp.X+TileSize/2), cellOf(sp.Y+TileSize/2), "")
	return n[SW] != nil || n[S] != nil || n[SE] != nil
}

func (s *State) updatePlayer(sp *Sprite) {
	ps := sp.Player
	if ps == nil {
		return
	}
	p := s.Params
	in := s.input

	s.resolveTiles(sp)

	ps.Running = in.Run

	if in.Shoot {
		if !ps.Charging && s.Tick >= ps.Cooldown {
			ps.Charging = true
			ps.ChargeStart = s.Tick
		}
	} else if ps.Charging {
		t := s.Tick - ps.ChargeStart
		s.fire(sp, t)
		ps.Cooldown = s.Tick + p.ShootCooldown
		if sp.DY > p.RecoilCeiling {
			sp.DY -= float64(p.ChargeTier(t)) * p.RecoilPerTier
		}
		ps.Charging = false
	}

	if in.Left && !ps.prev.Left {
		ps.leftAt = s.Tick
	}
	if in.Right && !ps.prev.Right {
		ps.rightAt = s.Tick
	}
	var dir float64
	switch {
	case in.Left && in.Right:
		dir = 1
		if ps.leftAt > ps.rightAt {
			dir = -1
		}
	case in.Left:
		dir = -1
	case in.Right:
		dir = 1
	}
	if dir != 0 {
		speed, accel := p.WalkSpeed, p.WalkAccel
		if ps.Running && !ps.Charging {
			speed, accel = p.RunSpeed, p.RunAccel
		}
		sp.DX = accelTo(sp.DX, dir*speed, dir*accel)
		ps.Facing = FacingRight
		if dir < 0 {
			ps.Facing = FacingLeft
		}
	} else if sp.DX < 0 {
		sp.DX = accelTo(sp.DX, 0, p.Decel)
	} else if sp.DX > 0 {
		sp.DX = accelTo(sp.DX, 0, -p.Decel)
	}

	if in.Jump {
		if ps.CanJump && s.Grounded(sp) {
			sp.DY = -p.JumpImpulse
			ps.CanJump = false
			s.Stats.Jumps++
		}
		if sp.DY < 0 {
			sp.DY -= p.Gravity * p.FloatRise
		} else if sp.DY > 0 {
			sp.DY -= p.Gravity * p.FloatFall
		}
	} else {
		ps.CanJump = true
	}

	ps.Crouching = in.Crouch
	if ps.Crouching {
		sp.DX = 0
	}

	switch {
	case ps.Charging:
		sp.Anim.SetLoop(chargeLoops[ps.Facing])
	case ps.Crouching:
		sp.Anim.SetLoop(crouchLoops[ps.Facing])
	case sp.DY < 0:
		sp.Anim.SetLoop(riseLoops[ps.Facing])
	default:
		sp.Anim.SetLoop(idleLoops[ps.Facing])
	}

	sp.DY = accelTo(sp.DY, ps.MaxDy, p.Gravity)

	if sp.Y > float64((s.World.Height+p.FallMargin)*TileSize) {
		sp.X, sp.Y = sp.Spawn.X, sp.Spawn.Y
		sp.DX, sp.DY = 0, 0
		s.Stats.Respawns++
	}

	ps.prev = in
}

// resolveTiles pushes the player out of the 3x3 block around its cell.
// Each tile is resolved along the player's shallowest edge, and only when
// the player moves into it. Head bumps also need the upper overlap to differ
// from the horizontal one by more than half a pixel.
func (s *State) resolveTiles(sp *Sprite) {
	cx, cy := sp.Cell()
	for _, t := range s.World.Block(cx, cy) {
		if t == nil {
			continue
		}
		pen, ok := Overlap(sp.Box(), t.Box())
		if !ok {
			continue
		}
		m := pen.Min()
		switch {
		case m == pen.Upper && sp.DY < 0 && math.Abs(pen.Upper-min(pen.Left, pen.Right)) > 0.5:
			sp.DY = 0
			sp.Y += m
		case m == pen.Lower && sp.DY > 0:
			sp.DY = 0
			sp.Y -= m
		case m == pen.Left && sp.DX < 0:
			sp.DX = 0
			sp.X += m
		case m == pen.Right && sp.DX > 0:
			sp.DX = 0
			sp.X -= m
		}
	}
}

// accelTo adds a to n, stopping at limit once n passes it in a's direction.
func accelTo(n, limit, a float64) float64 {
	n += a
	if (a < 0 && n < limit) || (a > 0 && n > limit) {
		n = limit
	}
	return n
}
