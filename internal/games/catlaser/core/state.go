package core

import "math"

// Stats counts events since the state was created.
type Stats struct {
	Jumps    int
	Shots    int
	Impacts  int
	Breaks   int
	Respawns int
}

// State is everything one simulation tick reads and writes.
type State struct {
	World      *World
	Camera     Camera
	Background *Background
	Params     Params
	Tick       int
	Stats      Stats

	input Input
}

// NewState wraps w for simulation with p.
func NewState(w *World, p Params) *State {
	s := &State{World: w, Params: p.sanitized()}
	if w.Background != "" {
		s.Background = &Background{Sheet: w.Background}
	}
	if pl := w.Player(); pl != nil {
		s.Camera.Follow(pl.X, w.Width, s.Params)
	}
	return s
}

// Input returns the input snapshot of the last tick.
func (s *State) Input() Input { return s.input }

// Update advances the simulation by one tick and draws it to c, which may
// be nil. The order is fixed: camera, background, tiles in grid order,
// sprites in list order, sweep, tick increment.
func (s *State) Update(in Input, c Canvas) {
	s.input = in
	w := s.World
	delay := s.Params.AnimDelay

	if pl := w.Player(); pl != nil {
		s.Camera.Follow(pl.X, w.Width, s.Params)
	}

	if s.Background != nil {
		s.Background.Draw(c, s.Camera, s.Params)
	}

	for t := range w.Tiles() {
		s.Camera.Draw(c, t.X(), t.Y(), t.Sheet, t.Anim.Frame, TileSize, TileSize)
		if s.Tick%delay == 0 {
			t.Anim.Advance()
		}
	}

	// Sprites spawned during the pass wait for the next tick.
	n := len(w.sprites)
	for i := 0; i < n; i++ {
		sp := w.sprites[i]
		if sp.despawned {
			continue
		}
		s.updateSprite(sp, c)
	}
	w.Sweep()

	s.Tick++
}

func (s *State) updateSprite(sp *Sprite, c Canvas) {
	sp.X += sp.DX
	sp.Y += sp.DY
	sp.DX = round2(sp.DX)
	sp.DY = round2(sp.DY)

	if sp.Collidable {
		s.applyActions(sp)
	}

	switch sp.Kind {
	case SpritePlayer:
		s.updatePlayer(sp)
	case SpriteLaser:
		s.updateLaser(sp)
	}
	if sp.despawned {
		return
	}

	s.Camera.Draw(c, sp.X, sp.Y, sp.Sheet, sp.Anim.Frame, sp.W, sp.H)

	if sp.Anim.Due(s.Tick, s.Params.AnimDelay) {
		if sp.Anim.Advance() && sp.SelfDestruct {
			s.World.Despawn(sp)
		}
	}
}

// applyActions runs the effect of every action tile under sp's corners on
// the side sp struck.
func (s *State) applyActions(sp *Sprite) {
	for _, t := range s.World.Corners(sp.Box()) {
		if t.Kind != TileAction {
			continue
		}
		pen, ok := Overlap(sp.Box(), t.Box())
		if !ok {
			continue
		}
		side := pen.Struck()
		t.Effects[side].Apply(sp, side)
	}
}

// round2 rounds v to two decimals, halves toward positive infinity.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
