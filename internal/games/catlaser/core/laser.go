package core

// fire spawns a laser from the player, charged for t ticks.
func (s *State) fire(sp *Sprite, t int) {
	dx := s.Params.LaserSpeed(t) * sp.Player.Facing.Sign()
	s.World.Spawn(NewLaser(sp.X, sp.Y, dx, s.Tick))
	s.Stats.Shots++
}

// updateLaser removes lasers that leave the window around the camera or
// touch a tile. A touched breakable tile breaks.
func (s *State) updateLaser(l *Sprite) {
	if l.X < s.Camera.X-s.Params.LaserBehind || l.X > s.Camera.X+s.Params.LaserAhead {
		s.World.Despawn(l)
		return
	}
	cx, cy := l.Cell()
	for _, t := range s.World.Block(cx, cy) {
		if t == nil {
			continue
		}
		if _, ok := Overlap(l.Box(), t.Box()); !ok {
			continue
		}
		if t.Breakable() {
			s.breakTile(t)
		}
		s.World.Spawn(NewParticle(l.X, l.Y, SheetParticles, ImpactLoop, s.Tick))
		s.World.Despawn(l)
		s.Stats.Impacts++
		return
	}
}

// breakTile removes t from the grid and leaves its debris in its place.
func (s *State) breakTile(t *Tile) {
	if !s.World.RemoveTile(t.GX, t.GY) {
		return
	}
	d := t.Debris
	if len(d.Loop) == 0 {
		d = DebrisTypes["crate"]
	}
	s.World.Spawn(NewParticle(t.X(), t.Y(), d.Sheet, d.Loop, s.Tick))
	s.Stats.Breaks++
}
