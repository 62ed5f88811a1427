package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

// floorWorld returns a w x 10 world with a static floor on row 9 and the
// player standing on it at cell (1, 8).
func floorWorld(w int) (*World, *Sprite) {
	world := NewWorld(w, 10)
	for x := 0; x < w; x++ {
		world.SetTile(x, 9, NewTile(x, 9, SheetTiles, Frame{}))
	}
	p := NewPlayer(0, 0, DefaultParams())
	world.PlaceSprite(1, 8, p)
	return world, p
}

func run(s *State, n int, in Input) {
	for range n {
		s.Update(in, nil)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.12},
		{1.5, 1.5},
		{-3.849999, -3.85},
		{0, 0},
	}
	for _, tc := range tests {
		if got := round2(tc.in); !near(got, tc.want) {
			t.Errorf("round2(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestAccelTo(t *testing.T) {
	tests := []struct {
		name        string
		n, limit, a float64
		want        float64
	}{
		{"below limit", 0, 1.5, 0.3, 0.3},
		{"clamps at limit", 1.4, 1.5, 0.3, 1.5},
		{"negative direction", 0, -1.5, -0.3, -0.3},
		{"negative clamps", -1.4, -1.5, -0.3, -1.5},
		{"decel stops at zero", -0.3, 0, 0.4, 0},
		{"over limit snaps back", 2.5, 1.5, 0.3, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := accelTo(tc.n, tc.limit, tc.a); !near(got, tc.want) {
				t.Errorf("accelTo(%v, %v, %v) = %v, expected %v", tc.n, tc.limit, tc.a, got, tc.want)
			}
		})
	}
}

func TestCameraFollow(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name    string
		targetX float64
		width   int
		want    float64
	}{
		{"left edge", 16, 40, 0},
		{"mid level", 200, 40, 128},
		{"right edge", 600, 40, 480},
		{"narrow level", 60, 5, 0},
		{"exactly view wide", 100, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Camera
			c.Follow(tc.targetX, tc.width, p)
			if c.X != tc.want {
				t.Errorf("camera.X = %v, expected %v", c.X, tc.want)
			}
		})
	}
}

func TestUpdateDrawOrder(t *testing.T) {
	w, _ := floorWorld(12)
	w.Background = SheetBgNature
	s := NewState(w, DefaultParams())

	var dl DrawList
	s.Update(Input{}, &dl)

	// 5 back panels, 5 front panels, 12 floor tiles, the player.
	if dl.Len() != 5+5+12+1 {
		t.Fatalf("draw count = %d, expected 23", dl.Len())
	}
	for i, cmd := range dl.Cmds[:5] {
		if cmd.Sheet != SheetBgNature || cmd.Col != 0 || cmd.Y != 0 || cmd.W != 64 || cmd.H != 128 {
			t.Errorf("back panel %d = %+v", i, cmd)
		}
		if cmd.X != float64(-64+64*i) {
			t.Errorf("back panel %d at x=%v", i, cmd.X)
		}
	}
	for i, cmd := range dl.Cmds[5:10] {
		if cmd.Col != 4 || cmd.Y != 32 {
			t.Errorf("front panel %d = %+v", i, cmd)
		}
	}
	for i, cmd := range dl.Cmds[10:22] {
		if cmd.Sheet != SheetTiles || cmd.X != float64(16*i) || cmd.Y != 144 {
			t.Errorf("tile draw %d = %+v", i, cmd)
		}
	}
	if last := dl.Cmds[22]; last.Sheet != SheetCat {
		t.Errorf("last draw sheet = %v, expected the player", last.Sheet)
	}
}

func TestCameraOffsetsDraws(t *testing.T) {
	w := NewWorld(40, 10)
	w.SetTile(15, 9, NewTile(15, 9, SheetTiles, Frame{}))
	p := NewPlayer(0, 0, DefaultParams())
	w.PlaceSprite(12, 0, p) // x = 192, camera = 120

	s := NewState(w, DefaultParams())
	var dl DrawList
	s.Update(Input{}, &dl)

	if s.Camera.X != 120 {
		t.Fatalf("camera.X = %v, expected 120", s.Camera.X)
	}
	if got := dl.Cmds[0].X; got != 240-120 {
		t.Errorf("tile screen x = %v, expected 120", got)
	}
	if got := dl.Cmds[1].X; got != 192-120 {
		t.Errorf("player screen x = %v, expected 72", got)
	}
}

func TestDrawListReplay(t *testing.T) {
	var src, dst DrawList
	src.DrawImage(1, 2, SheetCat, 3, 4, 16, 16)
	src.DrawImage(5, 6, SheetTiles, 0, 0, 16, 16)
	src.Replay(&dst)
	if dst.Len() != 2 || dst.Cmds[1] != src.Cmds[1] {
		t.Errorf("replay = %+v", dst.Cmds)
	}
	src.Reset()
	if src.Len() != 0 {
		t.Error("Reset should empty the list")
	}
}

func TestLaserBreaksCrateSameTick(t *testing.T) {
	w := NewWorld(10, 10)
	w.SetTile(3, 8, NewBreakableTile(3, 8, SheetNature, Frame{0, 7}, "crate"))
	laser := NewLaser(38, 128, 2, 0)
	w.Spawn(laser)

	s := NewState(w, DefaultParams())
	s.Update(Input{}, nil)

	if w.TileAt(3, 8) != nil {
		t.Error("crate should be removed from the grid")
	}
	if !laser.Despawned() {
		t.Error("laser should be despawned")
	}

	sprites := w.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("sprite count = %d, expected debris and impact", len(sprites))
	}
	debris, impact := sprites[0], sprites[1]
	if debris.X != 48 || debris.Y != 128 || debris.Anim.Frame != (Frame{0, 1}) {
		t.Errorf("debris = (%v,%v) %+v", debris.X, debris.Y, debris.Anim.Frame)
	}
	if impact.X != 40 || impact.Y != 128 || impact.Anim.Frame != (Frame{0, 0}) {
		t.Errorf("impact = (%v,%v) %+v", impact.X, impact.Y, impact.Anim.Frame)
	}
	if !debris.SelfDestruct || !impact.SelfDestruct {
		t.Error("particles should self-destruct")
	}
	if s.Stats.Breaks != 1 || s.Stats.Impacts != 1 {
		t.Errorf("stats = %+v", s.Stats)
	}
}

func TestLaserStopsAtSolidTile(t *testing.T) {
	w := NewWorld(10, 10)
	w.SetTile(3, 8, NewTile(3, 8, SheetTiles, Frame{}))
	laser := NewLaser(38, 128, 2, 0)
	w.Spawn(laser)
	s := NewState(w, DefaultParams())
	s.Update(Input{}, nil)

	if w.TileAt(3, 8) == nil {
		t.Error("solid tile should survive")
	}
	if len(w.Sprites()) != 1 || w.Sprites()[0].Kind != SpriteParticle {
		t.Errorf("expected a single impact particle, got %v", w.Sprites())
	}
	if s.Stats.Breaks != 0 {
		t.Errorf("breaks = %d, expected 0", s.Stats.Breaks)
	}
}

func TestLaserLeavesWindow(t *testing.T) {
	w := NewWorld(40, 10)
	right := NewLaser(190, 0, 4, 0)
	left := NewLaser(-30, 0, -4, 0)
	inside := NewLaser(100, 0, 4, 0)
	w.Spawn(right)
	w.Spawn(left)
	w.Spawn(inside)

	s := NewState(w, DefaultParams())
	s.Update(Input{}, nil)

	if !right.Despawned() || !left.Despawned() {
		t.Error("lasers past the window should despawn")
	}
	if inside.Despawned() {
		t.Error("laser inside the window should survive")
	}
	if len(w.Sprites()) != 1 {
		t.Errorf("sprite count = %d, expected 1 (no impact particles)", len(w.Sprites()))
	}
}

func TestParticleSelfDestructs(t *testing.T) {
	w := NewWorld(4, 4)
	w.Spawn(NewParticle(0, 0, SheetParticles, ImpactLoop, 0))
	s := NewState(w, DefaultParams())

	run(s, 8, Input{})
	if len(w.Sprites()) != 1 {
		t.Fatalf("particle gone after 8 ticks, expected it to last until the loop wraps")
	}
	if got := w.Sprites()[0].Anim.Frame; got != (Frame{1, 0}) {
		t.Errorf("particle frame = %+v, expected second frame", got)
	}
	s.Update(Input{}, nil)
	if len(w.Sprites()) != 0 {
		t.Errorf("particle should be removed when its loop wraps")
	}
}

func TestRemovalDuringIterationVisitsSurvivors(t *testing.T) {
	w := NewWorld(4, 4)
	w.Spawn(NewParticle(0, 0, SheetParticles, ImpactLoop, 0))
	mover := NewSprite(0, 0, SheetTiles, Frame{})
	mover.DX = 1
	w.Spawn(mover)
	w.Spawn(NewParticle(0, 0, SheetParticles, ImpactLoop, 0))

	s := NewState(w, DefaultParams())
	run(s, 9, Input{})

	if len(w.Sprites()) != 1 || w.Sprites()[0] != mover {
		t.Fatalf("sprites = %v, expected only the mover", w.Sprites())
	}
	if mover.X != 9 {
		t.Errorf("mover.X = %v, expected one step per tick (9)", mover.X)
	}
}

func TestTileAnimationAdvancesEveryDelay(t *testing.T) {
	w := NewWorld(2, 2)
	tile := NewTile(0, 0, SheetTiles, Frame{0, 0})
	tile.Anim = NewAnimation(Loop([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), 0)
	w.SetTile(0, 0, tile)
	s := NewState(w, DefaultParams())

	var dl DrawList
	s.Update(Input{}, &dl) // tick 0: draws frame 0 then advances
	if dl.Cmds[0].Col != 0 || tile.Anim.Index != 1 {
		t.Fatalf("tick 0 drew col %d, index now %d", dl.Cmds[0].Col, tile.Anim.Index)
	}
	run(s, 7, Input{})
	if tile.Anim.Index != 1 {
		t.Errorf("index = %d after tick 7, expected 1", tile.Anim.Index)
	}
	s.Update(Input{}, nil) // tick 8
	if tile.Anim.Index != 2 {
		t.Errorf("index = %d after tick 8, expected 2", tile.Anim.Index)
	}
}

func TestSpikeLaunchesFromAbove(t *testing.T) {
	w, p := floorWorld(10)
	p.X = 32 // over cell 2
	p.Spawn.X = 32
	w.SetTile(2, 9, NewSpikeTile(2, 9, SheetNature, Frame{1, 7}, 5, 2))
	s := NewState(w, DefaultParams())

	s.Update(Input{}, nil) // resting on the spike, falling starts
	s.Update(Input{}, nil) // sinks 0.25 into it
	if !near(p.DY, -5+0.25) {
		t.Errorf("dy = %v, expected launch -5 plus gravity", p.DY)
	}
}

func TestSpikeKnocksBackFromSide(t *testing.T) {
	w, p := floorWorld(10)
	w.SetTile(3, 8, NewSpikeTile(3, 8, SheetNature, Frame{1, 7}, 5, 2))
	s := NewState(w, DefaultParams())

	knocked := false
	maxX := p.X
	for range 90 {
		s.Update(Input{Right: true}, nil)
		if p.DX < 0 {
			knocked = true
		}
		maxX = max(maxX, p.X)
	}
	if !knocked {
		t.Error("walking into a spike should push the player back")
	}
	if maxX >= 40 {
		t.Errorf("player reached x=%v, expected to be held off the spike at 48", maxX)
	}
}

func TestEffectApply(t *testing.T) {
	tests := []struct {
		name           string
		effect         Effect
		side           Side
		wantDX, wantDY float64
	}{
		{"launch", Effect{EffectLaunch, 5}, SideUp, 1, -5},
		{"knockback left side", Effect{EffectKnockback, 2}, SideLeft, -2, 1},
		{"knockback right side", Effect{EffectKnockback, 2}, SideRight, 2, 1},
		{"knockback bottom", Effect{EffectKnockback, 2}, SideDown, 1, 2},
		{"halt vertical", Effect{EffectHalt, 0}, SideDown, 1, 0},
		{"halt horizontal", Effect{EffectHalt, 0}, SideLeft, 0, 1},
		{"none", Effect{}, SideUp, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Sprite{DX: 1, DY: 1}
			tc.effect.Apply(s, tc.side)
			if s.DX != tc.wantDX || s.DY != tc.wantDY {
				t.Errorf("velocity = (%v,%v), expected (%v,%v)", s.DX, s.DY, tc.wantDX, tc.wantDY)
			}
		})
	}
}
