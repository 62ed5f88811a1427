package core

import "testing"

func TestJumpFromGround(t *testing.T) {
	w, p := floorWorld(10)
	s := NewState(w, DefaultParams())

	// canJump starts cleared; a tick with jump up arms it.
	s.Update(Input{}, nil)
	if !p.Player.CanJump {
		t.Fatal("canJump should be set after a tick without jump")
	}

	s.Update(Input{Jump: true}, nil)
	if s.Stats.Jumps != 1 {
		t.Fatalf("jumps = %d, expected 1", s.Stats.Jumps)
	}
	if p.Player.CanJump {
		t.Error("canJump should clear on jump")
	}
	// -4.00 impulse, float while rising, then gravity.
	if !near(p.DY, -4-0.25*0.4+0.25) {
		t.Errorf("dy = %v, expected -3.85", p.DY)
	}
	if p.Y != 128 {
		t.Errorf("y = %v, expected 128 on the jump tick", p.Y)
	}

	s.Update(Input{Jump: true}, nil)
	if !near(p.Y, 128-3.85) {
		t.Errorf("y = %v, expected 124.15", p.Y)
	}
	if s.Stats.Jumps != 1 {
		t.Error("holding jump must not jump again")
	}
}

func TestJumpNeedsGround(t *testing.T) {
	w := NewWorld(10, 10)
	p := NewPlayer(0, 0, DefaultParams())
	w.PlaceSprite(2, 2, p)
	s := NewState(w, DefaultParams())

	s.Update(Input{}, nil)
	// Mid-air dy is never 0 and nothing is below.
	run(s, 5, Input{Jump: true})
	if s.Stats.Jumps != 0 {
		t.Errorf("jumps = %d in mid-air, expected 0", s.Stats.Jumps)
	}
}

func TestFloatReducesFall(t *testing.T) {
	fall := func(in Input) float64 {
		w := NewWorld(10, 40)
		p := NewPlayer(0, 0, DefaultParams())
		w.PlaceSprite(2, 0, p)
		s := NewState(w, DefaultParams())
		run(s, 10, in)
		return p.Y
	}
	if held, free := fall(Input{Jump: true}), fall(Input{}); held >= free {
		t.Errorf("holding jump fell to %v, free fall to %v", held, free)
	}
}

func TestChargedShot(t *testing.T) {
	w, p := floorWorld(20)
	s := NewState(w, DefaultParams())

	run(s, 30, Input{Shoot: true})
	if !p.Player.Charging || p.Player.ChargeStart != 0 {
		t.Fatalf("charging=%v start=%d", p.Player.Charging, p.Player.ChargeStart)
	}

	s.Update(Input{}, nil) // tick 30 releases after 30 held ticks
	if s.Stats.Shots != 1 {
		t.Fatalf("shots = %d, expected 1", s.Stats.Shots)
	}
	if p.Player.Cooldown != 60 {
		t.Errorf("cooldown = %d, expected tick 30 + 30", p.Player.Cooldown)
	}

	var laser *Sprite
	for _, sp := range w.Sprites() {
		if sp.Kind == SpriteLaser {
			laser = sp
		}
	}
	if laser == nil {
		t.Fatal("no laser spawned")
	}
	if laser.DX != 4 {
		t.Errorf("laser dx = %v, expected 4", laser.DX)
	}
	if laser.X != p.X || laser.Y != 128 {
		t.Errorf("laser at (%v,%v), expected the player position", laser.X, laser.Y)
	}
	// Tier 1 recoil, then gravity.
	if !near(p.DY, -1.5+0.25) {
		t.Errorf("dy = %v, expected -1.25", p.DY)
	}
}

func TestShotCooldownBlocksCharging(t *testing.T) {
	w, p := floorWorld(20)
	s := NewState(w, DefaultParams())

	run(s, 30, Input{Shoot: true})
	s.Update(Input{}, nil) // fires at tick 30

	run(s, 29, Input{Shoot: true}) // ticks 31..59
	if p.Player.Charging {
		t.Fatal("charging restarted during cooldown")
	}
	s.Update(Input{Shoot: true}, nil) // tick 60
	if !p.Player.Charging || p.Player.ChargeStart != 60 {
		t.Errorf("charging=%v start=%d, expected a new charge at tick 60", p.Player.Charging, p.Player.ChargeStart)
	}
}

func TestLaserSpeedTiers(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		ticks int
		want  float64
	}{
		{0, 2}, {29, 2}, {30, 4}, {59, 4}, {60, 6}, {500, 6},
	}
	for _, tc := range tests {
		if got := p.LaserSpeed(tc.ticks); got != tc.want {
			t.Errorf("LaserSpeed(%d) = %v, expected %v", tc.ticks, got, tc.want)
		}
	}
}

func TestFacingLastPressedWins(t *testing.T) {
	w, p := floorWorld(20)
	s := NewState(w, DefaultParams())

	run(s, 5, Input{Left: true})
	if p.Player.Facing != FacingLeft {
		t.Fatal("expected to face left")
	}
	run(s, 3, Input{Left: true, Right: true})
	if p.Player.Facing != FacingRight {
		t.Error("right pressed later should win")
	}
	s.Update(Input{Right: true}, nil)
	run(s, 3, Input{Left: true, Right: true})
	if p.Player.Facing != FacingLeft {
		t.Error("left pressed again should win")
	}
}

func TestRunSpeedAndDecel(t *testing.T) {
	w, p := floorWorld(60)
	s := NewState(w, DefaultParams())

	run(s, 10, Input{Right: true})
	if !near(p.DX, 1.5) {
		t.Errorf("walk dx = %v, expected 1.5", p.DX)
	}
	run(s, 10, Input{Right: true, Run: true})
	if !near(p.DX, 2.5) {
		t.Errorf("run dx = %v, expected 2.5", p.DX)
	}
	run(s, 10, Input{})
	if p.DX != 0 {
		t.Errorf("dx = %v after releasing, expected 0", p.DX)
	}
}

func TestCrouchStopsAndAnimates(t *testing.T) {
	w, p := floorWorld(20)
	s := NewState(w, DefaultParams())

	run(s, 5, Input{Right: true})
	s.Update(Input{Right: true, Crouch: true}, nil)
	if p.DX != 0 {
		t.Errorf("dx = %v while crouching, expected 0", p.DX)
	}
	if !p.Player.Crouching || p.Anim.Loop[0] != (Frame{1, 3}) {
		t.Errorf("crouching=%v loop=%v", p.Player.Crouching, p.Anim.Loop)
	}
}

func TestAnimationPriority(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Frame
	}{
		{"idle", Input{}, Frame{1, 0}},
		{"charging beats crouching", Input{Shoot: true, Crouch: true}, Frame{1, 4}},
		{"crouching", Input{Crouch: true}, Frame{1, 3}},
		{"facing left", Input{Left: true}, Frame{0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, p := floorWorld(20)
			s := NewState(w, DefaultParams())
			s.Update(tc.in, nil)
			if got := p.Anim.Loop[0]; got != tc.want {
				t.Errorf("loop starts at %+v, expected %+v", got, tc.want)
			}
		})
	}

	// Rising shows the jump frame.
	w, p := floorWorld(20)
	s := NewState(w, DefaultParams())
	s.Update(Input{}, nil)
	s.Update(Input{Jump: true}, nil)
	if got := p.Anim.Loop[0]; got != (Frame{1, 2}) {
		t.Errorf("rising loop starts at %+v, expected (1,2)", got)
	}
}

func TestFallOutRespawns(t *testing.T) {
	w := NewWorld(10, 10)
	p := NewPlayer(0, 0, DefaultParams())
	w.PlaceSprite(3, 0, p)
	s := NewState(w, DefaultParams())

	run(s, 120, Input{})
	if s.Stats.Respawns == 0 {
		t.Fatal("player should have fallen out and respawned")
	}
	if p.Y > float64(12*TileSize) {
		t.Errorf("player y = %v, expected back within the level", p.Y)
	}
}

func TestPlayerDeterminism(t *testing.T) {
	inputs := make([]Input, 300)
	for i := range inputs {
		inputs[i] = Input{
			Right: i%40 < 25,
			Left:  i%40 >= 30,
			Jump:  i%50 > 10 && i%50 < 30,
			Run:   i%70 < 20,
			Shoot: i%90 < 45,
		}
	}

	play := func() ([]Vector2, Stats) {
		w, p := floorWorld(40)
		for x := 5; x < 40; x += 7 {
			w.SetTile(x, 8, NewBreakableTile(x, 8, SheetNature, Frame{0, 7}, "crate"))
		}
		s := NewState(w, DefaultParams())
		trace := make([]Vector2, 0, len(inputs)*2)
		for _, in := range inputs {
			s.Update(in, nil)
			trace = append(trace, Vector2{p.X, p.Y}, Vector2{p.DX, p.DY})
		}
		return trace, s.Stats
	}

	a, statsA := play()
	b, statsB := play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at sample %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	if statsA != statsB {
		t.Errorf("stats differ: %+v vs %+v", statsA, statsB)
	}
}
