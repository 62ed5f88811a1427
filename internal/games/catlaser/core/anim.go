package core

// Sheet identifies a texture sheet. The renderer maps it to real art.
type Sheet string

const (
	SheetCat            Sheet = "cat"
	SheetParticles      Sheet = "particles"
	SheetTiles          Sheet = "tiles"
	SheetNature         Sheet = "nature"
	SheetBgNature       Sheet = "bg_nature"
	SheetBgNatureSunset Sheet = "bg_nature_sunset"
)

// AnimLoop is an ordered sequence of sheet frames.
type AnimLoop []Frame

// Loop builds an AnimLoop from (col, row) pairs.
func Loop(frames ...[2]int) AnimLoop {
	l := make(AnimLoop, len(frames))
	for i, f := range frames {
		l[i] = Frame{Col: f[0], Row: f[1]}
	}
	return l
}

// Animation is a loop plus its playback state. Frame is the frame currently
// on screen; it only changes when the animation advances, so swapping Loop
// takes effect on the next step.
type Animation struct {
	Loop  AnimLoop
	Index int
	Start int // tick the animation started counting from
	Frame Frame
}

// NewAnimation starts loop at its first frame.
func NewAnimation(loop AnimLoop, start int) Animation {
	a := Animation{Loop: loop, Start: start}
	if len(loop) > 0 {
		a.Frame = loop[0]
	}
	return a
}

// Still returns a single-frame animation.
func Still(f Frame) Animation {
	return NewAnimation(AnimLoop{f}, 0)
}

// Current returns the frame on screen.
func (a *Animation) Current() Frame { return a.Frame }

// SetLoop swaps the loop without touching the index or the visible frame.
// Controllers reassign their loop every tick; only a real advance moves it.
func (a *Animation) SetLoop(l AnimLoop) { a.Loop = l }

// Due reports whether the animation steps on this tick.
func (a *Animation) Due(tick, delay int) bool {
	return (tick-a.Start)%delay == 0
}

// Advance steps to the next frame and reports whether the loop wrapped.
// An index left past the end by a loop swap wraps as well.
func (a *Animation) Advance() (wrapped bool) {
	if len(a.Loop) == 0 {
		return true
	}
	a.Index++
	if a.Index >= len(a.Loop) {
		a.Index = 0
		wrapped = true
	}
	a.Frame = a.Loop[a.Index]
	return wrapped
}

// Debris describes the particle left behind by a breaking tile.
type Debris struct {
	Sheet Sheet
	Loop  AnimLoop
}

// DebrisTypes holds the breakable tile varieties by name.
var DebrisTypes = map[string]Debris{
	"crate": {Sheet: SheetParticles, Loop: Loop([2]int{0, 1}, [2]int{1, 1})},
}

// ImpactLoop is the particle a laser leaves when it hits a tile.
var ImpactLoop = Loop([2]int{0, 0}, [2]int{1, 0})
