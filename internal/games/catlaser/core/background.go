package core

import "math"

// Background panel size. The sheet holds a back panel at column 0 and a
// front panel at column 4, both 64x128.
const (
	panelW = 64
	panelH = 128
)

// Background is a two-layer parallax backdrop.
type Background struct {
	Sheet Sheet
	// Back and Front are the layer scroll offsets from the last draw.
	Back, Front float64
}

// Draw scrolls the layers for cam and draws enough panels to cover the view.
// The back layer moves at a quarter of the camera speed, the front at half.
func (b *Background) Draw(dst Canvas, cam Camera, p Params) {
	b.Back = cam.X / 4
	b.Front = cam.X / 2
	frontY := p.ViewHeight - panelH

	for x := -float64(panelW); x <= p.ViewWidth+panelW; x += panelW {
		cam.Draw(dst, x+cam.X-math.Mod(b.Back, panelW), 0, b.Sheet, Frame{Col: 0}, panelW, panelH)
	}
	for x := -float64(panelW); x <= p.ViewWidth+panelW; x += panelW {
		cam.Draw(dst, x+cam.X-math.Mod(b.Front, panelW), frontY, b.Sheet, Frame{Col: 4}, panelW, panelH)
	}
}
