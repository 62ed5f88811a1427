package core

// Canvas receives draw calls in screen pixels. w and h are the size of the
// sheet region, 16x16 for tiles and sprites.
type Canvas interface {
	DrawImage(x, y float64, sheet Sheet, col, row, w, h int)
}

// DrawCmd is one recorded draw call.
type DrawCmd struct {
	X, Y     float64
	Sheet    Sheet
	Col, Row int
	W, H     int
}

// DrawList records draw calls so a tick can be replayed onto a real
// surface later, in the order they were issued.
type DrawList struct {
	Cmds []DrawCmd
}

// DrawImage implements Canvas.
func (d *DrawList) DrawImage(x, y float64, sheet Sheet, col, row, w, h int) {
	d.Cmds = append(d.Cmds, DrawCmd{X: x, Y: y, Sheet: sheet, Col: col, Row: row, W: w, H: h})
}

// Reset empties the list and keeps its capacity.
func (d *DrawList) Reset() {
	d.Cmds = d.Cmds[:0]
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.Cmds)
}

// Replay issues every recorded command to c.
func (d *DrawList) Replay(c Canvas) {
	for _, cmd := range d.Cmds {
		c.DrawImage(cmd.X, cmd.Y, cmd.Sheet, cmd.Col, cmd.Row, cmd.W, cmd.H)
	}
}

// Camera is the view's top-left corner in world pixels.
type Camera struct {
	X, Y float64
}

// Follow places the camera CameraLead pixels left of targetX, kept inside a
// level levelWidth tiles wide. Levels narrower than the view pin it to 0.
func (c *Camera) Follow(targetX float64, levelWidth int, p Params) {
	limit := float64(levelWidth*TileSize) - p.ViewWidth
	x := targetX - p.CameraLead
	switch {
	case limit <= 0 || x < 0:
		x = 0
	case x > limit:
		x = limit
	}
	c.X = x
}

// Draw forwards a draw call to dst in screen coordinates.
func (c Camera) Draw(dst Canvas, x, y float64, sheet Sheet, f Frame, w, h int) {
	if dst == nil {
		return
	}
	dst.DrawImage(x-c.X, y-c.Y, sheet, f.Col, f.Row, w, h)
}

// Visible reports whether a w x h region at world (x, y) intersects a view
// of the given size.
func (c Camera) Visible(x, y, w, h, viewW, viewH float64) bool {
	return x+w > c.X && x < c.X+viewW && y+h > c.Y && y < c.Y+viewH
}
