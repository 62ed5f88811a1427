package catlaser

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	sim "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
)

// One terminal cell covers CellW x CellH world pixels, so a 16x16 tile is
// two cells wide and one cell tall.
const (
	CellW = 8
	CellH = 16
)

// glyph is the two-cell picture of a 16 pixel wide image.
type glyph struct {
	Left, Right rune
	Color       core.Color
}

var (
	grassGlyph   = glyph{'▓', '▓', core.ColorGreen}
	dirtGlyph    = glyph{'█', '█', core.ColorBrown}
	crateGlyph   = glyph{'[', ']', core.ColorYellow}
	spikeGlyph   = glyph{'^', '^', core.ColorBrightWhite}
	blockGlyph   = glyph{'█', '█', core.ColorGray}
	impactGlyphs = [2]glyph{{'*', ' ', core.ColorBrightYellow}, {'+', ' ', core.ColorYellow}}
	debrisGlyphs = [2]glyph{{'%', ':', core.ColorBrown}, {':', '.', core.ColorBrown}}
)

// Cat sheet rows: 0-1 idle, 2 rising, 3 crouching, 4-5 charging.
// Column 0 faces left and column 1 faces right.
var catGlyphs = [6]glyph{
	{'~', '@', core.ColorWhite},
	{'-', '@', core.ColorWhite},
	{'/', '@', core.ColorWhite},
	{'_', 'o', core.ColorWhite},
	{'~', '@', core.ColorBrightCyan},
	{'~', '@', core.ColorCyan},
}

// Background panel profiles in cells counted up from the panel bottom.
var (
	mountainProfile = [8]int{2, 3, 5, 6, 6, 5, 3, 2}
	hillProfile     = [8]int{1, 2, 2, 3, 3, 2, 2, 1}
)

// screenCanvas replays simulation draw calls as glyphs onto a screen
// region starting at row top and rows cells tall.
type screenCanvas struct {
	dst  *core.Screen
	top  int
	rows int
}

// cell converts a screen pixel position to a cell, rounding to the nearest.
func (c screenCanvas) cell(x, y float64) (int, int) {
	return int(math.Round(x / CellW)), int(math.Round(y / CellH))
}

func (c screenCanvas) set(cx, cy int, r rune, color core.Color) {
	if cy < 0 || cy >= c.rows || r == ' ' {
		return
	}
	c.dst.SetColored(cx, c.top+cy, r, color)
}

func (c screenCanvas) put(cx, cy int, g glyph) {
	c.set(cx, cy, g.Left, g.Color)
	c.set(cx+1, cy, g.Right, g.Color)
}

// DrawImage implements sim.Canvas.
func (c screenCanvas) DrawImage(x, y float64, sheet sim.Sheet, col, row, w, h int) {
	cx, cy := c.cell(x, y)
	f := sim.Frame{Col: col, Row: row}

	switch sheet {
	case sim.SheetNature:
		c.put(cx, cy, natureGlyph(f))
	case sim.SheetTiles:
		c.put(cx, cy, blockGlyph)
	case sim.SheetCat:
		c.drawCat(cx, cy, f)
	case sim.SheetParticles:
		switch row {
		case 0:
			c.put(cx, cy, impactGlyphs[col%2])
		default:
			c.put(cx, cy, debrisGlyphs[col%2])
		}
	case sim.SheetBgNature:
		c.drawPanel(cx, cy, w, h, col, core.ColorDimBlue, core.ColorDarkGreen)
	case sim.SheetBgNatureSunset:
		c.drawPanel(cx, cy, w, h, col, core.ColorOrange, core.ColorRed)
	}
}

func (c screenCanvas) drawCat(cx, cy int, f sim.Frame) {
	if f.Col == 2 && f.Row == 4 {
		// Laser: a single bolt in the middle of the image.
		c.set(cx+1, cy, '=', core.ColorBrightRed)
		return
	}
	g := catGlyphs[min(max(f.Row, 0), len(catGlyphs)-1)]
	if f.Col == 0 {
		g.Left, g.Right = g.Right, g.Left
	}
	c.put(cx, cy, g)
}

// drawPanel draws a far mountain panel (col 0) or a near hill panel.
func (c screenCanvas) drawPanel(cx, cy, w, h, col int, far, near core.Color) {
	profile, color, r := hillProfile, near, 'n'
	if col == 0 {
		profile, color, r = mountainProfile, far, '^'
	}
	cols := w / CellW
	bottom := cy + h/CellH - 1
	for i := 0; i < cols; i++ {
		height := profile[i*len(profile)/cols]
		c.set(cx+i, bottom-height+1, r, color)
	}
}

// natureGlyph picks the glyph for a nature sheet frame. Connected tiles
// with an open top are grass, the rest dirt.
func natureGlyph(f sim.Frame) glyph {
	switch f {
	case frameCrate:
		return crateGlyph
	case frameSpike:
		return spikeGlyph
	}
	key, ok := sim.KeyForFrame(f)
	if !ok {
		return dirtGlyph
	}
	if openTop(key[0]) || openTop(key[1]) {
		return grassGlyph
	}
	return dirtGlyph
}

// openTop reports whether a top corner symbol has no tile above it.
func openTop(b byte) bool {
	return b == 'c' || b == 'h'
}

var (
	frameCrate = sim.Frame{Col: 0, Row: 7}
	frameSpike = sim.Frame{Col: 1, Row: 7}
)
