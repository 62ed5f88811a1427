package levels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
)

// Layout is the grid of codes a level is built from. Cells are stored
// column-major, index x*Height+y; an empty string is an empty cell.
type Layout struct {
	Width, Height int
	Tiles         []string
	Sprites       []string
	// Background is not part of the level text.
	Background core.Sheet
}

// NewLayout returns an empty w x h layout.
func NewLayout(w, h int) Layout {
	return Layout{
		Width:   w,
		Height:  h,
		Tiles:   make([]string, w*h),
		Sprites: make([]string, w*h),
	}
}

func (l Layout) index(x, y int) (int, bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0, false
	}
	return x*l.Height + y, true
}

// Tile returns the tile code at (x, y).
func (l Layout) Tile(x, y int) string {
	if i, ok := l.index(x, y); ok {
		return l.Tiles[i]
	}
	return ""
}

// Sprite returns the sprite code at (x, y).
func (l Layout) Sprite(x, y int) string {
	if i, ok := l.index(x, y); ok {
		return l.Sprites[i]
	}
	return ""
}

// SetTile sets the tile code at (x, y). Out-of-range cells are ignored.
func (l Layout) SetTile(x, y int, code string) {
	if i, ok := l.index(x, y); ok {
		l.Tiles[i] = code
	}
}

// SetSprite sets the sprite code at (x, y). Out-of-range cells are ignored.
func (l Layout) SetSprite(x, y int, code string) {
	if i, ok := l.index(x, y); ok {
		l.Sprites[i] = code
	}
}

// Parse reads level text:
//
//	w,h
//	code*count,code*count,...   tile runs, column-major, "_" empty
//	code,code,,code,...         one sprite code per cell, empty for none
//
// Zero-count runs are skipped. The sprite line may be missing.
func Parse(text string) (Layout, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 2 {
		return Layout{}, fmt.Errorf("levels: need header and tile lines: %w", ErrMalformed)
	}

	w, h, err := parseHeader(lines[0])
	if err != nil {
		return Layout{}, err
	}
	l := NewLayout(w, h)

	if err := parseRuns(lines[1], l.Tiles); err != nil {
		return Layout{}, err
	}
	if len(lines) > 2 {
		parseSprites(lines[2], l.Sprites)
	}
	return l, nil
}

func parseHeader(line string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return 0, 0, fmt.Errorf("levels: header %q: %w", line, ErrMalformed)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("levels: width %q: %w", ws, ErrMalformed)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("levels: height %q: %w", hs, ErrMalformed)
	}
	return w, h, nil
}

func parseRuns(line string, cells []string) error {
	pos := 0
	for _, item := range strings.Split(line, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		i := strings.LastIndex(item, "*")
		if i <= 0 {
			return fmt.Errorf("levels: run %q: %w", item, ErrMalformed)
		}
		code := item[:i]
		count, err := strconv.Atoi(item[i+1:])
		if err != nil || count < 0 {
			return fmt.Errorf("levels: run count %q: %w", item, ErrMalformed)
		}
		if pos+count > len(cells) {
			return fmt.Errorf("levels: runs cover more than %d cells: %w", len(cells), ErrMalformed)
		}
		if code == Empty {
			pos += count
			continue
		}
		for range count {
			cells[pos] = code
			pos++
		}
	}
	return nil
}

func parseSprites(line string, cells []string) {
	for i, code := range strings.Split(line, ",") {
		if i >= len(cells) {
			break
		}
		code = strings.TrimSpace(code)
		if code == Empty {
			code = ""
		}
		cells[i] = code
	}
}

// String encodes the layout in the level format. A level whose first cell
// holds a tile starts with an empty "_*0" run, and every sprite cell is
// followed by a comma.
func (l Layout) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d\n", l.Width, l.Height)

	last, count := Empty, 0
	for _, code := range l.Tiles {
		if code == "" {
			code = Empty
		}
		if code == last {
			count++
			continue
		}
		fmt.Fprintf(&b, "%s*%d,", last, count)
		last, count = code, 1
	}
	fmt.Fprintf(&b, "%s*%d\n", last, count)

	for _, code := range l.Sprites {
		b.WriteString(code)
		b.WriteByte(',')
	}
	return b.String()
}

// Validate checks every code against the registry.
func (l Layout) Validate() error {
	for i, code := range l.Tiles {
		if code != "" && !IsTileCode(code) {
			return fmt.Errorf("levels: tile %q at (%d,%d): %w", code, i/l.Height, i%l.Height, ErrUnknownCode)
		}
	}
	players := 0
	for i, code := range l.Sprites {
		if code == "" {
			continue
		}
		if !IsSpriteCode(code) {
			return fmt.Errorf("levels: sprite %q at (%d,%d): %w", code, i/l.Height, i%l.Height, ErrUnknownCode)
		}
		if code == CodePlayer {
			players++
		}
	}
	if players > 1 {
		return fmt.Errorf("levels: %d players: %w", players, ErrMalformed)
	}
	return nil
}

// Build creates a world from the layout and textures its connected tiles.
func (l Layout) Build(p core.Params) (*core.World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	w := core.NewWorld(l.Width, l.Height)
	w.Background = l.Background

	for i, code := range l.Tiles {
		if code == "" {
			continue
		}
		x, y := i/l.Height, i%l.Height
		t, err := NewTile(code, x, y, p)
		if err != nil {
			return nil, err
		}
		w.SetTile(x, y, t)
	}
	w.RetextureAll()

	for i, code := range l.Sprites {
		if code == "" {
			continue
		}
		x, y := i/l.Height, i%l.Height
		s, err := NewSprite(code, x, y, p)
		if err != nil {
			return nil, err
		}
		if !w.PlaceSprite(x, y, s) {
			return nil, fmt.Errorf("levels: sprite %q at (%d,%d) not placed: %w", code, x, y, ErrMalformed)
		}
	}
	return w, nil
}

// Capture reads the current grid and coded sprites of w back into a layout.
// Sprites are recorded at their spawn cell.
func Capture(w *core.World) Layout {
	l := NewLayout(w.Width, w.Height)
	l.Background = w.Background
	for t := range w.Tiles() {
		l.SetTile(t.GX, t.GY, t.Code)
	}
	for _, s := range w.Sprites() {
		if s.Despawned() || s.Code == "" {
			continue
		}
		x, y := s.SpawnCell()
		l.SetSprite(x, y, s.Code)
	}
	return l
}

// Decode parses text and builds its world on the day background.
func Decode(text string, p core.Params) (*core.World, error) {
	l, err := Parse(text)
	if err != nil {
		return nil, err
	}
	l.Background = core.SheetBgNature
	return l.Build(p)
}

// Encode serializes the grid and coded sprites of w.
func Encode(w *core.World) string {
	return Capture(w).String()
}
