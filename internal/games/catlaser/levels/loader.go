package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level is a named level file.
type Level struct {
	ID       string
	Name     string
	Layout   Layout
	Metadata map[string]string
	FilePath string
}

// Build creates the level's world.
func (l *Level) Build(p core.Params) (*core.World, error) {
	w, err := l.Layout.Build(p)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// Code returns the level text.
func (l *Level) Code() string {
	return l.Layout.String()
}

// Loader loads level files from a file system tree.
type Loader struct {
	FS fs.FS
}

// NewLoader creates a loader rooted at a directory.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// Builtin returns a loader over the levels shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{FS: sub}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, p)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	layout, err := Parse(parsed.Code)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	layout.Background = core.SheetBgNature
	if parsed.Background != "" {
		layout.Background = core.Sheet(parsed.Background)
	}
	if err := layout.Validate(); err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	name := parsed.Name
	if name == "" {
		name = parsed.ID
	}
	return Level{
		ID:       parsed.ID,
		Name:     name,
		Layout:   layout,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, p string) (formats.Level, error) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".lvl":
		return formats.ParseText(data, p)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
