// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Background string            `yaml:"background,omitempty"`
	Code       string            `yaml:"code"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// Level is a parsed level file. Code is still in the level text format.
type Level struct {
	ID         string
	Name       string
	Background string
	Code       string
	Metadata   map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Code) == "" {
		return Level{}, fmt.Errorf("level %q has no code", yl.ID)
	}
	return Level{
		ID:         yl.ID,
		Name:       yl.Name,
		Background: yl.Background,
		Code:       yl.Code,
		Metadata:   yl.Metadata,
	}, nil
}

// MarshalYAML renders a level as a YAML level file.
func MarshalYAML(l Level) ([]byte, error) {
	data, err := yaml.Marshal(YAMLLevel{
		ID:         l.ID,
		Name:       l.Name,
		Background: l.Background,
		Code:       l.Code,
		Metadata:   l.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// ParseText wraps a bare level code file. The ID is the file name without
// its extension.
func ParseText(data []byte, filename string) (Level, error) {
	code := string(data)
	if strings.TrimSpace(code) == "" {
		return Level{}, fmt.Errorf("empty level file %s", filename)
	}
	base := path.Base(filename)
	id := strings.TrimSuffix(base, path.Ext(base))
	return Level{ID: id, Name: id, Code: code}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".lvl"}
}
