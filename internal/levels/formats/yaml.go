// Package formats provides pluggable level file format parsers.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// fileLevel is the on-disk structure shared by every level format.
type fileLevel struct {
	ID          string         `yaml:"id" toml:"id"`
	Name        string         `yaml:"name" toml:"name"`
	WinDistance float64        `yaml:"win_distance" toml:"win_distance"`
	Spawn       *filePoint     `yaml:"spawn,omitempty" toml:"spawn,omitempty"`
	Platforms   []filePlatform `yaml:"platforms" toml:"platforms"`
}

// filePoint represents an optional spawn point.
type filePoint struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// filePlatform represents a single platform rectangle.
type filePlatform struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// toLevel converts the decoded file into a registry level.
func (f fileLevel) toLevel() registry.Level {
	level := registry.Level{
		ID:          f.ID,
		Title:       f.Name,
		WinDistance: f.WinDistance,
		Platforms:   make([]core.Box, 0, len(f.Platforms)),
	}
	if level.Title == "" {
		level.Title = f.ID
	}
	if f.Spawn != nil {
		level.Spawn = &core.Vec{X: f.Spawn.X, Y: f.Spawn.Y}
	}
	for _, p := range f.Platforms {
		level.Platforms = append(level.Platforms, core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	return level
}

// ParseYAML parses a YAML level file. Unknown keys are errors.
func ParseYAML(data []byte) (registry.Level, error) {
	var fl fileLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fl); err != nil && !errors.Is(err, io.EOF) {
		return registry.Level{}, fmt.Errorf("yaml decode: %w", err)
	}
	return fl.toLevel(), nil
}
