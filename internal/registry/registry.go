// Package registry provides a global registry of playable levels.
// Built-in levels register themselves in init() functions, allowing the
// platform to discover them without hardcoded dependencies; level files
// loaded at runtime are added the same way.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level is a static level layout: the ordered platform table plus the
// distance that must be scrolled to win.
type Level struct {
	ID          string
	Title       string
	WinDistance float64
	Spawn       *core.Vec  // Optional override of the configured spawn point
	Platforms   []core.Box // Initial platform rectangles, in draw order
	Source      string     // File the level was loaded from ("builtin" for embedded ones)
}

// Validate checks that the level can be played.
func (l Level) Validate() error {
	if l.ID == "" {
		return errors.New("level: missing id")
	}
	if l.WinDistance <= 0 {
		return fmt.Errorf("level %q: win_distance must be positive, got %v", l.ID, l.WinDistance)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("level %q: no platforms", l.ID)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("level %q: platform %d has non-positive size %vx%v", l.ID, i, p.W, p.H)
		}
	}
	if l.Spawn != nil && l.Spawn.Y <= 0 {
		return fmt.Errorf("level %q: spawn y must be positive, got %v", l.ID, l.Spawn.Y)
	}
	return nil
}

// FitsViewport checks that the spawn override lies on a surface of the
// given height. A spawn below the surface would lose every attempt at once.
func (l Level) FitsViewport(height float64) error {
	if l.Spawn != nil && l.Spawn.Y > height {
		return fmt.Errorf("level %q: spawn y %v is below the surface height %v", l.ID, l.Spawn.Y, height)
	}
	return nil
}

// clone returns a copy that shares no memory with l.
func (l Level) clone() Level {
	c := l
	c.Platforms = append([]core.Box(nil), l.Platforms...)
	if l.Spawn != nil {
		spawn := *l.Spawn
		c.Spawn = &spawn
	}
	return c
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID          string
	Title       string
	Platforms   int
	WinDistance float64
	Source      string
}

var (
	levels = make(map[string]Level)
	mu     sync.RWMutex
)

// Register adds a level to the registry.
// Typically called from an init() function for built-in levels.
// Panics if the level is invalid or its ID is already registered.
func Register(l Level) {
	if err := Add(l); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Add adds a level loaded at runtime. Unlike Register it reports problems
// as errors.
func Add(l Level) error {
	if err := l.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := levels[l.ID]; exists {
		return fmt.Errorf("level %q already registered", l.ID)
	}
	levels[l.ID] = l.clone()
	return nil
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(levels))
	for id, l := range levels {
		result = append(result, LevelInfo{
			ID:          id,
			Title:       l.Title,
			Platforms:   len(l.Platforms),
			WinDistance: l.WinDistance,
			Source:      l.Source,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the level with the given ID.
// Returns an error if the level ID is not registered.
func Get(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := levels[id]
	if !ok {
		return Level{}, fmt.Errorf("registry: unknown level %q", id)
	}

	return l.clone(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[id]
	return ok
}
