// Package levels loads level layouts from files and registers the built-in
// levels with the registry.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// DefaultLevel is the level played when none is chosen.
const DefaultLevel = "meadow"

//go:embed data
var builtin embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader reading level files under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail to
// parse or validate are reported together in the returned error, alongside
// the levels that did load.
func (l *Loader) LoadAll() ([]registry.Level, error) {
	var (
		loaded []registry.Level
		bad    []string
	)

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			bad = append(bad, err.Error())
			return nil
		}
		loaded = append(loaded, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})

	if len(bad) > 0 {
		return loaded, fmt.Errorf("skipped level files: %s", strings.Join(bad, "; "))
	}
	return loaded, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (registry.Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return registry.Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := formats.Parse(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return registry.Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if err := level.Validate(); err != nil {
		return registry.Level{}, fmt.Errorf("file %s: %w", p, err)
	}
	level.Source = p
	return level, nil
}

// RegisterDir loads every level under dir and adds it to the registry.
// Levels must fit a surface of viewHeight world units.
// Returns the number of levels added.
func RegisterDir(dir string, viewHeight float64) (int, error) {
	loaded, loadErr := NewLoader(dir).LoadAll()

	added := 0
	for _, level := range loaded {
		if err := level.FitsViewport(viewHeight); err != nil {
			return added, fmt.Errorf("file %s: %w", filepath.Join(dir, filepath.FromSlash(level.Source)), err)
		}
		level.Source = filepath.Join(dir, filepath.FromSlash(level.Source))
		if err := registry.Add(level); err != nil {
			return added, err
		}
		added++
	}
	return added, loadErr
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

// Register the built-in levels with the registry
func init() {
	loader := &Loader{FS: builtin, Root: "data"}
	loaded, err := loader.LoadAll()
	if err != nil {
		panic(fmt.Sprintf("levels: built-in levels: %v", err))
	}
	for _, level := range loaded {
		level.Source = "builtin"
		registry.Register(level)
	}
}
