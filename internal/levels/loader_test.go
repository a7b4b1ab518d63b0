package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, id := range []string{"meadow", "steps", "flats"} {
		if !registry.Exists(id) {
			t.Errorf("built-in level %q should be registered", id)
		}
	}

	meadow, err := registry.Get(DefaultLevel)
	if err != nil {
		t.Fatal(err)
	}
	if meadow.WinDistance != 8230 {
		t.Errorf("meadow win distance = %v, expected 8230", meadow.WinDistance)
	}
	if len(meadow.Platforms) != 11 {
		t.Fatalf("meadow should have 11 platforms, got %d", len(meadow.Platforms))
	}
	first := meadow.Platforms[0]
	if first.X != -6 || first.Y != 800 || first.W != 700 || first.H != 200 {
		t.Errorf("first meadow platform = %+v", first)
	}
	if meadow.Spawn == nil || meadow.Spawn.X != 100 || meadow.Spawn.Y != 600 {
		t.Errorf("meadow spawn = %+v, expected (100, 600)", meadow.Spawn)
	}
	if meadow.Source != "builtin" {
		t.Errorf("meadow source = %q", meadow.Source)
	}

	steps, err := registry.Get("steps")
	if err != nil {
		t.Fatal(err)
	}
	if steps.Title != "Stepping Stones" || len(steps.Platforms) != 7 {
		t.Errorf("unexpected steps level: %q with %d platforms", steps.Title, len(steps.Platforms))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: b-level\nwin_distance: 100\nplatforms:\n  - {x: 0, y: 800, w: 100, h: 10}\n")
	writeFile(t, dir, "nested/a.toml", "id = \"a-level\"\nwin_distance = 50.0\n[[platforms]]\nx = 0.0\ny = 800.0\nw = 100.0\nh = 10.0\n")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "broken.yaml", "id: broken\nwin_distance: 10\nplatforms: []\n")

	loaded, err := NewLoader(dir).LoadAll()
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("expected error naming broken.yaml, got %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 valid levels, got %d", len(loaded))
	}
	if loaded[0].ID != "a-level" || loaded[1].ID != "b-level" {
		t.Errorf("levels should be sorted by ID, got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Title != "a-level" {
		t.Errorf("missing name should default to ID, got %q", loaded[0].Title)
	}
	if loaded[0].Source != "nested/a.toml" {
		t.Errorf("source = %q, expected nested/a.toml", loaded[0].Source)
	}
}

func TestLoaderIDFromFilename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "canyon.yml", "win_distance: 10\nplatforms:\n  - {x: 0, y: 900, w: 50, h: 50}\n")

	level, err := NewLoader(dir).LoadFile("canyon.yml")
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if level.ID != "canyon" {
		t.Errorf("ID = %q, expected canyon", level.ID)
	}
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.yaml", "id: zz-custom-dir\nname: Custom\nwin_distance: 300\nplatforms:\n  - {x: 0, y: 800, w: 100, h: 10}\n")

	n, err := RegisterDir(dir, 1000)
	if err != nil {
		t.Fatalf("RegisterDir() failed: %v", err)
	}
	if n != 1 || !registry.Exists("zz-custom-dir") {
		t.Errorf("RegisterDir() added %d levels", n)
	}

	// Registering the same directory twice collides on the ID
	if _, err := RegisterDir(dir, 1000); err == nil {
		t.Error("expected duplicate ID error")
	}
}

func TestLoadFileRejectsSpawnAboveSurface(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sky.yaml", "id: zz-sky\nwin_distance: 100\nspawn: {x: 100, y: -500}\nplatforms:\n  - {x: 0, y: 800, w: 100, h: 10}\n")

	if _, err := NewLoader(dir).LoadFile("sky.yaml"); err == nil || !strings.Contains(err.Error(), "spawn y") {
		t.Errorf("LoadFile() = %v, expected spawn error", err)
	}
}

func TestRegisterDirRejectsSpawnBelowSurface(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pit.yaml", "id: zz-pit\nwin_distance: 100\nspawn: {x: 100, y: 1500}\nplatforms:\n  - {x: 0, y: 800, w: 100, h: 10}\n")

	_, err := RegisterDir(dir, 1000)
	if err == nil || !strings.Contains(err.Error(), "pit.yaml") {
		t.Errorf("RegisterDir() = %v, expected error naming pit.yaml", err)
	}
	if registry.Exists("zz-pit") {
		t.Error("level with an off-surface spawn should not be registered")
	}
}
