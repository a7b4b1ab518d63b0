package formats

import (
	"strings"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
win_distance: 1200
spawn: {x: 50, y: 500}
platforms:
  - {x: -6, y: 800, w: 700, h: 200}
  - {x: 900, y: 760, w: 300, h: 40}
`)
	level, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if level.ID != "demo" || level.Title != "Demo" || level.WinDistance != 1200 {
		t.Errorf("unexpected header: %+v", level)
	}
	if level.Spawn == nil || level.Spawn.X != 50 || level.Spawn.Y != 500 {
		t.Errorf("spawn = %+v", level.Spawn)
	}
	if len(level.Platforms) != 2 || level.Platforms[1].X != 900 || level.Platforms[1].H != 40 {
		t.Errorf("platforms = %+v", level.Platforms)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
id = "demo"
win_distance = 300.0

[[platforms]]
x = 0.0
y = 800.0
w = 100.0
h = 20.0
`)
	level, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML() failed: %v", err)
	}
	if level.Title != "demo" {
		t.Errorf("title should default to id, got %q", level.Title)
	}
	if level.Spawn != nil {
		t.Errorf("spawn should be nil when absent, got %+v", level.Spawn)
	}
	if len(level.Platforms) != 1 || level.Platforms[0].W != 100 {
		t.Errorf("platforms = %+v", level.Platforms)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".toml", "id = \"x\"\nwin_distanse = 10.0\n"},
		{".yaml", "id: x\nwin_distanse: 10\n"},
		{".yaml", "id: x\nwin_distance: 10\nplatforms:\n  - {x: 0, y: 800, width: 10, h: 10}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.ext, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.ext)
			if err == nil || !strings.Contains(err.Error(), "not found") && !strings.Contains(err.Error(), "unknown key") {
				t.Errorf("Parse(%s) = %v, expected unknown key error", tc.ext, err)
			}
		})
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	level, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML(nil) failed: %v", err)
	}
	if level.ID != "" || len(level.Platforms) != 0 {
		t.Errorf("expected empty level, got %+v", level)
	}
}

func TestParseByExtension(t *testing.T) {
	if _, err := Parse([]byte("id: a"), ".yml"); err != nil {
		t.Errorf("Parse(.yml) failed: %v", err)
	}
	if _, err := Parse(nil, ".json"); err == nil {
		t.Error("Parse(.json) should fail")
	}
}
