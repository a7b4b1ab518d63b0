package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, ok := decodeValid(DefaultYAML())
	if !ok {
		t.Fatal("embedded default YAML should decode and validate")
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded defaults differ from DefaultPlatformerConfig():\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.75\nrules:\n  banner_duration: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Rules.BannerDuration != 500*time.Millisecond {
		t.Errorf("banner_duration = %v, expected 500ms", cfg.Rules.BannerDuration)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -20 {
		t.Errorf("jump_impulse = %v, expected default -20", cfg.Physics.JumpImpulse)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("viewport:\n  dead_zone_left: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPlatformer(invalid)
	if err == nil || !strings.Contains(err.Error(), "dead zone") {
		t.Errorf("expected dead zone validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
		errSub string
	}{
		{"defaults are valid", func(*PlatformerConfig) {}, ""},
		{"zero gravity", func(c *PlatformerConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"downward jump", func(c *PlatformerConfig) { c.Physics.JumpImpulse = 5 }, "jump_impulse"},
		{"zero size", func(c *PlatformerConfig) { c.Player.Height = 0 }, "player.width"},
		{"spawn off surface", func(c *PlatformerConfig) { c.Player.SpawnY = 2000 }, "spawn_y"},
		{"no banner", func(c *PlatformerConfig) { c.Rules.BannerDuration = 0 }, "banner_duration"},
		{"unknown color", func(c *PlatformerConfig) { c.Theme.Platform = "beige" }, "theme.platform"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errSub)
			}
		})
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	easy := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&easy, DifficultyEasy)
	if easy.Physics.Gravity != 0.4 {
		t.Errorf("easy gravity = %v, expected 0.4", easy.Physics.Gravity)
	}
	if easy.Rules.BannerDuration != 3*time.Second {
		t.Errorf("easy banner = %v, expected 3s", easy.Rules.BannerDuration)
	}

	normal := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultPlatformerConfig()) {
		t.Error("normal preset should not change the config")
	}

	hard := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&hard, DifficultyHard)
	if hard.Physics.Gravity != 0.625 || hard.Physics.MoveSpeed != 6 {
		t.Errorf("hard physics = %+v", hard.Physics)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, ok := ParseDifficulty(s); !ok {
			t.Errorf("ParseDifficulty(%q) should be accepted", s)
		}
	}
	if _, ok := ParseDifficulty("fixed"); ok {
		t.Error("ParseDifficulty(\"fixed\") should be rejected")
	}
}
