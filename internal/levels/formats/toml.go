package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ParseTOML parses a TOML level file. Platforms are an array of tables:
//
//	[[platforms]]
//	x = -6
//	y = 800
//	w = 700
//	h = 200
func ParseTOML(data []byte) (registry.Level, error) {
	var fl fileLevel
	md, err := toml.Decode(string(data), &fl)
	if err != nil {
		return registry.Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return registry.Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return fl.toLevel(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes data to the parser for the given extension.
func Parse(data []byte, ext string) (registry.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return registry.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
