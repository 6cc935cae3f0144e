package config

import (
	"github.com/phyten/todochk/internal/engine"
	"github.com/phyten/todochk/internal/output"
)

// FileConfig is one configuration layer. Nil fields leave the lower layer
// untouched.
type FileConfig struct {
	Color           *string   `yaml:"color" toml:"color" json:"color"`
	Excludes        *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	MaxLineBytes    *int      `yaml:"max_line_bytes" toml:"max_line_bytes" json:"max_line_bytes"`
	MaxContextWidth *int      `yaml:"max_context_width" toml:"max_context_width" json:"max_context_width"`
	LogLevel        *string   `yaml:"log_level" toml:"log_level" json:"log_level"`
}

type Settings struct {
	Color           string
	Excludes        []string
	MaxLineBytes    int
	MaxContextWidth int
	LogLevel        string
}

func DefaultSettings() Settings {
	return Settings{
		Color:    "auto",
		LogLevel: "warn",
	}
}

// EngineOptions builds scan options rooted at root.
func (s Settings) EngineOptions(root string) engine.Options {
	return engine.Options{
		Root:         root,
		Excludes:     cloneStrings(s.Excludes),
		MaxLineBytes: s.MaxLineBytes,
	}
}

// TextOptions builds report options; color is decided by the caller.
func (s Settings) TextOptions(color bool) output.TextOptions {
	return output.TextOptions{
		Color:           color,
		MaxContextWidth: s.MaxContextWidth,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
