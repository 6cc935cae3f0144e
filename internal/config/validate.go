package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/phyten/todochk/internal/termcolor"
)

// Normalize canonicalises values and rejects anything the scanner cannot use.
func Normalize(s Settings) (Settings, error) {
	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return s, err
	}
	s.Color = string(mode)

	level := strings.ToLower(strings.TrimSpace(s.LogLevel))
	if level == "" {
		level = "warn"
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return s, errors.Errorf("invalid log_level: %s", s.LogLevel)
	}
	s.LogLevel = level

	if s.MaxLineBytes < 0 {
		return s, errors.New("max_line_bytes must not be negative")
	}
	if s.MaxContextWidth < 0 {
		return s, errors.New("max_context_width must not be negative")
	}
	for _, pattern := range s.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return s, errors.Errorf("invalid exclude pattern: %q", pattern)
		}
	}
	return s, nil
}
