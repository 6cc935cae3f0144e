package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

var keyMap = map[string]string{
	"color":             "color",
	"colour":            "color",
	"exclude":           "exclude",
	"excludes":          "exclude",
	"max_line_bytes":    "max_line_bytes",
	"max_context_width": "max_context_width",
	"log_level":         "log_level",
}

// Load reads one config file. The format is chosen by extension. An empty
// path yields an empty layer.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Errorf("read config: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, errors.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, errors.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, errors.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, errors.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, errors.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (FileConfig, error) {
	var cfg FileConfig
	for key, value := range raw {
		canonical, ok := keyMap[normalizeKey(key)]
		if !ok {
			return cfg, errors.Errorf("unknown config key: %s", key)
		}
		switch canonical {
		case "color":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.Color = &str
		case "log_level":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.LogLevel = &str
		case "exclude":
			list, err := expectStringList(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.Excludes = &list
		case "max_line_bytes":
			n, err := expectInt(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.MaxLineBytes = &n
		case "max_context_width":
			n, err := expectInt(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.MaxContextWidth = &n
		}
	}
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	default:
		return "", errors.Errorf("expected string for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, errors.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, errors.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, errors.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return normalizeList(strings.Split(v, ",")), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, errors.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
