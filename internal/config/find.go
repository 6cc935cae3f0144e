package config

import (
	"os"
	"path/filepath"
	"strings"
)

var configFilenames = []string{
	".todochk.yaml",
	".todochk.yml",
	".todochk.toml",
	".todochk.json",
}

// Find looks for a config file in startDir and each of its parents, then in
// home. It returns "" when none exists.
func Find(startDir, home string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if candidate := firstExisting(dir); candidate != "" {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := strings.TrimSpace(home)
	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}
	if homeDir != "" {
		return firstExisting(homeDir), nil
	}
	return "", nil
}

func firstExisting(dir string) string {
	for _, name := range configFilenames {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
