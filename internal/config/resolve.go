package config

import "gitlab.com/tozd/go/errors"

// Resolve finds, loads and validates the configuration that applies to a
// scan rooted at root. The returned path is empty when defaults were used.
func Resolve(root, home string) (Settings, string, error) {
	path, err := Find(root, home)
	if err != nil {
		return Settings{}, "", errors.Errorf("find config: %w", err)
	}
	layer, err := Load(path)
	if err != nil {
		return Settings{}, path, err
	}
	settings, err := Normalize(Merge(DefaultSettings(), layer))
	if err != nil {
		return Settings{}, path, errors.Errorf("%s: %w", path, err)
	}
	return settings, path, nil
}
