package config

import "strings"

func Merge(base Settings, layers ...FileConfig) Settings {
	out := base
	for _, layer := range layers {
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.MaxLineBytes = ResolveInt(out.MaxLineBytes, layer.MaxLineBytes)
		out.MaxContextWidth = ResolveInt(out.MaxContextWidth, layer.MaxContextWidth)
		out.LogLevel = ResolveAndTrim(out.LogLevel, layer.LogLevel)
	}
	return out
}

func ResolveInt(current int, override *int) int {
	if override == nil {
		return current
	}
	return *override
}

func ResolveStrings(current []string, override *[]string) []string {
	if override == nil {
		return cloneStrings(current)
	}
	return cloneStrings(*override)
}

func ResolveAndTrim(current string, override *string) string {
	if override == nil {
		return current
	}
	return strings.TrimSpace(*override)
}
