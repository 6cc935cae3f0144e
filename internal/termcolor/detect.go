package termcolor

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/term"
)

// Mode is the colour preference read from the config file.
type Mode string

const (
	Auto   Mode = "auto"
	Always Mode = "always"
	Never  Mode = "never"
)

func ParseMode(v string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(v))); m {
	case "":
		return Auto, nil
	case Auto, Always, Never:
		return m, nil
	default:
		return Auto, errors.Errorf("unknown color mode: %s", v)
	}
}

// Enabled decides whether the report written to out carries escape
// sequences. Under Auto the environment is consulted first:
//
//	TERM=dumb, NO_COLOR=<any>, CLICOLOR=0      off
//	CLICOLOR_FORCE or FORCE_COLOR not "0"       on
//
// and otherwise colour follows whether out is a terminal.
func Enabled(mode Mode, out *os.File, env map[string]string) bool {
	switch mode {
	case Always:
		return true
	case Never:
		return false
	}
	if envDisables(env) {
		return false
	}
	if envForces(env) {
		return true
	}
	return IsTerminal(out)
}

func envDisables(env map[string]string) bool {
	return strings.EqualFold(lookup(env, "TERM"), "dumb") ||
		lookup(env, "NO_COLOR") != "" ||
		lookup(env, "CLICOLOR") == "0"
}

func envForces(env map[string]string) bool {
	for _, key := range []string{"CLICOLOR_FORCE", "FORCE_COLOR"} {
		if v := lookup(env, key); v != "" && v != "0" {
			return true
		}
	}
	return false
}

func lookup(env map[string]string, key string) string {
	return strings.TrimSpace(env[key])
}

// EnvMap turns os.Environ style entries into a map. Entries without "=" map
// to the empty string.
func EnvMap(entries []string) map[string]string {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
