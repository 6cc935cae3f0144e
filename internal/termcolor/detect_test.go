package termcolor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":         Auto,
		"auto":     Auto,
		" Always ": Always,
		"NEVER":    Never,
		"never\n":  Never,
	}
	for input, want := range cases {
		got, err := ParseMode(input)
		require.NoError(t, err, "ParseMode(%q)", input)
		assert.Equal(t, want, got, "ParseMode(%q)", input)
	}

	_, err := ParseMode("rainbow")
	assert.ErrorContains(t, err, "unknown color mode: rainbow")
}

func pipeWriter(t *testing.T) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return w
}

func TestEnabledAutoConsultsEnvironment(t *testing.T) {
	out := pipeWriter(t)
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "pipe without env", env: nil, want: false},
		{name: "clicolor force", env: map[string]string{"CLICOLOR_FORCE": "1"}, want: true},
		{name: "force color level", env: map[string]string{"FORCE_COLOR": "3"}, want: true},
		{name: "force color zero", env: map[string]string{"FORCE_COLOR": "0"}, want: false},
		{name: "no color beats force", env: map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}, want: false},
		{name: "clicolor off beats force", env: map[string]string{"CLICOLOR": "0", "CLICOLOR_FORCE": "1"}, want: false},
		{name: "dumb terminal", env: map[string]string{"TERM": "Dumb", "FORCE_COLOR": "1"}, want: false},
		{name: "blank no color ignored", env: map[string]string{"NO_COLOR": " ", "FORCE_COLOR": "1"}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Enabled(Auto, out, tc.env))
		})
	}
}

func TestEnabledExplicitModes(t *testing.T) {
	out := pipeWriter(t)
	assert.True(t, Enabled(Always, nil, map[string]string{"NO_COLOR": "1"}))
	assert.False(t, Enabled(Never, out, map[string]string{"FORCE_COLOR": "1"}))
	assert.False(t, Enabled(Auto, nil, nil))
}

func TestEnvMap(t *testing.T) {
	got := EnvMap([]string{"FOO=bar", "BAZ", "", "QUX=1=2"})
	assert.Equal(t, map[string]string{"FOO": "bar", "BAZ": "", "QUX": "1=2"}, got)
}
