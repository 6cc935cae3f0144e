package termcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	red, green := Red, Green
	cases := []struct {
		name    string
		style   Style
		text    string
		enabled bool
		want    string
	}{
		{name: "bold red", style: Style{Bold: true, FGBasic: &red}, text: "TODO", enabled: true, want: "\x1b[1;31mTODO\x1b[0m"},
		{name: "underline only", style: Style{Underline: true}, text: "x", enabled: true, want: "\x1b[4mx\x1b[0m"},
		{name: "code order", style: Style{FGBasic: &green, Underline: true, Bold: true}, text: "x", enabled: true, want: "\x1b[1;4;32mx\x1b[0m"},
		{name: "empty style", style: Style{}, text: "x", enabled: true, want: "x"},
		{name: "disabled", style: Style{Bold: true}, text: "x", enabled: false, want: "x"},
		{name: "empty text", style: Style{Bold: true}, text: "", enabled: true, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Apply(tc.style, tc.text, tc.enabled))
		})
	}
}
