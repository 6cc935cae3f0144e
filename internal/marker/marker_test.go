package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phyten/todochk/internal/model"
)

func TestMatchesLineComments(t *testing.T) {
	cases := []struct {
		name string
		line string
		want model.MarkerKind
	}{
		{name: "slash colon", line: "// TODO: x", want: model.MarkerCanonical},
		{name: "hash dash", line: "# TODO - x", want: model.MarkerCanonical},
		{name: "sql space", line: "-- TODO x", want: model.MarkerCanonical},
		{name: "percent colon", line: "% TODO: x", want: model.MarkerCanonical},
		{name: "no space after leader", line: "#TODO: x", want: model.MarkerCanonical},
		{name: "trailing comment", line: "x := 1 // TODO: drop", want: model.MarkerCanonical},
		{name: "informal slash", line: "// todo: x", want: model.MarkerInformal},
		{name: "informal hash space", line: "# todo later", want: model.MarkerInformal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, Matches(tc.line), "Matches(%q)", tc.line)
			assert.Equal(t, tc.want, Kind(tc.line))
		})
	}
}

func TestMatchesBlockComments(t *testing.T) {
	lines := []string{
		"/* TODO: fix */",
		"<!-- TODO: later -->",
		"{- TODO haskell -}",
		"=begin TODO: ruby =end",
		" * TODO - wrap this *",
	}
	for _, line := range lines {
		assert.True(t, Matches(line), "Matches(%q)", line)
	}
}

func TestMatchesRejectsPlainText(t *testing.T) {
	lines := []string{
		"",
		"hello world",
		"no markers here",
		"TODO without a comment leader",
		"// todox is a tool",
		"// TODOS",
		"\xff\xfe",
	}
	for _, line := range lines {
		assert.False(t, Matches(line), "Matches(%q)", line)
		assert.Equal(t, model.MarkerNone, Kind(line))
	}
}

func TestMatchesUnicodeWhitespace(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "vertical tab", line: "// TODO\vx"},
		{name: "no-break space", line: "// TODO\u00a0x"},
		{name: "em space", line: "// TODO\u2003x"},
		{name: "ideographic space after leader", line: "#\u3000TODO: x"},
		{name: "next line before dash", line: "-- TODO\u0085- x"},
		{name: "block with nbsp", line: "/* TODO\u00a0x */"},
		{name: "informal nbsp", line: "// todo\u00a0x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, Matches(tc.line), "Matches(%q)", tc.line)
		})
	}
	assert.False(t, Matches("// TODO\u200bx"), "zero width space is not whitespace")
	assert.Equal(t, "TODO\u00a0x", Emphasize("// TODO\u00a0\u00a0x", false))
}

func TestMatchesInvalidUTF8(t *testing.T) {
	assert.True(t, Matches("\xff\xfe// TODO: x"))
}

func TestKindPrefersCanonical(t *testing.T) {
	assert.Equal(t, model.MarkerCanonical, Kind("// todo: a // TODO: b"))
}

func TestEmphasize(t *testing.T) {
	const styled = "\x1b[1;4;31mTODO\x1b[0m"
	cases := []struct {
		name  string
		line  string
		color bool
		want  string
	}{
		{name: "plain text untouched", line: "no markers here", color: true, want: "no markers here"},
		{name: "plain text untouched no color", line: "no markers here", want: "no markers here"},
		{name: "canonical no color", line: "// TODO: fix", want: "TODO fix"},
		{name: "canonical color", line: "// TODO: fix", color: true, want: styled + " fix"},
		{name: "informal no color", line: "// todo: fix", want: "todo fix"},
		{name: "both passes", line: "a // TODO: b # todo: c", want: "a TODO b todo c"},
		{name: "block", line: "/* TODO: fix */", want: "/TODO/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Emphasize(tc.line, tc.color))
		})
	}
}
