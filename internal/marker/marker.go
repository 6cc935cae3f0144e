// Package marker recognises TODO markers inside comments.
//
// Two shapes are accepted for both the upper-case and the lower-case keyword:
// a line comment leader (//, #, --, %) followed by the keyword and a
// separator, or a block comment opener (*, =begin, {-, <!--) with the keyword
// somewhere before a matching closer. The block shape may span embedded
// newlines, but callers feed one line at a time.
package marker

import (
	"regexp"

	"github.com/phyten/todochk/internal/model"
	"github.com/phyten/todochk/internal/termcolor"
)

// ws is the Unicode White_Space set; RE2's \s is ASCII only and lacks \v.
const ws = `[\t-\r\x{85}\p{Z}]`

const (
	canonicalPattern = `(//|#|--|%)` + ws + `*(TODO:|TODO` + ws + `*-|TODO` + ws + `)|(\*|=begin|\{-|<!--)(?s:.*)(TODO:|TODO` + ws + `*-` + ws + `|TODO` + ws + `)(?s:.*)(\*|=end|-\}|-->)`
	informalPattern  = `(//|#|--|%)` + ws + `*(todo:|todo` + ws + `*-|todo` + ws + `)|(\*|=begin|\{-|<!--)(?s:.*)(todo:|todo` + ws + `*-` + ws + `|todo` + ws + `)(?s:.*)(\*|=end|-\}|-->)`
)

var (
	// Canonical matches the upper-case TODO marker.
	Canonical = regexp.MustCompile(canonicalPattern)
	// Informal matches the lower-case todo marker.
	Informal = regexp.MustCompile(informalPattern)
)

// Matches reports whether line holds a TODO marker in either case.
func Matches(line string) bool {
	return Canonical.MatchString(line) || Informal.MatchString(line)
}

// Kind classifies line. The upper-case form wins when both are present.
func Kind(line string) model.MarkerKind {
	switch {
	case Canonical.MatchString(line):
		return model.MarkerCanonical
	case Informal.MatchString(line):
		return model.MarkerInformal
	default:
		return model.MarkerNone
	}
}

// Emphasize replaces every canonical match with a styled "TODO", then every
// informal match of the result with a styled "todo". Text outside the
// matches is left untouched. The two passes must run in this order.
//
// Emphasize is not idempotent: styling escapes added by the first call can
// become part of a match on a second call.
func Emphasize(line string, color bool) string {
	style := termcolor.MarkerStyle()
	out := Canonical.ReplaceAllLiteralString(line, termcolor.Apply(style, string(model.MarkerCanonical), color))
	return Informal.ReplaceAllLiteralString(out, termcolor.Apply(style, string(model.MarkerInformal), color))
}
