package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(StripANSI(s))
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// Rule returns ch repeated to the visible width of s.
func Rule(ch string, s string) string {
	n := VisibleWidth(s)
	if n <= 0 || ch == "" {
		return ""
	}
	return strings.Repeat(ch, n)
}

// TruncateByWidth cuts s down to w columns. When anything is dropped the
// ellipsis is appended if it fits inside w. Graphemes are never split and
// escape sequences are removed from a truncated result.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	tailW := runewidth.StringWidth(ellipsis)
	if tailW > w {
		ellipsis, tailW = "", 0
	}
	budget := w - tailW

	var b strings.Builder
	used, state := 0, -1
	rest := StripANSI(s)
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := runewidth.StringWidth(cluster)
		if used+cw > budget {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	return b.String() + ellipsis
}
