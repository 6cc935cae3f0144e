package termcolor

import (
	"strconv"
	"strings"
)

// Style is an SGR annotation. It never changes the text it wraps, so width
// calculations should be done on the unstyled string.
type Style struct {
	Bold      bool
	Underline bool
	FGBasic   *int
}

const reset = "\x1b[0m"

// Apply wraps text in the escapes for s. With enabled false, an empty text
// or a zero Style the text comes back unchanged.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	prefix := s.prefix()
	if prefix == "" {
		return text
	}
	return prefix + text + reset
}

// prefix renders the codes as bold, underline, then foreground.
func (s Style) prefix() string {
	var params []string
	if s.Bold {
		params = append(params, "1")
	}
	if s.Underline {
		params = append(params, "4")
	}
	if s.FGBasic != nil {
		params = append(params, strconv.Itoa(30+*s.FGBasic))
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
