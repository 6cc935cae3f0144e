package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/phyten/todochk/internal/marker"
	"github.com/phyten/todochk/internal/model"
	"github.com/phyten/todochk/internal/termcolor"
	"github.com/phyten/todochk/internal/textutil"
)

// TextOptions controls the human-readable report.
type TextOptions struct {
	Color           bool
	MaxContextWidth int // 0 = unlimited
}

// WriteText renders findings grouped by file.
//
// Findings are stable-sorted by FileID, so files keep traversal order and
// lines keep their order within a file. A new section starts whenever the
// file name changes. Each finding prints an underline rule sized to the
// visible width of the emphasized line, the context line when there is one,
// and the emphasized line itself. The trailing count line has no newline.
func WriteText(w io.Writer, findings []model.Finding, opts TextOptions) error {
	sorted := append([]model.Finding(nil), findings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FileID < sorted[j].FileID
	})

	current := ""
	for i, f := range sorted {
		if i == 0 || f.FileName != current {
			if _, err := fmt.Fprintf(w, "\n>>> In %s...\n", f.FileName); err != nil {
				return err
			}
			current = f.FileName
		}
		if err := writeFinding(w, f, opts); err != nil {
			return err
		}
	}

	count := termcolor.Apply(termcolor.CountStyle(), fmt.Sprintf("Found %d TODOs", len(findings)), opts.Color)
	_, err := fmt.Fprint(w, count)
	return err
}

func writeFinding(w io.Writer, f model.Finding, opts TextOptions) error {
	num := termcolor.Apply(termcolor.LineNumberStyle(), strconv.Itoa(f.Line), opts.Color)
	line := marker.Emphasize(fmt.Sprintf("Line %s: %s", num, f.Text), opts.Color)

	if _, err := fmt.Fprintln(w, textutil.Rule("_", line)); err != nil {
		return err
	}
	if f.HasContext() {
		ctx := f.Context
		if opts.MaxContextWidth > 0 {
			ctx = textutil.TruncateByWidth(ctx, opts.MaxContextWidth, "…")
		}
		if _, err := fmt.Fprintf(w, "Line %d: %s\n", f.ContextLine, ctx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
