package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// aesthetic mirrors the classic "▰▱" bar spinner.
var aesthetic = []string{
	"▰▱▱▱▱▱▱",
	"▰▰▱▱▱▱▱",
	"▰▰▰▱▱▱▱",
	"▰▰▰▰▱▱▱",
	"▰▰▰▰▰▱▱",
	"▰▰▰▰▰▰▱",
	"▰▰▰▰▰▰▰",
	"▰▱▱▱▱▱▱",
}

// Spinner is a transient indicator that also observes scan progress.
type Spinner interface {
	Observer
	Stop()
}

// StartSpinner starts a spinner with text on w. When enabled is false a
// no-op spinner is returned and nothing is written.
func StartSpinner(w io.Writer, text string, enabled bool) (Spinner, error) {
	if !enabled {
		return noopSpinner{}, nil
	}
	if w == nil {
		w = os.Stderr
	}
	sp, err := pterm.DefaultSpinner.
		WithWriter(w).
		WithSequence(aesthetic...).
		WithDelay(100 * time.Millisecond).
		WithRemoveWhenDone(true).
		Start(text)
	if err != nil {
		return nil, err
	}
	return &ptermSpinner{sp: sp, text: text}, nil
}

type ptermSpinner struct {
	mu      sync.Mutex
	sp      *pterm.SpinnerPrinter
	text    string
	stopped bool
}

func (s *ptermSpinner) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.sp.UpdateText(fmt.Sprintf("%s (%d files, %d todos)", s.text, snap.Files, snap.Findings))
}

func (s *ptermSpinner) Done(Snapshot) {
	s.Stop()
}

func (s *ptermSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	_ = s.sp.Stop()
}

type noopSpinner struct {
	NoopObserver
}

func (noopSpinner) Stop() {}
