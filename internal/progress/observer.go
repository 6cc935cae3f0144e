package progress

import (
	"os"
	"time"
)

// Snapshot describes how far a scan has got. The total is unknown while the
// tree is being walked, so only running counts are reported.
type Snapshot struct {
	Files     int           `json:"files"`
	Findings  int           `json:"findings"`
	Path      string        `json:"path,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Observer receives a Snapshot after every file the engine reads and one
// final Snapshot when the walk ends.
type Observer interface {
	Publish(Snapshot)
	Done(Snapshot)
}

// NoopObserver discards every snapshot.
type NoopObserver struct{}

func (NoopObserver) Publish(Snapshot) {}
func (NoopObserver) Done(Snapshot)    {}

// ObserverFunc adapts a function to Observer. Done is ignored.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) Publish(s Snapshot) { f(s) }
func (ObserverFunc) Done(Snapshot)        {}

// Fanout forwards every snapshot to each observer in order.
type Fanout []Observer

// Join returns a single Observer for obs. Nil entries are dropped, a single
// survivor is returned as is, and an empty list yields NoopObserver.
func Join(obs ...Observer) Observer {
	var out Fanout
	for _, ob := range obs {
		if ob != nil {
			out = append(out, ob)
		}
	}
	switch len(out) {
	case 0:
		return NoopObserver{}
	case 1:
		return out[0]
	}
	return out
}

func (f Fanout) Publish(s Snapshot) {
	for _, ob := range f {
		ob.Publish(s)
	}
}

func (f Fanout) Done(s Snapshot) {
	for _, ob := range f {
		ob.Done(s)
	}
}

// ShouldShowProgress reports whether a transient indicator makes sense: both
// stdout and stderr must be terminals.
func ShouldShowProgress() bool {
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
