// Package progress provides the status and progress sinks driven by an
// index run. Sinks are purely observational.
package progress

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Reporter receives human-readable status lines and page progress.
type Reporter interface {
	// Status reports a stage change such as "extracting text".
	Status(msg string)
	// Progress reports that current of total pages are done.
	Progress(current, total int)
}

// Nop discards everything.
type Nop struct{}

// Status implements Reporter.
func (Nop) Status(string) {}

// Progress implements Reporter.
func (Nop) Progress(int, int) {}

// New picks a Reporter for w: Nop when quiet, Terminal for a TTY,
// Plain otherwise.
func New(w io.Writer, quiet bool) Reporter {
	if quiet || w == nil {
		return Nop{}
	}
	if IsTTY(w) {
		return NewTerminal(w)
	}
	return NewPlain(w)
}

// IsTTY checks if w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Event is one call recorded by Recorder.
type Event struct {
	Status  string
	Current int
	Total   int
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Status implements Reporter.
func (r *Recorder) Status(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Status: msg})
}

// Progress implements Reporter.
func (r *Recorder) Progress(current, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Current: current, Total: total})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Statuses returns only the status messages, in order.
func (r *Recorder) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Status != "" {
			out = append(out, e.Status)
		}
	}
	return out
}
