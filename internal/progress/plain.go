package progress

import (
	"fmt"
	"io"
	"sync"
)

// Plain writes one line per event, for pipes and CI logs.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPlain creates a plain text reporter.
func NewPlain(w io.Writer) *Plain {
	return &Plain{out: w}
}

// Status implements Reporter.
func (p *Plain) Status(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "status: %s\n", msg)
}

// Progress implements Reporter.
func (p *Plain) Progress(current, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total > 0 {
		_, _ = fmt.Fprintf(p.out, "[%d/%d] %d%%\n", current, total, percent(current, total))
	} else {
		_, _ = fmt.Fprintf(p.out, "[%d] pages\n", current)
	}
}

// percent mirrors int((current / total) * 100).
func percent(current, total int) int {
	if total <= 0 {
		return 0
	}
	return current * 100 / total
}
