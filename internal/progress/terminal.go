package progress

import (
	"fmt"
	"io"
	"sync"

	pbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	// statusStyle for stage lines
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// Terminal draws styled status lines and an in-place progress bar.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	bar     pbar.Model
	drawing bool
}

// NewTerminal creates a reporter for interactive terminals.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		out: w,
		bar: pbar.New(
			pbar.WithSolidFill("81"),
			pbar.WithWidth(40),
			pbar.WithoutPercentage(),
		),
	}
}

// Status implements Reporter.
func (t *Terminal) Status(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endLine()
	_, _ = fmt.Fprintf(t.out, "%s %s\n", statusStyle.Render("›"), msg)
}

// Progress implements Reporter. The bar is redrawn on the same line.
func (t *Terminal) Progress(current, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ratio float64
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	_, _ = fmt.Fprintf(t.out, "\r%s %s",
		t.bar.ViewAs(ratio),
		dimStyle.Render(fmt.Sprintf("%d/%d pages", current, total)),
	)
	t.drawing = true

	if total > 0 && current >= total {
		t.endLine()
	}
}

func (t *Terminal) endLine() {
	if t.drawing {
		_, _ = fmt.Fprintln(t.out)
		t.drawing = false
	}
}
