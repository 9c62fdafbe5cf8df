package progress

import (
	"fmt"
	"io"
	"time"
)

// Summary describes a finished run.
type Summary struct {
	Input    string
	Mode     string
	Pages    int
	Terms    int
	Output   string
	Duration time.Duration
}

// FormatSummary renders the completion box.
func FormatSummary(w io.Writer, s Summary) {
	content := fmt.Sprintf("%s %s\n%s %s  %s %d  %s %d\n%s %s\n%s %.1fs  %s",
		dimStyle.Render("Input:"), s.Input,
		dimStyle.Render("Mode:"), s.Mode,
		dimStyle.Render("Pages:"), s.Pages,
		dimStyle.Render("Terms:"), s.Terms,
		dimStyle.Render("Output:"), successStyle.Render(s.Output),
		dimStyle.Render("Duration:"), s.Duration.Seconds(),
		successStyle.Render("OK"),
	)
	_, _ = fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatError renders a failure line with an optional hint.
func FormatError(w io.Writer, err error, hint string) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorStyle.Render("ERROR"), err)
	if hint != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", dimStyle.Render("hint:"), hint)
	}
}
