package source

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	ierrors "github.com/mutro/termindex/internal/errors"
)

// Pdftotext extracts page text by running poppler's pdftotext once per page.
type Pdftotext struct {
	path  string
	pages int
}

// OpenPdftotext checks that pdftotext is installed and counts the pages of path.
func OpenPdftotext(ctx context.Context, path string) (*Pdftotext, error) {
	if _, err := lookPath("pdftotext"); err != nil {
		return nil, ierrors.MissingCapability("pdftotext not found", err).
			WithSuggestion("install poppler-utils (brew install poppler on macOS)")
	}

	count, err := pageCount(ctx, path)
	if err != nil {
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot read PDF %s", path), err)
	}
	return &Pdftotext{path: path, pages: count}, nil
}

// NumPages implements Source.
func (p *Pdftotext) NumPages() int {
	return p.pages
}

// PageText implements Source.
func (p *Pdftotext) PageText(ctx context.Context, n int) (string, error) {
	if err := checkPage(n, p.pages); err != nil {
		return "", err
	}
	page := strconv.Itoa(n)
	cmd := exec.CommandContext(ctx, "pdftotext", "-f", page, "-l", page, "-enc", "UTF-8", p.path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext page %d: %w", n, err)
	}
	return strings.TrimSuffix(string(output), pageBreak), nil
}

// Close implements Source.
func (p *Pdftotext) Close() error {
	return nil
}

// pageCount reads "Pages: N" from pdfinfo, falling back to querying pdftotext.
func pageCount(ctx context.Context, path string) (int, error) {
	if _, err := lookPath("pdfinfo"); err == nil {
		output, err := exec.CommandContext(ctx, "pdfinfo", path).Output()
		if err == nil {
			if n, ok := parsePdfinfoPages(string(output)); ok {
				return n, nil
			}
		}
	}
	return pageCountFallback(ctx, path)
}

func parsePdfinfoPages(output string) (int, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		return count, true
	}
	return 0, false
}

// pageCountFallback binary searches for the last page pdftotext accepts.
func pageCountFallback(ctx context.Context, path string) (int, error) {
	accepts := func(n int) bool {
		page := strconv.Itoa(n)
		return exec.CommandContext(ctx, "pdftotext", "-f", page, "-l", page, path, "-").Run() == nil
	}

	if !accepts(1) {
		return 0, fmt.Errorf("could not determine page count")
	}

	low, high := 1, 10000
	for low < high {
		mid := (low + high + 1) / 2
		if accepts(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low, nil
}
