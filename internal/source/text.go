package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	ierrors "github.com/mutro/termindex/internal/errors"
)

// pageBreak separates pages in pdftotext output.
const pageBreak = "\f"

// TextSource serves pages of a plain text document held in memory.
type TextSource struct {
	pages []string
}

// NewTextSource splits text into pages on form feeds. A final form feed
// does not start an extra empty page.
func NewTextSource(text string) *TextSource {
	if text == "" {
		return &TextSource{}
	}
	text = strings.TrimSuffix(text, pageBreak)
	return &TextSource{pages: strings.Split(text, pageBreak)}
}

// NewPagesSource serves the given page texts as-is.
func NewPagesSource(pages ...string) *TextSource {
	return &TextSource{pages: pages}
}

func openText(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot read %s", path), err)
	}
	return NewTextSource(string(data)), nil
}

// NumPages implements Source.
func (s *TextSource) NumPages() int {
	return len(s.pages)
}

// PageText implements Source.
func (s *TextSource) PageText(ctx context.Context, n int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkPage(n, len(s.pages)); err != nil {
		return "", err
	}
	return s.pages[n-1], nil
}

// Close implements Source.
func (s *TextSource) Close() error {
	return nil
}
