// Package source yields the plain text of a document page by page.
//
// PDF files are read natively or through poppler's pdftotext. DOCX files are
// first converted to a temporary PDF by an office converter. Plain .txt files
// are split into pages on form feeds, which is how pdftotext separates pages.
package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	ierrors "github.com/mutro/termindex/internal/errors"
)

// PDF backends accepted in Options.PDFBackend.
const (
	BackendAuto      = "auto"
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
)

// Source yields page text in page order.
type Source interface {
	// NumPages returns the page count, known before extraction starts.
	NumPages() int
	// PageText returns the text of page n, 1-based.
	PageText(ctx context.Context, n int) (string, error)
	// Close releases the document and any temporary files.
	Close() error
}

// Options configures Open.
type Options struct {
	// PDFBackend is auto, native or pdftotext. Empty means auto.
	PDFBackend string
	// Converter is the office binary used for .docx input. Empty means soffice.
	Converter string
	// Raw skips Unicode compatibility normalization of page text.
	Raw bool
	// Status, when set, receives human-readable stage messages.
	Status func(msg string)
}

func (o Options) status(msg string) {
	if o.Status != nil {
		o.Status(msg)
	}
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Open returns a Source for path based on its extension.
func Open(ctx context.Context, path string, opts Options) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot open %s", path), err)
	}
	if info.IsDir() {
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("%s is a directory", path), nil)
	}

	var src Source
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		src, err = openPDF(ctx, path, opts)
	case ".docx":
		src, err = openDOCX(ctx, path, opts)
	case ".txt":
		src, err = openText(path)
	default:
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("unsupported file type %q", ext), nil).
			WithSuggestion("supported inputs are .pdf, .docx and .txt")
	}
	if err != nil {
		return nil, err
	}

	if opts.Raw {
		return src, nil
	}
	return normalized{src}, nil
}

// normalized applies NFKC to page text so ligatures and full-width forms
// become plain letters before tokenization.
type normalized struct {
	Source
}

func (n normalized) PageText(ctx context.Context, page int) (string, error) {
	text, err := n.Source.PageText(ctx, page)
	if err != nil {
		return "", err
	}
	return norm.NFKC.String(text), nil
}

func checkPage(n, total int) error {
	if n < 1 || n > total {
		return fmt.Errorf("page %d out of range 1..%d", n, total)
	}
	return nil
}
