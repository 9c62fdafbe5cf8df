package source

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	ierrors "github.com/mutro/termindex/internal/errors"
)

// NativePDF reads page text with the pure Go PDF reader.
type NativePDF struct {
	file   *os.File
	reader *pdf.Reader
}

// openFile is replaced in tests.
var openFile = os.Open

// OpenNativePDF opens path with the native reader.
func OpenNativePDF(path string) (src *NativePDF, err error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}

	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = fmt.Errorf("reading PDF structure: %v", r)
		}
		if err != nil {
			_ = f.Close()
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	return &NativePDF{file: f, reader: r}, nil
}

// NumPages implements Source.
func (p *NativePDF) NumPages() int {
	return p.reader.NumPage()
}

// PageText implements Source. Failures inside the reader are returned as
// errors so the caller can treat the page as empty.
func (p *NativePDF) PageText(ctx context.Context, n int) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkPage(n, p.NumPages()); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extracting page %d: %v", n, r)
		}
	}()

	page := p.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// Close implements Source.
func (p *NativePDF) Close() error {
	return p.file.Close()
}

func openPDF(ctx context.Context, path string, opts Options) (Source, error) {
	switch opts.PDFBackend {
	case BackendNative:
		src, err := OpenNativePDF(path)
		if err != nil {
			return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot open PDF %s", path), err)
		}
		return src, nil

	case BackendPdftotext:
		return OpenPdftotext(ctx, path)

	case BackendAuto, "":
		src, nativeErr := OpenNativePDF(path)
		if nativeErr == nil {
			return src, nil
		}
		if _, err := lookPath("pdftotext"); err != nil {
			return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot open PDF %s", path), nativeErr)
		}
		opts.status("native PDF reader failed, falling back to pdftotext")
		return OpenPdftotext(ctx, path)

	default:
		return nil, ierrors.ConfigError(fmt.Sprintf("unknown PDF backend %q (valid options: auto, native, pdftotext)", opts.PDFBackend), nil)
	}
}
