package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ierrors "github.com/mutro/termindex/internal/errors"
)

// DefaultConverter is the office binary used to convert .docx to PDF.
const DefaultConverter = "soffice"

// converted wraps the Source of a temporary PDF and removes it on Close.
type converted struct {
	Source
	tmpDir string
}

func (c *converted) Close() error {
	err := c.Source.Close()
	if rmErr := os.RemoveAll(c.tmpDir); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}

func openDOCX(ctx context.Context, path string, opts Options) (Source, error) {
	converter := opts.Converter
	if converter == "" {
		converter = DefaultConverter
	}
	bin, err := lookPath(converter)
	if err != nil {
		return nil, ierrors.MissingCapability(fmt.Sprintf("document converter %q not found", converter), err).
			WithSuggestion("install LibreOffice or set source.converter in .termindex.yaml")
	}

	// Check the PDF side before the slow conversion.
	if opts.PDFBackend == BackendPdftotext {
		if _, err := lookPath("pdftotext"); err != nil {
			return nil, ierrors.MissingCapability("pdftotext not found", err).
				WithSuggestion("install poppler-utils (brew install poppler on macOS)")
		}
	}

	tmpDir, err := os.MkdirTemp("", "termindex-docx-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	opts.status("converting DOCX to PDF (this may take a while)")
	pdfPath, err := convertToPDF(ctx, bin, path, tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, ierrors.UnsupportedInput(fmt.Sprintf("cannot convert %s", path), err)
	}

	src, err := openPDF(ctx, pdfPath, opts)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, err
	}
	return &converted{Source: src, tmpDir: tmpDir}, nil
}

// convertToPDF runs the converter headless and returns the produced PDF path.
func convertToPDF(ctx context.Context, bin, input, outDir string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, input)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s: %w: %s", filepath.Base(bin), err, strings.TrimSpace(string(output)))
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("converter produced no PDF: %w", err)
	}
	return pdfPath, nil
}
