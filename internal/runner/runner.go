// Package runner drives one index run: it opens the page source, extracts
// terms page by page, accumulates them and renders the Typst index.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mutro/termindex/internal/index"
	"github.com/mutro/termindex/internal/logging"
	"github.com/mutro/termindex/internal/progress"
	"github.com/mutro/termindex/internal/source"
	"github.com/mutro/termindex/internal/terms"
)

// Config holds the run configuration
type Config struct {
	Input    string
	Mode     terms.Mode
	Source   source.Options
	Render   index.RenderOptions
	Reporter progress.Reporter
	Logger   *slog.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.Reporter == nil {
		cfg.Reporter = progress.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Source.Status == nil {
		cfg.Source.Status = cfg.Reporter.Status
	}
}

// Run opens cfg.Input and builds its index. Source failures are returned
// before any page is extracted.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	cfg.setDefaults()

	if _, err := terms.ValidateMode(string(cfg.Mode)); err != nil {
		return nil, err
	}

	cfg.Reporter.Status(fmt.Sprintf("opening %s", filepath.Base(cfg.Input)))
	src, err := source.Open(ctx, cfg.Input, cfg.Source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			cfg.Logger.Warn("closing source failed", "input", cfg.Input, "error", err)
		}
	}()

	return RunSource(ctx, src, cfg)
}

type pageText struct {
	number int
	text   string
}

// RunSource builds the index for an already opened source. Pages are read
// on a worker goroutine and recorded in page order on a single consumer.
// On cancellation the partial index is discarded.
func RunSource(ctx context.Context, src source.Source, cfg Config) (*Result, error) {
	cfg.setDefaults()
	start := time.Now()

	total := src.NumPages()
	cfg.Reporter.Status(fmt.Sprintf("extracting text from %d pages", total))
	cfg.Reporter.Progress(0, total)
	cfg.Logger.Debug("extraction started", "input", cfg.Input, "pages", total, "mode", cfg.Mode)

	builder := index.NewBuilder()
	pages := make(chan pageText)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(pages)
		for n := 1; n <= total; n++ {
			text, err := src.PageText(gctx, n)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// An unreadable page contributes no terms.
				cfg.Logger.Warn("page extraction failed", "page", n, "error", err)
				text = ""
			}
			select {
			case pages <- pageText{number: n, text: text}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for p := range pages {
			found := terms.Extract(p.text, cfg.Mode)
			if err := builder.Record(p.number, found); err != nil {
				return fmt.Errorf("recording page %d: %w", p.number, err)
			}
			cfg.Logger.Debug("page indexed", "page", p.number, "terms", found.Len())
			cfg.Reporter.Progress(p.number, total)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := builder.Finalize()

	cfg.Reporter.Status("rendering Typst index")
	output := index.Render(idx, cfg.Render)

	result := &Result{
		Input:    cfg.Input,
		Mode:     cfg.Mode,
		Pages:    total,
		Terms:    idx.Len(),
		Duration: time.Since(start),
		Index:    idx,
		Output:   []byte(output),
	}
	cfg.Logger.Info("index built", "input", cfg.Input, "pages", result.Pages, "terms", result.Terms, "duration", result.Duration)
	return result, nil
}

// DefaultOutputPath returns "<input without extension>_index.txt".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_index.txt"
}
