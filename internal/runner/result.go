package runner

import (
	"fmt"
	"time"

	"github.com/google/renameio"

	ierrors "github.com/mutro/termindex/internal/errors"
	"github.com/mutro/termindex/internal/index"
	"github.com/mutro/termindex/internal/terms"
)

// Result is the outcome of a run. Output holds the complete rendered index.
type Result struct {
	Input    string
	Mode     terms.Mode
	Pages    int
	Terms    int
	Duration time.Duration
	Index    *index.Index
	Output   []byte
}

// Save writes Output to path atomically. A failed save leaves any existing
// file untouched and can be retried without rebuilding the index.
func (r *Result) Save(path string) error {
	if err := renameio.WriteFile(path, r.Output, 0644); err != nil {
		return ierrors.IOFailure(fmt.Sprintf("writing index to %s", path), err).
			WithSuggestion("check that the directory exists and is writable")
	}
	return nil
}
