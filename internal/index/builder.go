// Package index accumulates per-page term sets into a document-wide
// term→pages mapping and renders it as a Typst index.
package index

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mutro/termindex/internal/terms"
)

// ErrFinalized is returned when a page is recorded after Finalize.
var ErrFinalized = errors.New("index already finalized")

// Builder accumulates term occurrences page by page.
// It is not safe for concurrent use; callers record pages one at a time.
type Builder struct {
	entries   map[string]map[int]struct{}
	finalized bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]map[int]struct{})}
}

// Record adds page to the page set of every term in set.
// Recording is a pure union, so the order of calls does not change the result.
func (b *Builder) Record(page int, set terms.Set) error {
	if b.finalized {
		return ErrFinalized
	}
	if page < 1 {
		return fmt.Errorf("invalid page number %d: pages are 1-based", page)
	}

	for term := range set {
		pages, ok := b.entries[term]
		if !ok {
			pages = make(map[int]struct{})
			b.entries[term] = pages
		}
		pages[page] = struct{}{}
	}
	return nil
}

// Len returns the number of distinct terms recorded so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Pages returns the ascending page numbers recorded for term.
func (b *Builder) Pages(term string) []int {
	return sortedPages(b.entries[term])
}

// Finalize freezes the builder and returns the read-only Index.
// Later calls return an equivalent Index.
func (b *Builder) Finalize() *Index {
	b.finalized = true

	idx := &Index{
		entries: make(map[string][]int, len(b.entries)),
		terms:   make([]string, 0, len(b.entries)),
	}
	for term, pages := range b.entries {
		idx.entries[term] = sortedPages(pages)
		idx.terms = append(idx.terms, term)
	}
	sort.Strings(idx.terms)
	return idx
}

func sortedPages(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Index is the finalized term→pages mapping.
type Index struct {
	entries map[string][]int
	terms   []string
}

// Len returns the number of terms.
func (idx *Index) Len() int {
	return len(idx.terms)
}

// Terms returns every term in byte order.
func (idx *Index) Terms() []string {
	out := make([]string, len(idx.terms))
	copy(out, idx.terms)
	return out
}

// Pages returns the ascending page numbers for term, or nil if absent.
func (idx *Index) Pages(term string) []int {
	pages, ok := idx.entries[term]
	if !ok {
		return nil
	}
	out := make([]int, len(pages))
	copy(out, pages)
	return out
}
