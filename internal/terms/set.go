package terms

import "sort"

// Set is the deduplicated collection of terms found on one page.
type Set map[string]struct{}

// NewSet builds a set from the given terms.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts a term.
func (s Set) Add(term string) {
	s[term] = struct{}{}
}

// Has reports whether term is in the set.
func (s Set) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of distinct terms.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the terms in byte order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for term := range s {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
