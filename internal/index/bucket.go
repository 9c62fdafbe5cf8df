package index

import (
	"unicode"
	"unicode/utf8"
)

// OtherBucket groups every term whose first character is not a letter A-Z.
const OtherBucket = "#"

// Bucket is one alphabetic group of the rendered index.
type Bucket struct {
	Key   string
	Terms []string
}

// BucketOf returns the grouping key for term: its uppercased first
// character when that is A-Z, otherwise OtherBucket.
func BucketOf(term string) string {
	r, _ := utf8.DecodeRuneInString(term)
	r = unicode.ToUpper(r)
	if r >= 'A' && r <= 'Z' {
		return string(r)
	}
	return OtherBucket
}

// Buckets groups the index terms A to Z with OtherBucket last.
// Terms keep their global byte order inside each bucket.
func (idx *Index) Buckets() []Bucket {
	byKey := make(map[string]*Bucket)
	for _, term := range idx.terms {
		key := BucketOf(term)
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key}
			byKey[key] = b
		}
		b.Terms = append(b.Terms, term)
	}

	out := make([]Bucket, 0, len(byKey))
	for c := 'A'; c <= 'Z'; c++ {
		if b, ok := byKey[string(c)]; ok {
			out = append(out, *b)
		}
	}
	if b, ok := byKey[OtherBucket]; ok {
		out = append(out, *b)
	}
	return out
}
