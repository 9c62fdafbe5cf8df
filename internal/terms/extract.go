// Package terms turns the plain text of one page into the set of candidate
// index terms for that page.
//
// Tokens are runs of ASCII letters, hyphens, periods and slashes. A token may
// be a slash compound whose separators carry surrounding whitespace in the
// source ("Input / Output"); normalization lowercases the token and removes
// that whitespace ("input/output"). The phrase pass matches runs of
// capitalized words that may be joined by a few lowercase connectors
// ("Bank of England") and lowercases the whole match.
//
// Word boundaries and whitespace are Unicode-aware: a token must not touch a
// letter, digit or underscore of any script, so "café" and "使用Python语言"
// yield no tokens rather than ASCII fragments.
package terms

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	wordPattern   = regexp2.MustCompile(`\b[a-zA-Z\-./]+(?:\s*/\s*[a-zA-Z\-./]+)*\b`, regexp2.None)
	phrasePattern = regexp2.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+(?:of|the|and|for|in|to|on)\s+[A-Z][a-zA-Z]*)*(?:\s+[A-Z][a-zA-Z]*)*\b`, regexp2.None)
	slashSpacing  = regexp2.MustCompile(`\s*/\s*`, regexp2.None)
)

// findAll returns every non-overlapping match of re in text. The patterns
// carry no match timeout, so the matcher never reports an error.
func findAll(re *regexp2.Regexp, text string) []string {
	out := []string{}
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}

// Normalize lowercases a token and collapses whitespace around slashes.
func Normalize(token string) string {
	collapsed, err := slashSpacing.Replace(token, "/", -1, -1)
	if err != nil {
		collapsed = token
	}
	return strings.ToLower(collapsed)
}

// Tokenize returns the normalized word tokens of text in encounter order,
// duplicates included.
func Tokenize(text string) []string {
	raw := findAll(wordPattern, text)
	out := make([]string, len(raw))
	for i, token := range raw {
		out[i] = Normalize(token)
	}
	return out
}

// Phrases returns the lowercased capitalized phrases of text in encounter
// order. Single capitalized words count as one-word phrases.
func Phrases(text string) []string {
	raw := findAll(phrasePattern, text)
	out := make([]string, len(raw))
	for i, phrase := range raw {
		out[i] = strings.ToLower(phrase)
	}
	return out
}

// Extract returns the set of terms present in text under mode.
// An unknown mode yields an empty set.
func Extract(text string, mode Mode) Set {
	set := make(Set)
	if text == "" {
		return set
	}

	switch mode {
	case ModeWords:
		addFiltered(set, Tokenize(text))
	case ModeWordsNoFilter:
		for _, token := range Tokenize(text) {
			set.Add(token)
		}
	case ModePhrases:
		for _, phrase := range Phrases(text) {
			set.Add(phrase)
		}
		addFiltered(set, Tokenize(text))
	}

	return set
}

func addFiltered(set Set, tokens []string) {
	for _, token := range tokens {
		if !IsStopWord(token) {
			set.Add(token)
		}
	}
}
