package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Quick", "quick"},
		{"slash with spaces", "Input / Output", "input/output"},
		{"slash with uneven spaces", "TCP  /IP", "tcp/ip"},
		{"already normalized", "input/output", "input/output"},
		{"hyphen and period kept", "State-Of-The-Art.", "state-of-the-art."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Input / Output", "Quick", "a / b / C", "U.S.A", "-printing", "Bank of England"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice", in)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain words", "The Quick Brown Fox", []string{"the", "quick", "brown", "fox"}},
		{"slash compound", "Input / Output devices", []string{"input/output", "devices"}},
		{"trailing period dropped", "Made in the U.S.A.", []string{"made", "in", "the", "u.s.a"}},
		{"hyphenated", "state-of-the-art design", []string{"state-of-the-art", "design"}},
		{"digits split tokens", "3d-printing", []string{"-printing"}},
		{"duplicates kept", "cat Cat CAT", []string{"cat", "cat", "cat"}},
		{"no letters", "123 456 !!!", []string{}},
		{"accented words skipped", "café naïve", []string{}},
		{"accented neighbour kept apart", "naïve approach", []string{"approach"}},
		{"non-ascii capitals", "Über Straße", []string{}},
		{"embedded in cjk", "使用Python语言", []string{}},
		{"cjk separated by space", "使用 Python 语言", []string{"python"}},
		{"accented word before phrase", "Münchner Bank of England", []string{"bank", "of", "england"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"capitalized run", "The Quick Brown Fox", []string{"the quick brown fox"}},
		{"connector", "Bank of England", []string{"bank of england"}},
		{"connector then trailing words", "Bank of England Annual Report", []string{"bank of england annual report"}},
		// Connectors are only accepted before the trailing capitalized run.
		{"connector after trailing run", "The Bank of England", []string{"the bank", "england"}},
		{"lowercase breaks run", "see Paris and then Rome", []string{"paris", "rome"}},
		{"spans lines", "Operating\nSystems", []string{"operating\nsystems"}},
		{"none", "all lowercase here", []string{}},
		{"accented capital word skipped", "Münchner Bank of England", []string{"bank of england"}},
		{"non-ascii capitals", "Über Straße", []string{}},
		{"embedded in cjk", "使用Python语言", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phrases(tt.input))
		})
	}
}

func TestExtractWords(t *testing.T) {
	got := Extract("The Quick Brown Fox", ModeWords)
	assert.Equal(t, []string{"brown", "fox", "quick"}, got.Sorted())
}

func TestExtractNonASCIIText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  Mode
		want  []string
	}{
		{"accented words", "café naïve", ModeWords, []string{}},
		{"german", "Über Straße", ModeWordsNoFilter, []string{}},
		{"mixed cjk", "使用Python语言", ModeWords, []string{}},
		{"accented prefix", "Münchner Bank of England", ModeWords, []string{"bank", "england"}},
		{"accented prefix phrases", "Münchner Bank of England", ModePhrases, []string{"bank", "bank of england", "england"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input, tt.mode).Sorted())
		})
	}
}

func TestExtractWordsFiltersCaseInsensitively(t *testing.T) {
	got := Extract("THE And Of", ModeWords)
	assert.Equal(t, 0, got.Len())
}

func TestExtractWordsNoFilter(t *testing.T) {
	got := Extract("the cat and the hat", ModeWordsNoFilter)
	assert.Equal(t, []string{"and", "cat", "hat", "the"}, got.Sorted())
}

func TestExtractPhrases(t *testing.T) {
	got := Extract("The Quick Brown Fox", ModePhrases)

	assert.True(t, got.Has("the quick brown fox"))
	for _, w := range []string{"quick", "brown", "fox"} {
		assert.True(t, got.Has(w), "missing filtered word %q", w)
	}
	assert.Equal(t, 4, got.Len())
}

func TestExtractPhrasesKeepsSingleCapitalizedStopWord(t *testing.T) {
	got := Extract("The", ModePhrases)
	assert.Equal(t, []string{"the"}, got.Sorted())
}

func TestExtractDeduplicates(t *testing.T) {
	got := Extract("cat cat Cat dog", ModeWords)
	assert.Equal(t, []string{"cat", "dog"}, got.Sorted())
}

func TestExtractEmpty(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			assert.Equal(t, 0, Extract("", mode).Len())
			assert.Equal(t, 0, Extract("42 + 17 = 59", mode).Len())
		})
	}
}

func TestExtractUnknownMode(t *testing.T) {
	assert.Equal(t, 0, Extract("Quick Brown Fox", Mode("bogus")).Len())
}

func TestExtractNoFilterIsSuperset(t *testing.T) {
	texts := []string{
		"The Quick Brown Fox jumps over the lazy dog",
		"Input / Output is handled by the kernel; see U.S.A. and state-of-the-art.",
		"It is what it is, and that's all there is to it.",
		"",
	}

	for _, text := range texts {
		filtered := Extract(text, ModeWords)
		unfiltered := Extract(text, ModeWordsNoFilter)
		for term := range filtered {
			assert.True(t, unfiltered.Has(term), "term %q missing from unfiltered set of %q", term, text)
		}
	}
}

func TestValidateMode(t *testing.T) {
	for _, mode := range Modes() {
		got, err := ValidateMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ValidateMode("sentences")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid options")
}

func TestStopWords(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.False(t, IsStopWord("The"))
	assert.False(t, IsStopWord("fox"))

	list := StopWords()
	assert.Greater(t, len(list), 170)
	assert.IsIncreasing(t, list)
}
