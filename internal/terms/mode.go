package terms

import "fmt"

// Mode selects the tokenization and filtering strategy for a run
type Mode string

const (
	// ModeWords keeps single and slash-compound tokens that are not stop words
	ModeWords Mode = "words"
	// ModeWordsNoFilter keeps every token
	ModeWordsNoFilter Mode = "words_no_filter"
	// ModePhrases merges capitalized phrases with the filtered word tokens
	ModePhrases Mode = "phrases"
)

// Modes returns every extraction mode in display order
func Modes() []Mode {
	return []Mode{ModeWords, ModePhrases, ModeWordsNoFilter}
}

// Description returns a one-line human description of the mode
func (m Mode) Description() string {
	switch m {
	case ModeWords:
		return "single words, common function words filtered out"
	case ModeWordsNoFilter:
		return "single words, no filtering"
	case ModePhrases:
		return "capitalized key phrases plus filtered single words"
	default:
		return "unknown mode"
	}
}

// ValidateMode checks if the given mode string is valid and returns the Mode
func ValidateMode(mode string) (Mode, error) {
	switch Mode(mode) {
	case ModeWords:
		return ModeWords, nil
	case ModeWordsNoFilter:
		return ModeWordsNoFilter, nil
	case ModePhrases:
		return ModePhrases, nil
	default:
		return "", fmt.Errorf("unknown mode: %q (valid options: words, phrases, words_no_filter)", mode)
	}
}
