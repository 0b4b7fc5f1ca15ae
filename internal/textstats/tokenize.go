package textstats

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Words segments text into lowercase word tokens using Unicode word
// boundaries. Whitespace and punctuation-only segments are dropped.
func Words(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := strings.TrimSpace(tokens.Value())
		if tok == "" || !hasLetterOrDigit(tok) {
			continue
		}
		out = append(out, strings.ToLower(tok))
	}
	return out
}

// Sentences segments text into trimmed sentences using Unicode sentence
// boundaries. Empty segments are dropped; sentence text is otherwise verbatim.
func Sentences(text string) []string {
	var out []string
	segs := sentences.FromString(text)
	for segs.Next() {
		s := strings.TrimSpace(segs.Value())
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isAlphabetic reports whether every rune in s is a letter. Hyphenated
// compounds count as alphabetic so allowlisted technical terms survive.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}

// isNumeric reports whether every rune in s is a digit.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
