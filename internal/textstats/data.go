package textstats

import (
	_ "embed"
	"strings"
)

//go:embed data/stopwords.txt
var defaultStopwordsData string

//go:embed data/denylist.txt
var defaultDenylistData string

//go:embed data/allowlist.txt
var defaultAllowlistData string

//go:embed data/dictionary.txt
var defaultDictionaryData string

// splitWordList parses an embedded one-word-per-line data file.
// Blank lines and lines starting with '#' are skipped.
func splitWordList(data string) []string {
	var words []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	return words
}

// DefaultStopwords returns the embedded English stopword list.
func DefaultStopwords() []string {
	return splitWordList(defaultStopwordsData)
}

// DefaultDenylist returns the embedded document/publisher artifact denylist.
func DefaultDenylist() []string {
	return splitWordList(defaultDenylistData)
}

// DefaultAllowlistSuffixes returns the embedded technical compound-term suffixes.
func DefaultAllowlistSuffixes() []string {
	return splitWordList(defaultAllowlistData)
}

// DefaultDictionary returns the embedded general dictionary wordlist.
func DefaultDictionary() []string {
	return splitWordList(defaultDictionaryData)
}
