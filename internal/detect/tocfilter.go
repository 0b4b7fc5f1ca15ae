package detect

import (
	"regexp"

	"github.com/jackzampolin/spine/internal/types"
)

// isolatedNumberPattern matches short word-boundary-delimited numbers, the
// signature of page-number columns on index and contents pages.
var isolatedNumberPattern = regexp.MustCompile(`\b\d{1,3}\b`)

// TOCPageFilter rejects candidates whose starting page is numerically dense:
// too many isolated 1-3 digit tokens in the bounded prefix means a layout
// page, even when it also carries real words. Independent signal from the
// content-density check.
type TOCPageFilter struct {
	threshold   int
	prefixChars int
}

// NewTOCPageFilter builds the filter from config.
func NewTOCPageFilter(cfg Config) *TOCPageFilter {
	cfg = cfg.withDefaults()
	return &TOCPageFilter{
		threshold:   cfg.TOCNumberDensityThreshold,
		prefixChars: cfg.DensityPrefixChars,
	}
}

// Accept reports whether the page text stays under the isolated-number ceiling.
func (f *TOCPageFilter) Accept(pageText string) bool {
	matches := isolatedNumberPattern.FindAllString(prefix(pageText, f.prefixChars), -1)
	return len(matches) <= f.threshold
}

// Filter keeps candidates whose starting page passes Accept. A candidate
// whose starting page is absent is kept: absence is not numeric density.
func (f *TOCPageFilter) Filter(candidates []types.ChapterBoundary, pages []types.Page) []types.ChapterBoundary {
	byNumber := pagesByNumber(pages)
	out := make([]types.ChapterBoundary, 0, len(candidates))
	for _, c := range candidates {
		if page, ok := byNumber[c.StartPage]; ok && !f.Accept(page.Text) {
			continue
		}
		out = append(out, c)
	}
	return out
}
