package detect

import (
	"github.com/jackzampolin/spine/internal/textstats"
	"github.com/jackzampolin/spine/internal/types"
)

// ContentDensityValidator rejects candidates whose starting page does not
// read like prose. It extracts keywords from a bounded prefix of the page
// and requires a minimum count; index and reference pages yield too few.
// Extraction failures count as rejection, never as an error.
type ContentDensityValidator struct {
	extractor   *textstats.Extractor
	minKeywords int
	prefixChars int
}

// NewContentDensityValidator builds a validator over the given extractor.
func NewContentDensityValidator(extractor *textstats.Extractor, cfg Config) *ContentDensityValidator {
	cfg = cfg.withDefaults()
	return &ContentDensityValidator{
		extractor:   extractor,
		minKeywords: cfg.MinKeywordsForValidity,
		prefixChars: cfg.DensityPrefixChars,
	}
}

// Accept reports whether the page text clears the content-density floor.
func (v *ContentDensityValidator) Accept(pageText string) bool {
	keywords, err := v.extractor.ExtractKeywords(prefix(pageText, v.prefixChars), v.minKeywords)
	if err != nil {
		return false
	}
	return len(keywords) >= v.minKeywords
}

// Filter keeps the candidates whose starting page passes Accept. Candidates
// whose starting page is missing from the sequence are rejected too: there
// is nothing to validate against.
func (v *ContentDensityValidator) Filter(candidates []types.ChapterBoundary, pages []types.Page) []types.ChapterBoundary {
	byNumber := pagesByNumber(pages)
	out := make([]types.ChapterBoundary, 0, len(candidates))
	for _, c := range candidates {
		page, ok := byNumber[c.StartPage]
		if !ok || !v.Accept(page.Text) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func pagesByNumber(pages []types.Page) map[int]types.Page {
	m := make(map[int]types.Page, len(pages))
	for _, p := range pages {
		m[p.PageNumber] = p
	}
	return m
}
