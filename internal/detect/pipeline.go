package detect

import (
	"sort"

	"github.com/jackzampolin/spine/internal/textstats"
	"github.com/jackzampolin/spine/internal/types"
)

// Pipeline orchestrates the candidate sources in strict priority order and
// runs the filter chain over their proposals. It holds only immutable
// configuration, so one Pipeline is safe to share across goroutines and
// across documents.
type Pipeline struct {
	cfg        Config
	explicit   *ExplicitSource
	toc        *TOCSource
	marker     *MarkerSource
	topicShift *TopicShiftSource
	density    *ContentDensityValidator
	tocFilter  *TOCPageFilter
}

// NewPipeline builds a detection pipeline over the given extractor.
func NewPipeline(extractor *textstats.Extractor, cfg Config) *Pipeline {
	cfg = cfg.withDefaults()
	density := NewContentDensityValidator(extractor, cfg)
	return &Pipeline{
		cfg:        cfg,
		explicit:   NewExplicitSource(),
		toc:        NewTOCSource(cfg, density),
		marker:     NewMarkerSource(cfg.MarkerScanWindowLines),
		topicShift: NewTopicShiftSource(extractor, cfg),
		density:    density,
		tocFilter:  NewTOCPageFilter(cfg),
	}
}

// DetectChapters returns the finalized chapter partition for the document.
// An empty result is a normal outcome, not an error; callers decide whether
// to synthesize a whole-document fallback chapter.
//
// Postcondition: the result is strictly non-overlapping and sorted ascending
// by start page.
func (p *Pipeline) DetectChapters(pages []types.Page, meta map[string]any) []types.ChapterBoundary {
	pages = sortedPages(pages)

	// Explicit metadata is trusted completely: no other source, no filters.
	if boundaries := p.explicit.Detect(pages, meta); len(boundaries) > 0 {
		return normalize(boundaries)
	}

	if boundaries := p.toc.Detect(pages, meta); len(boundaries) > 0 {
		return normalize(p.applyFilters(boundaries, pages))
	}

	if boundaries := p.marker.Detect(pages, meta); len(boundaries) > 0 {
		return normalize(p.applyFilters(boundaries, pages))
	}

	// Last resort: statistical topic segmentation. Its boundaries start on
	// prose by construction, so only the duplicate filter applies.
	if boundaries := p.topicShift.Detect(pages, meta); len(boundaries) > 0 {
		return normalize(DedupBoundaries(boundaries))
	}

	return nil
}

// applyFilters runs the fixed filter order: content density, numeric
// density, duplicate collapse.
func (p *Pipeline) applyFilters(candidates []types.ChapterBoundary, pages []types.Page) []types.ChapterBoundary {
	candidates = p.density.Filter(candidates, pages)
	candidates = p.tocFilter.Filter(candidates, pages)
	return DedupBoundaries(candidates)
}

// normalize enforces the postcondition: ascending start pages with strict
// non-overlap. Overlapping spans are trimmed to end just before the next
// chapter; a span that cannot be trimmed is dropped.
func normalize(boundaries []types.ChapterBoundary) []types.ChapterBoundary {
	sorted := make([]types.ChapterBoundary, len(boundaries))
	copy(sorted, boundaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartPage < sorted[j].StartPage
	})

	out := make([]types.ChapterBoundary, 0, len(sorted))
	for _, b := range sorted {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if b.StartPage <= prev.StartPage {
				continue
			}
			if prev.EndPage >= b.StartPage {
				prev.EndPage = b.StartPage - 1
			}
		}
		if b.EndPage < b.StartPage {
			b.EndPage = b.StartPage
		}
		out = append(out, b)
	}
	return out
}

func sortedPages(pages []types.Page) []types.Page {
	out := make([]types.Page, len(pages))
	copy(out, pages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PageNumber < out[j].PageNumber
	})
	return out
}
