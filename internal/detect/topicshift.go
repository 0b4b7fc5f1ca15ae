package detect

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/spine/internal/textstats"
	"github.com/jackzampolin/spine/internal/types"
)

// topicShiftLookahead is how many pages past a similarity drop are compared
// back against the pre-drop page. If any of them still matches, the drop is
// a short-lived anomaly rather than a topic change.
const topicShiftLookahead = 2

// TopicShiftSource is the last-resort source: it splits the document where
// the keyword overlap between consecutive pages collapses. Work is linear in
// page count; only consecutive pages are ever compared.
type TopicShiftSource struct {
	extractor *textstats.Extractor
	cfg       Config
}

// NewTopicShiftSource builds the source over the given extractor.
func NewTopicShiftSource(extractor *textstats.Extractor, cfg Config) *TopicShiftSource {
	return &TopicShiftSource{extractor: extractor, cfg: cfg.withDefaults()}
}

// Name implements CandidateSource.
func (s *TopicShiftSource) Name() string { return "topic_shift" }

// Detect implements CandidateSource.
func (s *TopicShiftSource) Detect(pages []types.Page, _ map[string]any) []types.ChapterBoundary {
	if len(pages) < 2 {
		return nil
	}

	vectors := make([]map[string]float64, len(pages))
	for i, p := range pages {
		vectors[i] = s.pageVector(p.Text)
	}

	// sims[i] is the similarity between pages i and i+1.
	sims := make([]float64, len(pages)-1)
	for i := 0; i < len(pages)-1; i++ {
		sims[i] = weightedOverlap(vectors[i], vectors[i+1])
	}

	starts := []int{0} // page index, first chapter always starts at the first page
	for i := 0; i < len(sims); {
		if sims[i] >= s.cfg.TopicShiftSimilarityThreshold {
			i++
			continue
		}
		if j, ok := s.recoveryWithin(vectors, i); ok {
			// The pre-drop topic resumes at page j: the pages in between
			// are a blip (a figure page, OCR damage), not a new chapter.
			// Every pair touching them is skipped.
			i = j
			continue
		}
		if i+2 >= len(vectors) {
			// The drop runs into the end of the document with no page left
			// to confirm it either way; one trailing odd page is not a
			// chapter.
			i++
			continue
		}
		// Boundaries closer than the minimum chapter length merge away.
		prevStart := starts[len(starts)-1]
		if pages[i+1].PageNumber-pages[prevStart].PageNumber >= s.cfg.MinChapterLength {
			starts = append(starts, i+1)
		}
		i++
	}
	if len(starts) < 2 {
		return nil
	}

	last := lastPageNumber(pages)
	out := make([]types.ChapterBoundary, 0, len(starts))
	for n, idx := range starts {
		b := types.ChapterBoundary{
			ChapterNumber: n + 1,
			Title:         s.sectionTitle(vectors[idx], n+1),
			StartPage:     pages[idx].PageNumber,
			EndPage:       last,
			Method:        types.MethodTopicShift,
		}
		if n+1 < len(starts) {
			b.EndPage = pages[starts[n+1]].PageNumber - 1
		}
		if b.EndPage < b.StartPage {
			b.EndPage = b.StartPage
		}
		out = append(out, b)
	}
	return out
}

// recoveryWithin scans the lookahead window after the drop at pair i for a
// page that still matches the pre-drop page. A hit means the drop did not
// stay low: the intervening pages are an anomaly, and the caller resumes at
// the page where the running topic picked back up.
func (s *TopicShiftSource) recoveryWithin(vectors []map[string]float64, i int) (int, bool) {
	end := i + 1 + topicShiftLookahead
	if end > len(vectors)-1 {
		end = len(vectors) - 1
	}
	for j := i + 2; j <= end; j++ {
		if weightedOverlap(vectors[i], vectors[j]) >= s.cfg.TopicShiftSimilarityThreshold {
			return j, true
		}
	}
	return 0, false
}

// pageVector returns the page's bounded top-K weighted-term vector. Weights
// invert the lower-is-better score convention so that heavier means more
// salient. Degenerate pages get an empty vector.
func (s *TopicShiftSource) pageVector(text string) map[string]float64 {
	keywords, err := s.extractor.ExtractKeywords(text, s.cfg.TopicVectorSize)
	if err != nil {
		return map[string]float64{}
	}
	vec := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		vec[kw.Term] = 1.0 - kw.Score
	}
	return vec
}

// weightedOverlap is a set-overlap measure over weighted terms: shared mass
// divided by the lighter vector's mass. Two empty vectors count as similar
// so runs of degenerate pages never fabricate boundaries.
func weightedOverlap(a, b map[string]float64) float64 {
	var sumA, sumB, shared float64
	for t, w := range a {
		sumA += w
		if wb, ok := b[t]; ok {
			if wb < w {
				shared += wb
			} else {
				shared += w
			}
		}
	}
	for _, w := range b {
		sumB += w
	}

	minSum := sumA
	if sumB < minSum {
		minSum = sumB
	}
	if minSum == 0 {
		return 1.0
	}
	return shared / minSum
}

// sectionTitle derives a display title from the chapter's opening page
// vector: the heaviest term, title-cased, or a numbered placeholder.
func (s *TopicShiftSource) sectionTitle(vec map[string]float64, number int) string {
	bestTerm := ""
	bestWeight := -1.0
	for t, w := range vec {
		if w > bestWeight || (w == bestWeight && t < bestTerm) {
			bestTerm = t
			bestWeight = w
		}
	}
	if bestTerm == "" {
		return fmt.Sprintf("Section %d", number)
	}
	return titleCase(bestTerm)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
