package detect

import (
	"sort"

	"github.com/jackzampolin/spine/internal/types"
)

// DedupBoundaries groups candidates by chapter number and keeps only the
// occurrence with the smallest start page per group, guarding against
// running headers re-triggering a marker match on later pages. Survivors
// are returned sorted ascending by start page. Idempotent.
func DedupBoundaries(candidates []types.ChapterBoundary) []types.ChapterBoundary {
	best := make(map[int]types.ChapterBoundary, len(candidates))
	for _, c := range candidates {
		prev, seen := best[c.ChapterNumber]
		if !seen || c.StartPage < prev.StartPage {
			best[c.ChapterNumber] = c
		}
	}

	out := make([]types.ChapterBoundary, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartPage != out[j].StartPage {
			return out[i].StartPage < out[j].StartPage
		}
		return out[i].ChapterNumber < out[j].ChapterNumber
	})
	return out
}
