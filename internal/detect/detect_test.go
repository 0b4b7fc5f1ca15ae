package detect

import (
	"testing"

	"github.com/jackzampolin/spine/internal/textstats"
	"github.com/jackzampolin/spine/internal/types"
)

// filler is prose dense enough to clear the content-density floor and sparse
// enough in isolated numbers to clear the numeric-density ceiling.
const filler = "This guide explains the core architecture, the network design, and the storage engine. " +
	"Capacity planning and performance tuning keep the platform stable under heavy load. " +
	"Monitoring dashboards surface latency regressions before customers notice them."

func newTestExtractor() *textstats.Extractor {
	return textstats.New(textstats.DefaultConfig())
}

func newTestPipeline() *Pipeline {
	return NewPipeline(newTestExtractor(), DefaultConfig())
}

// prosePages builds a run of plain prose pages numbered from start to end.
func prosePages(start, end int) []types.Page {
	var pages []types.Page
	for n := start; n <= end; n++ {
		pages = append(pages, types.Page{PageNumber: n, Text: filler})
	}
	return pages
}

func checkNonOverlappingSorted(t *testing.T, boundaries []types.ChapterBoundary) {
	t.Helper()
	for i, b := range boundaries {
		if err := b.Validate(); err != nil {
			t.Fatalf("boundary %d invalid: %v", i, err)
		}
		if i == 0 {
			continue
		}
		prev := boundaries[i-1]
		if prev.StartPage >= b.StartPage {
			t.Fatalf("boundaries not sorted ascending by start page: %+v then %+v", prev, b)
		}
		if prev.EndPage >= b.StartPage {
			t.Fatalf("boundaries overlap: %+v then %+v", prev, b)
		}
	}
}
