package detect

import (
	"reflect"
	"testing"

	"github.com/jackzampolin/spine/internal/types"
)

func TestDedupBoundariesKeepsEarliestPerChapter(t *testing.T) {
	candidates := []types.ChapterBoundary{
		{ChapterNumber: 1, Title: "Running Header", StartPage: 14, EndPage: 20, Method: types.MethodMarker},
		{ChapterNumber: 2, Title: "Advanced Topics", StartPage: 21, EndPage: 30, Method: types.MethodMarker},
		{ChapterNumber: 1, Title: "Getting Started", StartPage: 1, EndPage: 13, Method: types.MethodMarker},
	}

	got := DedupBoundaries(candidates)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %v", got)
	}
	if got[0].Title != "Getting Started" || got[0].StartPage != 1 {
		t.Fatalf("chapter 1 survivor = %+v, want the page-1 occurrence", got[0])
	}
	if got[1].ChapterNumber != 2 {
		t.Fatalf("survivors out of order: %v", got)
	}
}

func TestDedupBoundariesIdempotent(t *testing.T) {
	candidates := []types.ChapterBoundary{
		{ChapterNumber: 2, Title: "B", StartPage: 10, EndPage: 19, Method: types.MethodTOC},
		{ChapterNumber: 1, Title: "A", StartPage: 1, EndPage: 9, Method: types.MethodTOC},
	}

	once := DedupBoundaries(candidates)
	twice := DedupBoundaries(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
	if once[0].ChapterNumber != 1 || once[1].ChapterNumber != 2 {
		t.Fatalf("survivors not sorted by start page: %v", once)
	}
}

func TestDedupBoundariesEmpty(t *testing.T) {
	if got := DedupBoundaries(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
