package detect

import (
	"testing"

	"github.com/jackzampolin/spine/internal/types"
)

func TestExplicitSourceAcceptsWellFormedEntries(t *testing.T) {
	s := NewExplicitSource()

	meta := map[string]any{
		"chapters": []any{
			map[string]any{"number": 1, "title": "Introduction", "start_page": 1, "end_page": 10},
			map[string]any{"number": float64(2), "title": "Methods", "start_page": float64(11), "end_page": float64(20)},
		},
	}
	got := s.Detect(nil, meta)
	if len(got) != 2 {
		t.Fatalf("expected 2 boundaries, got %v", got)
	}
	if got[0].Title != "Introduction" || got[0].StartPage != 1 || got[0].EndPage != 10 {
		t.Fatalf("first boundary wrong: %+v", got[0])
	}
	if got[1].ChapterNumber != 2 || got[1].Method != types.MethodExplicit {
		t.Fatalf("second boundary wrong: %+v", got[1])
	}
}

func TestExplicitSourceSkipsMalformedEntries(t *testing.T) {
	s := NewExplicitSource()

	meta := map[string]any{
		"chapters": []any{
			map[string]any{"number": 1, "title": "Good", "start_page": 1, "end_page": 5},
			map[string]any{"number": "two", "title": "Mistyped number", "start_page": 6, "end_page": 9},
			map[string]any{"number": 3, "title": "", "start_page": 10, "end_page": 12},
			map[string]any{"number": 4, "title": "Missing pages"},
			map[string]any{"number": 5, "title": "Fractional", "start_page": 13.5, "end_page": 20},
			map[string]any{"number": 6, "title": "Inverted", "start_page": 30, "end_page": 20},
			"not even a map",
		},
	}
	got := s.Detect(nil, meta)
	if len(got) != 1 || got[0].Title != "Good" {
		t.Fatalf("expected only the well-formed entry, got %v", got)
	}
}

func TestExplicitSourceAbsentOrEmpty(t *testing.T) {
	s := NewExplicitSource()

	if got := s.Detect(nil, nil); got != nil {
		t.Fatalf("nil metadata should yield nil, got %v", got)
	}
	if got := s.Detect(nil, map[string]any{}); got != nil {
		t.Fatalf("missing chapters key should yield nil, got %v", got)
	}
	if got := s.Detect(nil, map[string]any{"chapters": []any{}}); len(got) != 0 {
		t.Fatalf("empty chapters array should yield nothing, got %v", got)
	}
	if got := s.Detect(nil, map[string]any{"chapters": "bogus"}); len(got) != 0 {
		t.Fatalf("mistyped chapters value should yield nothing, got %v", got)
	}
}
