package detect

import (
	"testing"

	"github.com/jackzampolin/spine/internal/types"
)

// tocTestPages builds a document whose physical pages run one ahead of the
// logical numbering printed in the contents (a single front-matter page).
func tocTestPages() []types.Page {
	toc := "Table of Contents\n" +
		"1. Getting Started ........ 1\n" +
		"2. Advanced Topics ........ 11\n" +
		"3. Conclusion ........ 21\n"

	pages := []types.Page{{PageNumber: 1, Text: toc}}
	pages = append(pages, types.Page{PageNumber: 2, Text: "Getting Started\n\n" + filler})
	pages = append(pages, prosePages(3, 11)...)
	pages = append(pages, types.Page{PageNumber: 12, Text: "Advanced Topics\n\n" + filler})
	pages = append(pages, prosePages(13, 21)...)
	pages = append(pages, types.Page{PageNumber: 22, Text: "Conclusion\n\n" + filler})
	pages = append(pages, prosePages(23, 25)...)
	return pages
}

func newTestTOCSource() *TOCSource {
	cfg := DefaultConfig()
	return NewTOCSource(cfg, NewContentDensityValidator(newTestExtractor(), cfg))
}

func TestTOCSourceResolvesOffset(t *testing.T) {
	s := newTestTOCSource()

	got := s.Detect(tocTestPages(), nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 chapters, got %v", got)
	}

	want := []struct {
		number     int
		title      string
		start, end int
	}{
		{1, "Getting Started", 2, 11},
		{2, "Advanced Topics", 12, 21},
		{3, "Conclusion", 22, 25},
	}
	for i, w := range want {
		b := got[i]
		if b.ChapterNumber != w.number || b.Title != w.title || b.StartPage != w.start || b.EndPage != w.end {
			t.Fatalf("chapter %d = %+v, want %+v", i, b, w)
		}
		if b.Method != types.MethodTOC {
			t.Fatalf("chapter %d method = %q, want toc", i, b.Method)
		}
	}
}

func TestTOCSourceRequiresTwoResolvedChapters(t *testing.T) {
	s := newTestTOCSource()

	// A contents page whose entries point nowhere resolves no chapters.
	toc := "Contents\n" +
		"1. Phantom Chapter ........ 90\n" +
		"2. Missing Chapter ........ 95\n" +
		"3. Absent Chapter ........ 99\n"
	pages := append([]types.Page{{PageNumber: 1, Text: toc}}, prosePages(2, 10)...)
	if got := s.Detect(pages, nil); len(got) != 0 {
		t.Fatalf("unresolvable contents should yield nothing, got %v", got)
	}
}

func TestTOCSourceNoContentsPage(t *testing.T) {
	s := newTestTOCSource()

	if got := s.Detect(prosePages(1, 10), nil); len(got) != 0 {
		t.Fatalf("prose-only pages should yield nothing, got %v", got)
	}
}

func TestParseTOCEntries(t *testing.T) {
	text := "Contents\n" +
		"Preface ........ iv\n" +
		"1. Getting Started ........ 1\n" +
		"XII. Late Chapter ........ 200\n" +
		"Not an entry line\n" +
		"Epilogue    312\n"
	entries := parseTOCEntries(text)

	if len(entries) != 3 {
		t.Fatalf("expected 3 arabic-paged entries, got %v", entries)
	}
	if entries[0].Number != 1 || entries[0].Title != "Getting Started" || entries[0].LogicalPage != 1 {
		t.Fatalf("entry 0 = %+v", entries[0])
	}
	if entries[1].Number != 12 || entries[1].LogicalPage != 200 {
		t.Fatalf("roman identifier not resolved: %+v", entries[1])
	}
	if entries[2].Number != 0 || entries[2].Title != "Epilogue" || entries[2].LogicalPage != 312 {
		t.Fatalf("wide-gap entry = %+v", entries[2])
	}
}
