package detect

import (
	"regexp"
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// markerPatterns are tried in order against each scanned line; the first
// match on a page wins. Quantifiers are bounded so a pathological line can
// never trigger unbounded backtracking.
var markerPatterns = []*regexp.Regexp{
	// "Chapter 12: Title", "CHAPTER 3 - Title", "Chapter 7. Title"
	regexp.MustCompile(`(?i)^\s{0,8}chapter\s+(\d{1,3})\s{0,4}[:.\-]?\s{0,4}(.{0,120})$`),
	// "Chapter IV: Title" (roman numerals in older typesetting)
	regexp.MustCompile(`(?i)^\s{0,8}chapter\s+([ivxlcdm]{1,7})\b\s{0,4}[:.\-]?\s{0,4}(.{0,120})$`),
	// "Item 5. Title" (filing/report style)
	regexp.MustCompile(`(?i)^\s{0,8}item\s+(\d{1,3})\s{0,4}[:.\-]?\s{0,4}(.{0,120})$`),
	// Generic numbered heading: "3. Getting Started"
	regexp.MustCompile(`^\s{0,8}(\d{1,3})[.:]\s{1,4}(\pL.{1,100})$`),
}

// MarkerSource scans a bounded prefix of every page for explicit chapter
// markers. Duplicate chapter numbers across pages (running header leakage)
// are left for the duplicate filter, not resolved here.
type MarkerSource struct {
	scanWindowLines int
}

// NewMarkerSource returns a marker source scanning the first
// scanWindowLines lines of each page.
func NewMarkerSource(scanWindowLines int) *MarkerSource {
	if scanWindowLines <= 0 {
		scanWindowLines = DefaultConfig().MarkerScanWindowLines
	}
	return &MarkerSource{scanWindowLines: scanWindowLines}
}

// Name implements CandidateSource.
func (s *MarkerSource) Name() string { return "marker" }

// Detect implements CandidateSource.
func (s *MarkerSource) Detect(pages []types.Page, _ map[string]any) []types.ChapterBoundary {
	var out []types.ChapterBoundary
	for _, page := range pages {
		number, title, ok := s.matchPage(page.Text)
		if !ok {
			continue
		}
		out = append(out, types.ChapterBoundary{
			ChapterNumber: number,
			Title:         title,
			StartPage:     page.PageNumber,
			Method:        types.MethodMarker,
		})
	}

	// End page of chapter i is the start of chapter i+1 minus one; the
	// final chapter runs to the document's last page.
	last := lastPageNumber(pages)
	for i := range out {
		if i+1 < len(out) {
			out[i].EndPage = out[i+1].StartPage - 1
		} else {
			out[i].EndPage = last
		}
		if out[i].EndPage < out[i].StartPage {
			out[i].EndPage = out[i].StartPage
		}
	}
	return out
}

// matchPage scans the page's leading lines; first match wins.
func (s *MarkerSource) matchPage(text string) (number int, title string, ok bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > s.scanWindowLines {
		lines = lines[:s.scanWindowLines]
	}

	for _, line := range lines {
		for _, pattern := range markerPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n, _, valid := parseIdentifier(m[1])
			if !valid {
				continue
			}
			title := strings.TrimSpace(strings.Trim(m[2], " .:-"))
			if title == "" {
				title = "Chapter " + strings.TrimSpace(m[1])
			}
			return n, title, true
		}
	}
	return 0, "", false
}
