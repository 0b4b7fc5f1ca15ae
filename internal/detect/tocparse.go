package detect

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// tocHeadingPattern recognizes the title line of a contents page.
var tocHeadingPattern = regexp.MustCompile(`(?i)^\s{0,8}(table\s+of\s+contents|contents)\s{0,8}$`)

// tocEntryPattern matches one contents entry: optional chapter identifier,
// title, then a page number after dot leaders or a wide gap. Quantifiers are
// bounded.
var tocEntryPattern = regexp.MustCompile(
	`^\s{0,8}(?:(\d{1,3}|[IVXLCDMivxlcdm]{1,7})[.:]?\s{1,6})?(\pL.{0,98}?)\s{0,4}(?:\.{2,}|\s{2,})\s{0,4}(\d{1,4})\s{0,4}$`)

// minTOCEntryLines is how many entry-shaped lines make a page look like a
// contents page even without a "Contents" heading.
const minTOCEntryLines = 3

// tocOffsetSearchMax bounds the logical-to-physical offset probe. Front
// matter (cover, copyright, the contents itself, roman-numbered prefaces)
// rarely exceeds this many physical pages.
const tocOffsetSearchMax = 30

// tocEntry is one parsed contents line before offset resolution.
type tocEntry struct {
	Number      int // 0 when the entry carries no identifier
	Title       string
	LogicalPage int
}

// TOCSource parses a table-of-contents structure from the document's leading
// pages and resolves the logical-to-physical page offset by cross-checking
// candidate pages against the content-density validator. It yields nothing
// unless at least two chapters resolve with confidence.
type TOCSource struct {
	cfg     Config
	density *ContentDensityValidator
}

// NewTOCSource builds a TOC source using the density validator as its
// validation oracle.
func NewTOCSource(cfg Config, density *ContentDensityValidator) *TOCSource {
	return &TOCSource{cfg: cfg.withDefaults(), density: density}
}

// Name implements CandidateSource.
func (s *TOCSource) Name() string { return "toc" }

// Detect implements CandidateSource.
func (s *TOCSource) Detect(pages []types.Page, _ map[string]any) []types.ChapterBoundary {
	tocPages := s.findTOCPages(pages)
	if len(tocPages) == 0 {
		return nil
	}

	var entries []tocEntry
	for _, p := range tocPages {
		entries = append(entries, parseTOCEntries(p.Text)...)
	}
	if len(entries) < 2 {
		return nil
	}

	offset, matched := s.resolveOffset(entries, pages)
	if len(matched) < 2 {
		return nil
	}

	last := lastPageNumber(pages)
	out := make([]types.ChapterBoundary, 0, len(matched))
	for i, e := range matched {
		number := e.Number
		if number == 0 {
			number = i + 1
		}
		b := types.ChapterBoundary{
			ChapterNumber: number,
			Title:         e.Title,
			StartPage:     e.LogicalPage + offset,
			EndPage:       last,
			Method:        types.MethodTOC,
		}
		if i+1 < len(matched) {
			b.EndPage = matched[i+1].LogicalPage + offset - 1
		}
		if b.EndPage < b.StartPage {
			b.EndPage = b.StartPage
		}
		out = append(out, b)
	}
	return out
}

// findTOCPages returns the contents page run within the leading pages: the
// first page with a contents heading or a dense block of entry lines, plus
// any immediately following pages that still look like entries.
func (s *TOCSource) findTOCPages(pages []types.Page) []types.Page {
	limit := s.cfg.TOCScanPages
	if limit > len(pages) {
		limit = len(pages)
	}

	start := -1
	for i := 0; i < limit; i++ {
		if looksLikeTOCPage(pages[i].Text) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	out := []types.Page{pages[start]}
	for i := start + 1; i < limit; i++ {
		if countEntryLines(pages[i].Text) < minTOCEntryLines {
			break
		}
		out = append(out, pages[i])
	}
	return out
}

func looksLikeTOCPage(text string) bool {
	for i, line := range strings.Split(text, "\n") {
		if i >= 5 {
			break
		}
		if tocHeadingPattern.MatchString(line) {
			return true
		}
	}
	return countEntryLines(text) >= minTOCEntryLines
}

func countEntryLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if tocEntryPattern.MatchString(line) {
			count++
		}
	}
	return count
}

// parseTOCEntries extracts entry lines from a contents page. Entries with
// roman logical pages are front matter and are skipped; chapters live in the
// arabic-numbered body.
func parseTOCEntries(text string) []tocEntry {
	var out []tocEntry
	for _, line := range strings.Split(text, "\n") {
		m := tocEntryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(strings.Trim(m[2], " ."))
		if title == "" || tocHeadingPattern.MatchString(title) || letterCount(title) < 2 {
			continue
		}
		logical, err := strconv.Atoi(m[3])
		if err != nil || logical <= 0 {
			continue
		}

		number := 0
		if m[1] != "" {
			if n, _, ok := parseIdentifier(m[1]); ok {
				number = n
			}
		}
		out = append(out, tocEntry{Number: number, Title: title, LogicalPage: logical})
	}
	return out
}

// resolveOffset probes candidate logical-to-physical offsets and keeps the
// one under which the most entries land on a page whose prefix carries the
// entry title and passes the content-density check. Ties prefer the smaller
// offset so the result is deterministic.
func (s *TOCSource) resolveOffset(entries []tocEntry, pages []types.Page) (int, []tocEntry) {
	byNumber := make(map[int]types.Page, len(pages))
	for _, p := range pages {
		byNumber[p.PageNumber] = p
	}

	bestOffset := 0
	var bestMatched []tocEntry
	for offset := 0; offset <= tocOffsetSearchMax; offset++ {
		var matched []tocEntry
		for _, e := range entries {
			page, ok := byNumber[e.LogicalPage+offset]
			if !ok {
				continue
			}
			if !pagePrefixHasTitle(page.Text, e.Title, s.cfg.MarkerScanWindowLines) {
				continue
			}
			if !s.density.Accept(page.Text) {
				continue
			}
			matched = append(matched, e)
		}
		if len(matched) > len(bestMatched) {
			bestMatched = matched
			bestOffset = offset
		}
	}

	sort.SliceStable(bestMatched, func(i, j int) bool {
		return bestMatched[i].LogicalPage < bestMatched[j].LogicalPage
	})
	return bestOffset, bestMatched
}

// pagePrefixHasTitle reports whether the page's leading lines contain the
// entry title, case-insensitively with collapsed whitespace.
func pagePrefixHasTitle(text, title string, windowLines int) bool {
	lines := strings.Split(text, "\n")
	if len(lines) > windowLines {
		lines = lines[:windowLines]
	}
	haystack := normalizeSpace(strings.ToLower(strings.Join(lines, " ")))
	needle := normalizeSpace(strings.ToLower(title))
	return needle != "" && strings.Contains(haystack, needle)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func letterCount(s string) int {
	count := 0
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			count++
		}
	}
	return count
}
