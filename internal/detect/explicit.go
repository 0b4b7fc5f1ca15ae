package detect

import (
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// MetadataChaptersKey is the metadata map key carrying an externally
// supplied chapter array.
const MetadataChaptersKey = "chapters"

// ExplicitSource reads chapter boundaries straight from document metadata.
// When it yields anything, the orchestrator trusts it completely: no other
// source runs and no filter applies. Malformed entries are skipped silently,
// never fatal.
type ExplicitSource struct{}

// NewExplicitSource returns the metadata-backed source.
func NewExplicitSource() *ExplicitSource { return &ExplicitSource{} }

// Name implements CandidateSource.
func (s *ExplicitSource) Name() string { return "explicit" }

// Detect implements CandidateSource.
func (s *ExplicitSource) Detect(_ []types.Page, meta map[string]any) []types.ChapterBoundary {
	if meta == nil {
		return nil
	}
	raw, ok := meta[MetadataChaptersKey]
	if !ok {
		return nil
	}

	entries := toEntrySlice(raw)
	var out []types.ChapterBoundary
	for _, entry := range entries {
		b, ok := parseExplicitEntry(entry)
		if !ok {
			continue
		}
		out = append(out, b)
	}
	return out
}

// toEntrySlice normalizes the chapters value to a slice of map entries.
// JSON decoding yields []any; callers constructing metadata in Go may pass
// []map[string]any directly.
func toEntrySlice(raw any) []map[string]any {
	switch v := raw.(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// parseExplicitEntry validates one chapter record. All four fields must be
// present and correctly typed.
func parseExplicitEntry(entry map[string]any) (types.ChapterBoundary, bool) {
	number, ok := intField(entry, "number")
	if !ok {
		return types.ChapterBoundary{}, false
	}
	title, ok := entry["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return types.ChapterBoundary{}, false
	}
	startPage, ok := intField(entry, "start_page")
	if !ok {
		return types.ChapterBoundary{}, false
	}
	endPage, ok := intField(entry, "end_page")
	if !ok {
		return types.ChapterBoundary{}, false
	}

	b := types.ChapterBoundary{
		ChapterNumber: number,
		Title:         strings.TrimSpace(title),
		StartPage:     startPage,
		EndPage:       endPage,
		Method:        types.MethodExplicit,
	}
	if err := b.Validate(); err != nil {
		return types.ChapterBoundary{}, false
	}
	return b, true
}

// intField reads an integer metadata field, tolerating the float64 shape
// JSON decoding produces. Fractional values are mistyped, not rounded.
func intField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
