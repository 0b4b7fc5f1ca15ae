package types

import "testing"

func TestChapterBoundaryValidate(t *testing.T) {
	cases := []struct {
		name     string
		boundary ChapterBoundary
		wantErr  bool
	}{
		{
			name:     "valid",
			boundary: ChapterBoundary{ChapterNumber: 1, Title: "Introduction", StartPage: 1, EndPage: 10, Method: MethodExplicit},
		},
		{
			name:     "single page span",
			boundary: ChapterBoundary{ChapterNumber: 3, Title: "Appendix", StartPage: 200, EndPage: 200, Method: MethodMarker},
		},
		{
			name:     "zero chapter number",
			boundary: ChapterBoundary{ChapterNumber: 0, Title: "Preface", StartPage: 1, EndPage: 2},
			wantErr:  true,
		},
		{
			name:     "blank title",
			boundary: ChapterBoundary{ChapterNumber: 1, Title: "   ", StartPage: 1, EndPage: 2},
			wantErr:  true,
		},
		{
			name:     "start after end",
			boundary: ChapterBoundary{ChapterNumber: 1, Title: "Backwards", StartPage: 10, EndPage: 9},
			wantErr:  true,
		},
	}
	for _, c := range cases {
		err := c.boundary.Validate()
		if c.wantErr && err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !c.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
	}
}

func TestParseDetectionMethod(t *testing.T) {
	cases := []struct {
		in   string
		want DetectionMethod
	}{
		{"explicit", MethodExplicit},
		{"toc", MethodTOC},
		{"marker", MethodMarker},
		{"topic_shift", MethodTopicShift},
		{"", MethodMarker},
		{"magic", MethodMarker},
	}
	for _, c := range cases {
		if got := ParseDetectionMethod(c.in); got != c.want {
			t.Fatalf("ParseDetectionMethod(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
