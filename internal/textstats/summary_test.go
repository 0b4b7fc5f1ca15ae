package textstats

import (
	"strings"
	"testing"
)

func TestSummarizeSingleSentence(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.Summarize("Databases store structured records.", 0.5)
	if got != "Databases store structured records." {
		t.Fatalf("single-sentence summary = %q", got)
	}
}

func TestSummarizeShorterThanInput(t *testing.T) {
	s := NewSummarizer(nil)

	text := "Indexing speeds up queries. Caching reduces latency. " +
		"Replication improves availability. Sharding distributes load. " +
		"Monitoring catches regressions."

	for _, ratio := range []float64{0.2, 0.5, 1.0} {
		got := s.Summarize(text, ratio)
		if got == "" {
			t.Fatalf("ratio %g: empty summary", ratio)
		}
		if len(got) >= len(text) {
			t.Fatalf("ratio %g: summary not shorter than input", ratio)
		}
		for _, sent := range Sentences(got) {
			if !strings.Contains(text, sent) {
				t.Fatalf("ratio %g: sentence %q not verbatim", ratio, sent)
			}
		}
	}
}

func TestFirstSentenceFallback(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Plain heading\nMore text", "Plain heading."},
		{"Already terminated. Next sentence.", "Already terminated."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FirstSentenceFallback(tc.text); got != tc.want {
			t.Fatalf("FirstSentenceFallback(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
