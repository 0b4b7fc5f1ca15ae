package textstats

import (
	"reflect"
	"testing"

	"github.com/jackzampolin/spine/internal/types"
)

func TestStemDedupCollapsesWordForms(t *testing.T) {
	d := NewStemDeduplicator("english", 0.9)

	in := []types.WeightedTerm{
		{Term: "model", Score: 0.1},
		{Term: "models", Score: 0.2},
		{Term: "modeling", Score: 0.3},
		{Term: "architecture", Score: 0.4},
	}
	got := d.Dedup(in)

	want := []types.WeightedTerm{
		{Term: "model", Score: 0.1},
		{Term: "architecture", Score: 0.4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedup = %v, want %v", got, want)
	}
}

func TestStemDedupPhrasesIndependentOfSingleWords(t *testing.T) {
	d := NewStemDeduplicator("english", 0.9)

	in := []types.WeightedTerm{
		{Term: "model", Score: 0.1},
		{Term: "model training", Score: 0.2},
	}
	got := d.Dedup(in)
	if len(got) != 2 {
		t.Fatalf("phrase sharing a root with a single word must survive, got %v", got)
	}
}

func TestStemDedupNearDuplicatePhrases(t *testing.T) {
	d := NewStemDeduplicator("english", 0.9)

	in := []types.WeightedTerm{
		{Term: "neural network training", Score: 0.1},
		{Term: "neural networks training", Score: 0.2}, // same stem set
		{Term: "network capacity planning", Score: 0.3},
	}
	got := d.Dedup(in)
	if len(got) != 2 {
		t.Fatalf("expected near-duplicate phrase collapsed, got %v", got)
	}
	if got[0].Term != "neural network training" || got[1].Term != "network capacity planning" {
		t.Fatalf("wrong survivors: %v", got)
	}
}

func TestStemDedupIdempotent(t *testing.T) {
	d := NewStemDeduplicator("english", 0.9)

	in := []types.WeightedTerm{
		{Term: "index", Score: 0.1},
		{Term: "indexes", Score: 0.2},
		{Term: "query performance", Score: 0.3},
	}
	once := d.Dedup(in)
	twice := d.Dedup(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Dedup not idempotent: %v vs %v", once, twice)
	}
}

func TestDedupStrings(t *testing.T) {
	d := NewStemDeduplicator("english", 0.9)

	got := d.DedupStrings([]string{"cache", "caches", "caching", "latency"})
	want := []string{"cache", "latency"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DedupStrings = %v, want %v", got, want)
	}
}
