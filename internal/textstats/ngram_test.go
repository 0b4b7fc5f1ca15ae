package textstats

import (
	"reflect"
	"testing"

	"github.com/jackzampolin/spine/internal/types"
)

func TestCleanNgramsDropsRepeatedWords(t *testing.T) {
	in := []types.WeightedTerm{
		{Term: "Models Models Applications", Score: 0.1},
		{Term: "Machine Learning Models", Score: 0.2},
		{Term: "data data", Score: 0.3},
		{Term: "data", Score: 0.4},
	}
	got := CleanNgrams(in)

	want := []types.WeightedTerm{
		{Term: "Machine Learning Models", Score: 0.2},
		{Term: "data", Score: 0.4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanNgrams = %v, want %v", got, want)
	}
}

func TestCleanNgramsCaseInsensitive(t *testing.T) {
	in := []types.WeightedTerm{{Term: "Data processing DATA", Score: 0.1}}
	if got := CleanNgrams(in); len(got) != 0 {
		t.Fatalf("expected case-insensitive repeat dropped, got %v", got)
	}
}

func TestCleanNgramStrings(t *testing.T) {
	got := CleanNgramStrings([]string{"query query plan", "query plan"})
	want := []string{"query plan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanNgramStrings = %v, want %v", got, want)
	}
}
