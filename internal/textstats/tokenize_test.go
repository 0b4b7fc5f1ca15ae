package textstats

import (
	"reflect"
	"testing"
)

func TestWordsLowercasesAndDropsPunctuation(t *testing.T) {
	got := Words("Hello, World! 42 x")
	want := []string{"hello", "world", "42", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Words = %v, want %v", got, want)
	}
}

func TestSentencesSplitsOnTerminatorsAndNewlines(t *testing.T) {
	got := Sentences("First sentence. Second one!\nThird line")
	want := []string{"First sentence.", "Second one!", "Third line"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sentences = %v, want %v", got, want)
	}
}

func TestIsAlphabetic(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"word", true},
		{"payment-service", true},
		{"db2", false},
		{"", false},
		{"naïve", true},
	}
	for _, tc := range cases {
		if got := isAlphabetic(tc.in); got != tc.want {
			t.Fatalf("isAlphabetic(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
