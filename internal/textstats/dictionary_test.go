package textstats

import "testing"

func TestDictionaryValidatorEmbeddedDefaults(t *testing.T) {
	v := NewDictionaryValidator(nil, nil)

	for _, word := range []string{"database", "network", "architecture", "Performance"} {
		if !v.InDictionary(word) {
			t.Fatalf("InDictionary(%q) = false, want true", word)
		}
	}
	if v.InDictionary("qzxvbnmw") {
		t.Fatal("InDictionary accepted obvious junk")
	}
}

func TestDictionaryValidatorAllowlistSuffixes(t *testing.T) {
	v := NewDictionaryValidator([]string{"word"}, []string{"-service", "api"})

	cases := []struct {
		term string
		want bool
	}{
		{"payment-service", true},
		{"billing-api", true}, // suffix normalized to "-api"
		{"service", false},    // no hyphen boundary
		{"word", true},        // dictionary hit
		{"unknown", false},
	}
	for _, tc := range cases {
		if got := v.Accepts(tc.term); got != tc.want {
			t.Fatalf("Accepts(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestDictionaryValidatorCustomWordlist(t *testing.T) {
	v := NewDictionaryValidator([]string{"foo", "bar"}, []string{"-x"})

	if !v.InDictionary("foo") || !v.InDictionary("BAR") {
		t.Fatal("custom wordlist entries must resolve case-insensitively")
	}
	if v.InDictionary("database") {
		t.Fatal("custom wordlist must replace the embedded defaults, not extend them")
	}
}
