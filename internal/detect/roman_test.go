package detect

import "testing"

func TestRomanToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XII", 12},
		{"XL", 40},
		{"MCMXCIV", 1994},
		{"", 0},
		{"ABC", 0},
		{"12", 0},
		{"IIII", 0},
		{"VV", 0},
		{"IC", 0},
		{"XIIX", 0},
		{"CIVIL", 0},
	}
	for _, c := range cases {
		if got := romanToInt(c.in); got != c.want {
			t.Fatalf("romanToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		isRoman bool
		ok      bool
	}{
		{"7", 7, false, true},
		{"iv", 4, true, true},
		{"XII", 12, true, true},
		{"0", 0, false, false},
		{"", 0, false, false},
		{"chapter", 0, false, false},
	}
	for _, c := range cases {
		got, isRoman, ok := parseIdentifier(c.in)
		if got != c.want || isRoman != c.isRoman || ok != c.ok {
			t.Fatalf("parseIdentifier(%q) = (%d, %v, %v), want (%d, %v, %v)",
				c.in, got, isRoman, ok, c.want, c.isRoman, c.ok)
		}
	}
}
