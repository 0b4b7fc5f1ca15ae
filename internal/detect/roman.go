package detect

import (
	"strconv"
	"strings"
)

// romanToInt converts an uppercase roman numeral to its value, or 0 if the
// string is not a canonical roman numeral. Front matter pages and chapter
// headings in older typesetting both use roman numbering. Canonical form is
// enforced by re-serializing the value and comparing, so malformed spellings
// ("IIII", "VV") and ordinary words over the roman alphabet ("CIVIL") fail
// the round trip.
func romanToInt(s string) int {
	romanMap := map[byte]int{
		'I': 1, 'V': 5, 'X': 10, 'L': 50,
		'C': 100, 'D': 500, 'M': 1000,
	}

	result := 0
	for i := 0; i < len(s); i++ {
		val, ok := romanMap[s[i]]
		if !ok {
			return 0
		}
		if i+1 < len(s) && romanMap[s[i+1]] > val {
			result -= val
		} else {
			result += val
		}
	}
	if result <= 0 || intToRoman(result) != s {
		return 0
	}
	return result
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// intToRoman renders n in canonical roman form.
func intToRoman(n int) string {
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String()
}

// parseIdentifier reads a chapter or page identifier that may be arabic or
// roman. Returns (value, isRoman, ok).
func parseIdentifier(s string) (int, bool, bool) {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n, false, true
	}
	if n := romanToInt(upperASCII(s)); n > 0 {
		return n, true, true
	}
	return 0, false, false
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
