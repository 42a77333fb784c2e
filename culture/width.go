package culture

import "golang.org/x/text/width"

// fullWidthTable maps the full-width ASCII block (U+FF01-U+FF5E) and the
// ideographic space to their half-width forms.
func fullWidthTable() map[rune]rune {
	m := make(map[rune]rune, 0xFF5E-0xFF01+2)
	for r := rune(0xFF01); r <= 0xFF5E; r++ {
		if n := width.LookupRune(r).Narrow(); n != 0 {
			m[r] = n
		}
	}
	m['　'] = ' '
	return m
}

// arabicMultipliers are the letter suffixes accepted after Arabic digits.
func arabicMultipliers() map[string]int64 {
	return map[string]int64{
		"k": 1_000,
		"K": 1_000,
		"M": 1_000_000,
		"G": 1_000_000_000,
		"T": 1_000_000_000_000,
	}
}
