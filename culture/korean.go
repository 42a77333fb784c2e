package culture

import "github.com/az-ai-labs/cjknum/numeral"

// KoreanTables returns the numeral tables for Sino-Korean numerals written
// in Hangul.
func KoreanTables() numeral.Tables {
	return numeral.Tables{
		Name: "ko",
		Digits: map[rune]int64{
			'영': 0, '공': 0,
			'일': 1,
			'이': 2,
			'삼': 3,
			'사': 4,
			'오': 5,
			'육': 6, '륙': 6,
			'칠': 7,
			'팔': 8,
			'구': 9,
		},
		Units: map[rune]int64{
			'십': 10,
			'백': 100,
			'천': 1_000,
			'만': 10_000,
			'억': 100_000_000,
			'조': 1_000_000_000_000,
			'경': 10_000_000_000_000_000,
		},
		RoundDirect:   []rune{'억', '조', '경'},
		Multipliers:   arabicMultipliers(),
		DozenSuffixes: []string{"다스"},
		PairSuffixes:  []string{"쌍"},
		FullWidth:     fullWidthTable(),
		UnitWords: map[string]string{
			"만만": "억",
			" ":  "",
		},
		NegativeSigns:   []string{"마이너스", "-"},
		DecimalPoints:   []rune{'점'},
		FractionSplits:  []string{"분의"},
		OrdinalPrefixes: []string{"제"},
		PercentMarkers:  []string{"퍼센트", "프로", "%"},
	}
}

// Korean returns the Korean numeral configuration.
func Korean() (*numeral.Config, error) {
	return numeral.NewConfig(KoreanTables())
}
