package culture

import "github.com/az-ai-labs/cjknum/numeral"

// JapaneseTables returns the numeral tables for Japanese, including the
// daiji forms used on legal documents (壱, 弐, 参, 拾).
func JapaneseTables() numeral.Tables {
	return numeral.Tables{
		Name: "ja",
		Digits: map[rune]int64{
			'〇': 0, '零': 0,
			'一': 1, '壱': 1,
			'二': 2, '弐': 2,
			'三': 3, '参': 3,
			'四': 4,
			'五': 5,
			'六': 6,
			'七': 7,
			'八': 8,
			'九': 9,
		},
		Units: map[rune]int64{
			'十': 10, '拾': 10,
			'百': 100,
			'千': 1_000,
			'万': 10_000,
			'億': 100_000_000,
			'兆': 1_000_000_000_000,
			'京': 10_000_000_000_000_000,
		},
		RoundDirect:   []rune{'億', '兆', '京'},
		Multipliers:   arabicMultipliers(),
		DozenSuffixes: []string{"ダース"},
		PairSuffixes:  []string{"対"},
		FullWidth:     fullWidthTable(),
		Traditional: map[rune]rune{
			'萬': '万',
		},
		UnitWords: map[string]string{
			"万万": "億",
			"億万": "兆",
			"万億": "兆",
			" ":  "",
		},
		NegativeSigns:   []string{"マイナス", "-"},
		DecimalPoints:   []rune{'点'},
		FractionSplits:  []string{"と", "分の"},
		OrdinalPrefixes: []string{"第"},
		PercentMarkers:  []string{"パーセント", "%"},
		IdiomTens:       []rune{'十'},
		IdiomHalf:       '半',
	}
}

// Japanese returns the Japanese numeral configuration.
func Japanese() (*numeral.Config, error) {
	return numeral.NewConfig(JapaneseTables())
}
