package culture

import "github.com/az-ai-labs/cjknum/numeral"

// ChineseTables returns the numeral tables for Chinese.
// Traditional characters are folded to simplified ones before evaluation,
// so the digit and unit maps only list simplified and financial forms.
func ChineseTables() numeral.Tables {
	return numeral.Tables{
		Name: "zh",
		Digits: map[rune]int64{
			'零': 0, '〇': 0,
			'一': 1, '壹': 1, '幺': 1,
			'二': 2, '两': 2, '贰': 2,
			'三': 3, '叁': 3,
			'四': 4, '肆': 4,
			'五': 5, '伍': 5,
			'六': 6, '陆': 6,
			'七': 7, '柒': 7,
			'八': 8, '捌': 8,
			'九': 9, '玖': 9,
		},
		Units: map[rune]int64{
			'十': 10, '拾': 10,
			'百': 100, '佰': 100,
			'千': 1_000, '仟': 1_000,
			'万': 10_000,
			'亿': 100_000_000,
			'兆': 1_000_000_000_000,
		},
		RoundDirect:   []rune{'亿', '兆'},
		Multipliers:   arabicMultipliers(),
		DozenSuffixes: []string{"打"},
		PairSuffixes:  []string{"对", "双"},
		FullWidth:     fullWidthTable(),
		Traditional: map[rune]rune{
			'萬': '万',
			'億': '亿',
			'兩': '两',
			'貳': '贰',
			'參': '叁',
			'叄': '叁',
			'陸': '陆',
			'點': '点',
			'負': '负',
			'對': '对',
			'雙': '双',
		},
		UnitWords: map[string]string{
			"万万": "亿",
			"亿万": "兆",
			"万亿": "兆",
			" ":  "",
		},
		NegativeSigns:   []string{"负", "-"},
		DecimalPoints:   []rune{'点'},
		FractionSplits:  []string{"又", "分之"},
		OrdinalPrefixes: []string{"第"},
		PercentMarkers:  []string{"百分之", "%"},
		IdiomPair:       '对',
		IdiomTens:       []rune{'十', '拾'},
		IdiomHalf:       '半',
		IdiomPhrases: map[string]int64{
			"半折":  50,
			"10成": 100,
		},
	}
}

// Chinese returns the Chinese numeral configuration.
func Chinese() (*numeral.Config, error) {
	return numeral.NewConfig(ChineseTables())
}
