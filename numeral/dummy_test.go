package numeral

import (
	"errors"
	"testing"

	"gopkg.in/inf.v0"
)

// dummyTables is a Latin-letter stand-in for a CJK language. Every test
// that passes with it proves the evaluators carry no script of their own.
//
//	digits  Z=0 A=1 B=2 C=3 D=4 E=5 F=6 G=7 H=8 I=9
//	units   t=10 h=100 k=1000 w=10^4 y=10^8 (y flushes directly)
//	point p, negative ~, fraction "int & den | num", ordinal #
//	idioms  x marks the idiom, @ pair, T ten, ½ half
func dummyTables() Tables {
	return Tables{
		Name: "dummy",
		Digits: map[rune]int64{
			'Z': 0, 'A': 1, 'B': 2, 'C': 3, 'D': 4,
			'E': 5, 'F': 6, 'G': 7, 'H': 8, 'I': 9,
		},
		Units: map[rune]int64{
			't': 10,
			'h': 100,
			'k': 1_000,
			'w': 10_000,
			'y': 100_000_000,
		},
		RoundDirect:     []rune{'y'},
		Multipliers:     map[string]int64{"K": 1_000},
		DozenSuffixes:   []string{"dz"},
		PairSuffixes:    []string{"pr"},
		FullWidth:       map[rune]rune{'１': '1', '２': '2', '％': '%'},
		Traditional:     map[rune]rune{'Ω': 'w'},
		UnitWords:       map[string]string{"ww": "y", " ": ""},
		NegativeSigns:   []string{"~", "-"},
		DecimalPoints:   []rune{'p'},
		FractionSplits:  []string{"&", "|"},
		OrdinalPrefixes: []string{"#"},
		PercentMarkers:  []string{"pct", "%"},
		IdiomPair:       '@',
		IdiomTens:       []rune{'T'},
		IdiomHalf:       '½',
		IdiomPhrases:    map[string]int64{"½x": 50, "10x": 100},
	}
}

func dummyConfig(tb testing.TB) *Config {
	tb.Helper()
	cfg, err := NewConfig(dummyTables())
	if err != nil {
		tb.Fatalf("NewConfig(dummy): %v", err)
	}
	return cfg
}

// evalCase is one input for an unexported evaluator. want is the canonical
// value; wantErr, when set, is the sentinel the error must wrap.
type evalCase struct {
	name    string
	input   string
	want    string
	wantErr error
}

func checkEval(t *testing.T, fn func(string, *Config) (*inf.Dec, error), cases []evalCase) {
	t.Helper()
	cfg := dummyConfig(t)

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := fn(tt.input, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("%q: error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", tt.input, err)
			}
			if s := reduce(got).String(); s != tt.want {
				t.Errorf("%q = %s, want %s", tt.input, s, tt.want)
			}
		})
	}
}
