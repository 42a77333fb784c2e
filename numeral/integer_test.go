// Tests for place-value integers and ideographic decimals.
package numeral

import "testing"

func TestEvalInteger(t *testing.T) {
	t.Parallel()

	checkEval(t, evalInteger, []evalCase{
		{name: "trailing digit takes place below unit", input: "CkBhA", want: "3210"},
		{name: "single group", input: "Bh", want: "200"},
		{name: "zero gap", input: "AhZE", want: "105"},
		{name: "leading unit", input: "tE", want: "15"},
		{name: "hundred one", input: "AhA", want: "110"},
		{name: "round direct unit", input: "AyBkw", want: "120000000"},
		{name: "group closed by larger unit", input: "CtEw", want: "350000"},
		{name: "digit after myriad", input: "AwE", want: "15000"},
		{name: "largest two groups", input: "IkIhItIwIkIhItI", want: "99999999"},
		{name: "single digit", input: "G", want: "7"},
		{name: "zero", input: "Z", want: "0"},
		{name: "bare unit", input: "h", want: "100"},
		{name: "negative", input: "~E", want: "-5"},
		{name: "dozen", input: "Cdz", want: "36"},
		{name: "pair", input: "Apr", want: "2"},
		{name: "unit word", input: "Aww", want: "100000000"},
		{name: "unknown rune", input: "X", wantErr: ErrUnknownToken},
		{name: "unknown rune after unit", input: "AhX", wantErr: ErrUnknownToken},
		{name: "suffix only", input: "dz", wantErr: ErrUnparsable},
		{name: "sign only", input: "~", wantErr: ErrUnparsable},
		{name: "bare unit after unit reuses digit", input: "Cht", want: "330"},
		{name: "arabic digit slots", input: "1w2k", want: "12000"},
		{name: "arabic slots closed by larger unit", input: "3k5hw", want: "35000000"},
		{name: "arabic trailing digit", input: "1w5", want: "15000"},
		{name: "arabic run in one slot", input: "12w", want: "120000"},
		{name: "arabic trailing run is literal", input: "1w25", want: "10025"},
		{name: "mixed scripts", input: "Aw2k", want: "12000"},
		{name: "arabic run too long", input: "1234567890123456789w", wantErr: ErrUnparsable},
	})
}

func TestEvalIdeographicDecimal(t *testing.T) {
	t.Parallel()

	checkEval(t, evalIdeographicDecimal, []evalCase{
		{name: "pi", input: "CpAD", want: "3.14"},
		{name: "negative", input: "~CpE", want: "-3.5"},
		{name: "no integer part", input: "pE", want: "0.5"},
		{name: "multiplier suffix", input: "CpEw", want: "35000"},
		{name: "integer only", input: "CtE", want: "35"},
		{name: "place value integer part", input: "AtpE", want: "10.5"},
		{name: "two points", input: "CpAp", wantErr: ErrUnparsable},
		{name: "empty fraction", input: "Cp", wantErr: ErrUnparsable},
		{name: "unknown fraction rune", input: "CpX", wantErr: ErrUnknownToken},
		{name: "unit in fraction", input: "CpAtA", wantErr: ErrUnknownToken},
	})
}

func TestPointValue(t *testing.T) {
	t.Parallel()

	cfg := dummyConfig(t)
	got, err := pointValue("ZZE", cfg)
	if err != nil {
		t.Fatalf("pointValue: %v", err)
	}
	if s := reduce(got).String(); s != "0.005" {
		t.Errorf("pointValue(ZZE) = %s, want 0.005", s)
	}
}
