// Package numeral evaluates CJK numeral expressions to exact decimal values.
//
// The package turns a numeral substring that an upstream matcher already
// classified into a numeric value:
//
//   - Integer evaluates place-value numerals ("三千二百一", "一百零五").
//   - Double evaluates decimals, ideographic ("三点一四") or Arabic ("1,234.5", "1.0K").
//   - Fraction evaluates "int 又 denom 分之 num" forms and Arabic "3/4", "-4 5/2".
//   - Power evaluates exponential ("2e3") and caret ("2^5") notation.
//   - PercentageIdiom evaluates discount/proportion idioms ("七五折", "六成四").
//   - PercentageDigit and PercentageIdeographic evaluate "5.5%" and "百分之三十".
//   - Ordinal strips an ordinal marker ("第") and evaluates the rest.
//
// Every language is described by an immutable Config built from Tables; the
// algorithms never reference a specific script. Values are gopkg.in/inf.v0
// decimals, so long place-value and fraction sums never drift.
//
// All functions are safe for concurrent use by multiple goroutines, and a
// *Config may be shared freely once built.
//
// Known limitations:
//
//   - Arabic digits interleaved with unit characters ("1万2千") are evaluated
//     place by place like ideographic digits; a multi-digit run counts as
//     one digit slot ("12万" is 120000). Multiplier words after a plain
//     Arabic number must be trailing ("1.5万"); elsewhere they are unparsable.
//   - A bare unit after a unit-digit pair reuses the previous digit, so
//     "三百十" is 330, not 310. Write "三百一十" for 310.
//   - Non-terminating quotients are rounded half-even to 20 fractional digits.
//   - Fractional exponents are computed in float64 precision.
package numeral

import (
	"strconv"
	"strings"

	"gopkg.in/inf.v0"
)

// maxInputBytes is the maximum numeral length accepted by Evaluate.
const maxInputBytes = 1 << 12

// Result is the outcome of evaluating one numeral.
type Result struct {
	// Value is the exact value with trailing fractional zeros removed.
	Value *inf.Dec

	// Resolution is the culture-invariant textual form of Value,
	// suffixed with "%" for percentage tags.
	Resolution string

	// Text is the numeral exactly as passed to Evaluate, before normalization.
	Text string

	Tag Tag
}

// Float64 returns Value as the nearest float64.
func (r Result) Float64() float64 {
	if r.Value == nil {
		return 0
	}
	f, _ := strconv.ParseFloat(r.Value.String(), 64)
	return f
}

// Evaluate computes the value of text, routing by tag.
// The text is normalized (NFC, full-width to half-width, traditional to
// simplified script) before evaluation; Result.Text always carries the
// original input.
//
// Returns an error wrapping ErrUnparsable when text does not have the shape
// tag implies, and ErrUnknownToken when a character is missing from the
// lookup table the evaluation needs.
func Evaluate(text string, tag Tag, cfg *Config) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}
	if len(text) > maxInputBytes {
		return Result{}, unparsable("input exceeds %d bytes", maxInputBytes)
	}

	s := strings.TrimSpace(cfg.Normalize(text))
	if s == "" {
		return Result{}, unparsable("empty input")
	}

	var (
		v   *inf.Dec
		err error
	)
	switch tag {
	case Integer:
		v, err = evalIntegerOrDigits(s, cfg)
	case Double:
		v, err = evalDouble(s, cfg)
	case Fraction:
		v, err = evalFraction(s, cfg)
	case Power:
		v, err = evalPower(s, cfg)
	case PercentageIdiom:
		v, err = evalIdiomPercent(s, cfg)
	case PercentageDigit:
		v, err = evalDigitPercent(s, cfg)
	case PercentageIdeographic:
		v, err = evalIdeographicPercent(s, cfg)
	case Ordinal:
		v, err = evalIntegerOrDigits(cfg.trimOrdinal(s), cfg)
	default:
		return Result{}, ErrUnknownTag
	}
	if err != nil {
		return Result{}, err
	}

	v = reduce(v)
	res := Result{
		Value:      v,
		Resolution: v.String(),
		Text:       text,
		Tag:        tag,
	}
	if tag.IsPercentage() {
		res.Resolution += "%"
	}
	return res, nil
}

// evalIntegerOrDigits evaluates an integer numeral, switching to the digit
// evaluator for Arabic-digit text.
func evalIntegerOrDigits(s string, cfg *Config) (*inf.Dec, error) {
	if cfg.digitPath(s) {
		return evalDigits(s, cfg)
	}
	return evalInteger(s, cfg)
}

// evalDouble evaluates Arabic or ideographic decimals.
func evalDouble(s string, cfg *Config) (*inf.Dec, error) {
	if cfg.digitPath(s) {
		return evalDigits(s, cfg)
	}
	return evalIdeographicDecimal(s, cfg)
}

// hasArabicDigit reports whether s contains an ASCII digit.
func hasArabicDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
