// Percentage evaluation: idioms, Arabic digits and ideographic numerals.
package numeral

import (
	"strings"
	"unicode/utf8"

	"gopkg.in/inf.v0"
)

// maxIdiomTokens is the number of value tokens an idiom may carry:
// tens, tenths and hundredths of the base ("三割五分五厘").
const maxIdiomTokens = 3

// evalIdiomPercent evaluates discount and proportion idioms.
// The first token counts tens of percent ("三折" is 30%), the second
// single percents or a half ("七五折" is 75%, "三成半" is 35%), the third
// tenths of a percent.
func evalIdiomPercent(s string, cfg *Config) (*inf.Dec, error) {
	s = cfg.replaceUnitWords(s)
	if v, ok := cfg.idiomPhrases[s]; ok {
		return inf.NewDec(v, 0), nil
	}

	var tokens []rune
	for _, r := range s {
		if cfg.isIdiomToken(r) {
			tokens = append(tokens, r)
		}
	}
	if len(tokens) == 0 {
		return nil, unparsable("no idiom digits in %q", s)
	}
	if len(tokens) > maxIdiomTokens {
		return nil, unparsable("%d idiom digits in %q", len(tokens), s)
	}

	var first int64
	switch r := tokens[0]; {
	case cfg.idiomPair != 0 && r == cfg.idiomPair:
		first = 5
	case cfg.idiomTens[r]:
		first = 10
	default:
		d, ok := cfg.digitOf(r)
		if !ok {
			return nil, unknownToken(r)
		}
		first = d
	}
	v := inf.NewDec(first, 0)

	for i, r := range tokens[1:] {
		place := inf.Scale(i + 1)
		if i == 0 && cfg.idiomHalf != 0 && r == cfg.idiomHalf {
			v.Add(v, inf.NewDec(5, 1))
			continue
		}
		d, ok := cfg.digitOf(r)
		if !ok {
			return nil, unknownToken(r)
		}
		v.Add(v, inf.NewDec(d, place))
	}

	return v.Mul(v, decTen), nil
}

// isIdiomToken reports whether r carries a value inside an idiom.
func (c *Config) isIdiomToken(r rune) bool {
	if _, ok := c.digitOf(r); ok {
		return true
	}
	return (c.idiomPair != 0 && r == c.idiomPair) ||
		(c.idiomHalf != 0 && r == c.idiomHalf) ||
		c.idiomTens[r]
}

// evalDigitPercent evaluates "5.5%", "百分之5", "百分之5万" and "3K%".
// Anything besides percent markers around the digit run is unparsable.
func evalDigitPercent(s string, cfg *Config) (*inf.Dec, error) {
	s, negative := cfg.trimNegative(s)
	s = cfg.stripPercent(s)

	var (
		v   *inf.Dec
		err error
	)
	if cfg.digitAfterUnit(s) {
		v, err = evalInteger(s, cfg)
	} else {
		start, end := digitSpan(s, cfg)
		if start < 0 {
			return nil, unparsable("no digits in %q", s)
		}
		if rest := strings.TrimSpace(s[:start] + s[end:]); rest != "" {
			return nil, unparsable("%q around digits in %q", rest, s)
		}
		v, err = evalDigits(s[start:end], cfg)
	}
	if err != nil {
		return nil, err
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}

// digitSpan returns the byte span of the first run of characters that can
// make up an Arabic number: digits, separators, signs and multiplier letters,
// followed by any multiplier words ("5万"). start is -1 when s has no run.
func digitSpan(s string, cfg *Config) (start, end int) {
	start, end = -1, -1
	for i, r := range s {
		if isDigitRunRune(r, cfg) {
			if start < 0 {
				start = i
			}
			end = i + utf8.RuneLen(r)
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return -1, -1
	}

	for extended := true; extended; {
		extended = false
		for _, w := range cfg.multKeys {
			if strings.HasPrefix(s[end:], w) {
				end += len(w)
				extended = true
				break
			}
		}
	}
	return start, end
}

func isDigitRunRune(r rune, cfg *Config) bool {
	switch {
	case isASCIIDigit(r), r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r == cfg.decimalSep, r == cfg.groupSep, r == '-', r == '+', r == '/', r == ' ':
		return true
	}
	return false
}

// evalIdeographicPercent evaluates "百分之三十五", "百分之十点五" and
// "五十パーセント". Arabic digits are delegated to the digit evaluator.
func evalIdeographicPercent(s string, cfg *Config) (*inf.Dec, error) {
	s, negative := cfg.trimNegative(s)
	s = cfg.stripPercent(s)
	if s == "" {
		return nil, unparsable("no numeral in percentage")
	}

	var (
		v   *inf.Dec
		err error
	)
	if cfg.digitPath(s) {
		v, err = evalDigits(s, cfg)
	} else {
		v, err = evalIdeographicDecimal(s, cfg)
	}
	if err != nil {
		return nil, err
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}
