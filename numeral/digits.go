// Arabic-digit evaluation: "3.14", "1,234.5", "1.0K", "1.5万", "-4 5/2".
package numeral

import (
	"strings"

	"gopkg.in/inf.v0"
)

// evalDigits evaluates an Arabic digit run.
//
// Trailing multiplier words ("万", "K") are removed first and their product
// kept as the power. Digits accumulate left to right; in a fraction a space
// or slash ends the current term, so "4 5/2" is 4 + 5/2. Group separators
// are skipped.
func evalDigits(s string, cfg *Config) (*inf.Dec, error) {
	s, negative := cfg.trimNegative(s)
	s, power, err := cfg.stripMultipliers(s)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)

	isFrac := strings.ContainsRune(s, '/')

	var (
		stack      []*inf.Dec
		temp       = new(inf.Dec)
		place      inf.Scale
		afterPoint bool
		termDigits bool // the current term has a digit
		sawDigit   bool
		slashes    int
		denTerms   int // terms pushed after the slash
	)
	push := func() {
		stack = append(stack, temp)
		if slashes > 0 {
			denTerms++
		}
		temp = new(inf.Dec)
		place = 0
		afterPoint = false
		termDigits = false
	}

	for _, r := range s {
		switch {
		case isASCIIDigit(r):
			d := int64(r - '0')
			if afterPoint {
				place++
				temp.Add(temp, inf.NewDec(d, place))
			} else {
				temp.Mul(temp, decTen)
				temp.Add(temp, inf.NewDec(d, 0))
			}
			sawDigit = true
			termDigits = true
		case r == cfg.decimalSep:
			if afterPoint {
				return nil, unparsable("repeated decimal separator in %q", s)
			}
			afterPoint = true
		case r == cfg.groupSep:
		case r == ' ':
			if isFrac && termDigits {
				push()
			}
		case r == '/':
			if slashes > 0 {
				return nil, unparsable("repeated fraction slash in %q", s)
			}
			switch {
			case termDigits:
				push()
				slashes++
			case len(stack) > 0:
				// "3 /4": the numerator was closed by the space.
				slashes++
			default:
				return nil, unparsable("fraction without numerator in %q", s)
			}
		case r == '-':
			negative = !negative
		case r == '+':
		default:
			return nil, unknownToken(r)
		}
	}
	if termDigits {
		push()
	}

	if !sawDigit {
		return nil, unparsable("no digits in %q", s)
	}
	if isFrac && denTerms != 1 {
		return nil, unparsable("fraction needs one denominator in %q", s)
	}

	v := new(inf.Dec)
	if isFrac {
		den, num := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		q, err := quo(num, den)
		if err != nil {
			return nil, err
		}
		v.Add(v, q)
	}
	for _, term := range stack {
		v.Add(v, term)
	}

	v.Mul(v, power)
	if negative {
		v.Neg(v)
	}
	return v, nil
}

// stripMultipliers removes trailing multiplier words from s, with any
// spaces before them, and returns the product of their values. A multiplier
// word anywhere else is unparsable.
func (c *Config) stripMultipliers(s string) (string, *inf.Dec, error) {
	power := inf.NewDec(1, 0)
	for trimmed := true; trimmed; {
		trimmed = false
		s = strings.TrimRight(s, " ")
		for _, w := range c.multKeys {
			if rest, ok := strings.CutSuffix(s, w); ok {
				s = rest
				power.Mul(power, inf.NewDec(c.multipliers[w], 0))
				trimmed = true
				break
			}
		}
	}
	for _, w := range c.multKeys {
		if strings.Contains(s, w) {
			return "", nil, unparsable("multiplier %q inside %q", w, s)
		}
	}
	return s, power, nil
}

// trimMultiplierSuffix removes trailing multiplier words from s and returns
// the product of their values.
func (c *Config) trimMultiplierSuffix(s string) (string, *inf.Dec) {
	power := inf.NewDec(1, 0)
	for trimmed := true; trimmed; {
		trimmed = false
		for _, w := range c.multKeys {
			if rest, ok := strings.CutSuffix(s, w); ok && rest != "" {
				s = rest
				power.Mul(power, inf.NewDec(c.multipliers[w], 0))
				trimmed = true
				break
			}
		}
	}
	return s, power
}
