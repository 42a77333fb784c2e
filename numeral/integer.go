// Place-value evaluation of ideographic integers.
package numeral

import (
	"math/big"

	"gopkg.in/inf.v0"
)

// noUnit marks that no unit is pending in the current group.
const noUnit int64 = -1

// evalInteger evaluates an ideographic integer such as "三千二百一".
//
// The scan keeps a running total and a pending group. A unit larger than
// the pending group's last unit closes the group and multiplies it
// ("三十五万"); otherwise it scales the preceding digit into the group.
// A digit after a unit without its own unit takes one place below that
// unit ("一百一" is 110). A zero followed by a digit marks a gap and resets
// the implicit place ("一百零五" is 105). Arabic digits take digit slots
// too, so "1万2千" is 12000.
func evalInteger(s string, cfg *Config) (*inf.Dec, error) {
	s, negative := cfg.trimNegative(s)
	s, factor := cfg.trimGroupSuffix(s)
	s = cfg.replaceUnitWords(s)

	rs := []rune(s)
	if len(rs) == 0 {
		return nil, unparsable("no integer digits")
	}

	var (
		total        = new(big.Int)
		part         = new(big.Int) // group under construction
		tmp          = new(big.Int)
		roundDefault = big.NewInt(1) // implicit place for a trailing digit
		lastDigit    = int64(1)
		lastUnit     = noUnit
		lastWasUnit  bool
	)

	last := len(rs) - 1
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if u, ok := cfg.units[r]; ok {
			unit := big.NewInt(u)
			if lastUnit != noUnit && u > lastUnit {
				if !lastWasUnit {
					part.Add(part, tmp.Mul(big.NewInt(lastDigit), roundDefault))
				}
				total.Add(total, tmp.Mul(part, unit))
				part.SetInt64(0)
				lastUnit = noUnit
				lastWasUnit = false
			} else {
				part.Add(part, tmp.Mul(big.NewInt(lastDigit), unit))
				lastUnit = u
				lastWasUnit = true
				if i == last || cfg.roundDirect[r] {
					total.Add(total, part)
					part.SetInt64(0)
				}
			}
			roundDefault.SetInt64(u / 10)
			continue
		}

		d, width, err := digitSlot(rs[i:], cfg)
		if err != nil {
			return nil, err
		}
		i += width - 1
		if i != last {
			if d == 0 && !cfg.isUnit(rs[i+1]) {
				lastDigit = 1
				roundDefault.SetInt64(1)
			} else {
				lastDigit = d
				lastWasUnit = false
			}
			continue
		}
		// A trailing multi-digit Arabic run is a literal value.
		if width > 1 {
			roundDefault.SetInt64(1)
		}
		part.Add(part, tmp.Mul(big.NewInt(d), roundDefault))
		total.Add(total, part)
		part.SetInt64(0)
	}

	if factor != 1 {
		total.Mul(total, big.NewInt(factor))
	}
	if negative {
		total.Neg(total)
	}
	return inf.NewDecBig(total, 0), nil
}

// maxDigitRun is the longest Arabic digit run that fits one digit slot.
const maxDigitRun = 18

// digitSlot reads the digit at the start of rs. A run of ASCII digits
// fills one slot as a single value ("12" in "12万"). It returns the value
// and the number of runes consumed.
func digitSlot(rs []rune, cfg *Config) (int64, int, error) {
	if !isASCIIDigit(rs[0]) {
		d, ok := cfg.digits[rs[0]]
		if !ok {
			return 0, 0, unknownToken(rs[0])
		}
		return d, 1, nil
	}

	var v int64
	n := 0
	for n < len(rs) && isASCIIDigit(rs[n]) {
		if n == maxDigitRun {
			return 0, 0, unparsable("digit run longer than %d", maxDigitRun)
		}
		v = v*10 + int64(rs[n]-'0')
		n++
	}
	return v, n, nil
}

// pointValue evaluates the digits after an ideographic decimal point,
// one place per digit: "一四" is 0.14.
func pointValue(s string, cfg *Config) (*inf.Dec, error) {
	v := new(inf.Dec)
	var place inf.Scale
	for _, r := range s {
		d, ok := cfg.digitOf(r)
		if !ok {
			return nil, unknownToken(r)
		}
		place++
		v.Add(v, inf.NewDec(d, place))
	}
	if place == 0 {
		return nil, unparsable("no digits after decimal point")
	}
	return v, nil
}

// evalIdeographicDecimal evaluates "三点一四", "点五" and "三点五万".
func evalIdeographicDecimal(s string, cfg *Config) (*inf.Dec, error) {
	s, negative := cfg.trimNegative(s)
	s = cfg.replaceUnitWords(s)

	parts := cfg.splitPoint(s)
	var v *inf.Dec
	switch len(parts) {
	case 1:
		iv, err := evalInteger(parts[0], cfg)
		if err != nil {
			return nil, err
		}
		v = iv
	case 2:
		frac, mult := cfg.trimMultiplierSuffix(parts[1])
		pv, err := pointValue(frac, cfg)
		if err != nil {
			return nil, err
		}
		v = pv
		if parts[0] != "" {
			iv, err := evalInteger(parts[0], cfg)
			if err != nil {
				return nil, err
			}
			v = new(inf.Dec).Add(iv, pv)
		}
		v = new(inf.Dec).Mul(v, mult)
	default:
		return nil, unparsable("%d decimal points", len(parts)-1)
	}

	if negative {
		v.Neg(v)
	}
	return v, nil
}
