// Exponential ("2e3", "1.5E-3") and caret ("2^5") notation.
package numeral

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"
)

// maxExponent bounds exponents so results stay printable.
const maxExponent = 4096

// evalPower evaluates "base e exp" as base*10^exp and "base ^ exp" as base^exp.
// Each operand is an Arabic digit run with its own sign.
func evalPower(s string, cfg *Config) (*inf.Dec, error) {
	idx := strings.IndexAny(s, "eE^")
	if idx < 0 {
		return nil, unparsable("no exponent marker in %q", s)
	}
	caret := s[idx] == '^'
	baseText, expText := s[:idx], s[idx+1:]
	if strings.ContainsAny(expText, "eE^") {
		return nil, unparsable("repeated exponent marker in %q", s)
	}

	base, err := evalDigits(baseText, cfg)
	if err != nil {
		return nil, err
	}
	exp, err := evalDigits(expText, cfg)
	if err != nil {
		return nil, err
	}

	n, integral := integerExponent(exp)
	if integral && (n > maxExponent || n < -maxExponent) {
		return nil, unparsable("exponent %d out of range", n)
	}

	switch {
	case !caret && integral:
		return shift(base, n), nil
	case caret && integral:
		return powInt(base, n)
	case !caret:
		return powFloat(inf.NewDec(10, 0), exp, base)
	default:
		return powFloat(base, exp, inf.NewDec(1, 0))
	}
}

// integerExponent returns exp as an int64 when it is integral and small
// enough to be range-checked.
func integerExponent(exp *inf.Dec) (int64, bool) {
	r := reduce(exp)
	if r.Scale() != 0 {
		return 0, false
	}
	n, ok := r.Unscaled()
	if !ok {
		// Integral but huge: report it as out of range.
		if r.Sign() < 0 {
			return math.MinInt64, true
		}
		return math.MaxInt64, true
	}
	return n, true
}

// powInt returns base^n by repeated squaring.
func powInt(base *inf.Dec, n int64) (*inf.Dec, error) {
	negative := n < 0
	if negative {
		n = -n
	}

	result := inf.NewDec(1, 0)
	sq := new(inf.Dec).Set(base)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, sq)
		}
		n >>= 1
		if n > 0 {
			sq.Mul(sq, sq)
		}
	}

	if negative {
		return quo(inf.NewDec(1, 0), result)
	}
	return result, nil
}

// powFloat returns scale * base^exp computed in float64, for fractional exponents.
func powFloat(base, exp, scale *inf.Dec) (*inf.Dec, error) {
	b, err := strconv.ParseFloat(base.String(), 64)
	if err != nil {
		return nil, unparsable("base %s: %v", base, err)
	}
	e, err := strconv.ParseFloat(exp.String(), 64)
	if err != nil {
		return nil, unparsable("exponent %s: %v", exp, err)
	}

	p := math.Pow(b, e)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, unparsable("%s^%s is not a finite number", base, exp)
	}
	v, ok := new(inf.Dec).SetString(strconv.FormatFloat(p, 'f', -1, 64))
	if !ok {
		return nil, unparsable("%s^%s is not representable", base, exp)
	}
	return v.Mul(v, scale), nil
}
