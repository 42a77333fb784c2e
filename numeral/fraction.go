package numeral

import (
	"strings"

	"gopkg.in/inf.v0"
)

// evalFraction evaluates "int 又 denom 分之 num" and "denom 分之 num".
// Each part is evaluated on its own, as Arabic digits or as an ideographic
// integer. A negative sign on the integer part subtracts the fraction, so
// the sign covers the whole mixed number.
//
// Text without separators falls back to the Arabic slash form ("3/4",
// "-4 5/2"), where the numerator comes first.
func evalFraction(s string, cfg *Config) (*inf.Dec, error) {
	parts := cfg.splitFraction(s)

	var intPart, denPart, numPart string
	switch len(parts) {
	case 1:
		if !strings.ContainsRune(s, '/') {
			return nil, unparsable("no fraction separator in %q", s)
		}
		return evalDigits(s, cfg)
	case 2:
		denPart, numPart = parts[0], parts[1]
	case 3:
		intPart, denPart, numPart = parts[0], parts[1], parts[2]
		if strings.TrimSpace(intPart) == "" {
			return nil, unparsable("empty integer part in %q", s)
		}
	default:
		return nil, unparsable("%d fraction separators in %q", len(parts)-1, s)
	}

	intValue := new(inf.Dec)
	if intPart != "" {
		v, err := evalPart(intPart, cfg)
		if err != nil {
			return nil, err
		}
		intValue = v
	}

	num, err := evalPart(numPart, cfg)
	if err != nil {
		return nil, err
	}
	den, err := evalPart(denPart, cfg)
	if err != nil {
		return nil, err
	}
	frac, err := quo(num, den)
	if err != nil {
		return nil, err
	}

	if intValue.Sign() < 0 {
		return new(inf.Dec).Sub(intValue, frac), nil
	}
	return new(inf.Dec).Add(intValue, frac), nil
}

// evalPart evaluates one fraction part with the evaluator its script needs.
func evalPart(s string, cfg *Config) (*inf.Dec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, unparsable("empty fraction part")
	}
	if cfg.digitPath(s) {
		return evalDigits(s, cfg)
	}
	return evalInteger(s, cfg)
}
