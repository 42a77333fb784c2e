package numeral

import (
	"fmt"
	"strings"
)

// Tag selects the evaluation branch for a numeral.
// Tags are assigned by the upstream matcher; Evaluate never guesses one.
type Tag int

const (
	// Integer is a place-value integer: "三千二百一", "两万", "1,234".
	Integer Tag = iota

	// Double is a decimal: "三点一四", "3.14", "1.5万", "1.0K".
	Double

	// Fraction is "int 又 denom 分之 num", "denom 分之 num" or Arabic "3/4".
	Fraction

	// Power is exponential ("2e3") or caret ("2^5") notation.
	Power

	// PercentageIdiom is a discount or proportion idiom: "七五折", "六成四".
	PercentageIdiom

	// PercentageDigit is an Arabic-digit percentage: "5.5%", "百分之5".
	PercentageDigit

	// PercentageIdeographic is an ideographic percentage: "百分之三十五".
	PercentageIdeographic

	// Ordinal is an ordinal with a leading marker: "第三", "第3".
	Ordinal
)

var tagNames = [...]string{
	Integer:               "integer",
	Double:                "double",
	Fraction:              "fraction",
	Power:                 "power",
	PercentageIdiom:       "percent-idiom",
	PercentageDigit:       "percent-digit",
	PercentageIdeographic: "percent-ideographic",
	Ordinal:               "ordinal",
}

// Tags lists every tag in declaration order.
func Tags() []Tag {
	return []Tag{Integer, Double, Fraction, Power, PercentageIdiom, PercentageDigit, PercentageIdeographic, Ordinal}
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// IsPercentage reports whether results for t carry a "%" suffix.
func (t Tag) IsPercentage() bool {
	return t == PercentageIdiom || t == PercentageDigit || t == PercentageIdeographic
}

// ParseTag returns the Tag named s. Matching is case-insensitive.
func ParseTag(s string) (Tag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tagNames {
		if name == s {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(tagNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, int(t))
	}
	return []byte(tagNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(b []byte) error {
	v, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
