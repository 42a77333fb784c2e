package numeral

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tables is the raw per-language data a Config is built from.
// NewConfig copies every map and slice, so Tables may be reused or mutated
// afterwards without affecting the Config.
type Tables struct {
	// Name identifies the language in errors and diagnostics.
	Name string

	// Digits maps each ideographic digit character to its value (0-9).
	Digits map[rune]int64

	// Units maps each magnitude character to its multiplier (10, 100, 10^4, ...).
	// Keys must not overlap Digits.
	Units map[rune]int64

	// RoundDirect lists units that flush their group immediately, even when
	// no larger unit follows ("亿" in "一亿两千万").
	RoundDirect []rune

	// Multipliers maps extra suffix words accepted after Arabic digits
	// ("K", "M", ...) to their multiplier. Every unit character is implicitly
	// a multiplier too.
	Multipliers map[string]int64

	// DozenSuffixes and PairSuffixes scale an integer by 12 and 2.
	DozenSuffixes []string
	PairSuffixes  []string

	// FullWidth and Traditional normalize characters before evaluation.
	// Characters absent from both maps pass through unchanged.
	FullWidth   map[rune]rune
	Traditional map[rune]rune

	// UnitWords rewrites multi-character unit words before place-value
	// evaluation ("万万" -> "亿"). Longer keys are applied first.
	UnitWords map[string]string

	// NegativeSigns are prefixes that negate a numeral ("负", "-").
	NegativeSigns []string

	// DecimalPoints split ideographic decimals ("点").
	DecimalPoints []rune

	// FractionSplits separate "int", "denominator" and "numerator" parts,
	// in that order ("又", "分之").
	FractionSplits []string

	// OrdinalPrefixes mark ordinals ("第"). At most one is stripped.
	OrdinalPrefixes []string

	// PercentMarkers are stripped from either end of a percentage ("百分之", "%").
	PercentMarkers []string

	// IdiomPair is worth 5 as the first idiom token ("对折" -> 50%); 0 disables it.
	IdiomPair rune
	// IdiomTens are worth 10 as the first idiom token ("十成" -> 100%).
	IdiomTens []rune
	// IdiomHalf is worth 0.5 as the second idiom token ("三成半" -> 35%).
	IdiomHalf rune
	// IdiomPhrases map whole idiom phrases to a percentage ("半折" -> 50).
	IdiomPhrases map[string]int64

	// DecimalSeparator and GroupSeparator apply to Arabic digit runs.
	// Zero values default to '.' and ','.
	DecimalSeparator rune
	GroupSeparator   rune
}

// Config is an immutable, validated numeral configuration for one language.
// Build it once with NewConfig and share it across goroutines.
type Config struct {
	name string

	digits      map[rune]int64
	units       map[rune]int64
	roundDirect map[rune]bool
	multipliers map[string]int64
	multKeys    []string // longest first

	dozen []string
	pair  []string

	fullWidth   map[rune]rune
	traditional map[rune]rune

	unitWords *strings.Replacer

	negative        []string
	decimalPoints   map[rune]bool
	fractionSplits  []string
	ordinalPrefixes []string
	percentMarkers  []string

	idiomPair    rune
	idiomTens    map[rune]bool
	idiomHalf    rune
	idiomPhrases map[string]int64

	decimalSep rune
	groupSep   rune
}

// NewConfig validates t and returns an immutable Config.
// Returns an error wrapping ErrInvalidConfig when digit and unit keys
// overlap, a digit value is outside 0-9, a unit value is below 10, or a
// round-direct character is not a unit.
func NewConfig(t Tables) (*Config, error) {
	if len(t.Digits) == 0 {
		return nil, invalidConfig("%s: no digits", t.Name)
	}
	if len(t.Units) == 0 {
		return nil, invalidConfig("%s: no units", t.Name)
	}

	c := &Config{
		name:            t.Name,
		digits:          make(map[rune]int64, len(t.Digits)),
		units:           make(map[rune]int64, len(t.Units)),
		roundDirect:     make(map[rune]bool, len(t.RoundDirect)),
		multipliers:     make(map[string]int64, len(t.Units)+len(t.Multipliers)),
		dozen:           slices.Clone(t.DozenSuffixes),
		pair:            slices.Clone(t.PairSuffixes),
		fullWidth:       make(map[rune]rune, len(t.FullWidth)),
		traditional:     make(map[rune]rune, len(t.Traditional)),
		negative:        sortLongestFirst(t.NegativeSigns),
		decimalPoints:   make(map[rune]bool, len(t.DecimalPoints)),
		fractionSplits:  sortLongestFirst(t.FractionSplits),
		ordinalPrefixes: sortLongestFirst(t.OrdinalPrefixes),
		percentMarkers:  sortLongestFirst(t.PercentMarkers),
		idiomPair:       t.IdiomPair,
		idiomTens:       make(map[rune]bool, len(t.IdiomTens)),
		idiomHalf:       t.IdiomHalf,
		idiomPhrases:    make(map[string]int64, len(t.IdiomPhrases)),
		decimalSep:      t.DecimalSeparator,
		groupSep:        t.GroupSeparator,
	}
	if c.decimalSep == 0 {
		c.decimalSep = '.'
	}
	if c.groupSep == 0 {
		c.groupSep = ','
	}

	for r, v := range t.Digits {
		if v < 0 || v > 9 {
			return nil, invalidConfig("%s: digit %q has value %d", t.Name, r, v)
		}
		c.digits[r] = v
	}
	for r, v := range t.Units {
		if _, dup := c.digits[r]; dup {
			return nil, invalidConfig("%s: %q is both a digit and a unit", t.Name, r)
		}
		if v < 10 {
			return nil, invalidConfig("%s: unit %q has value %d", t.Name, r, v)
		}
		c.units[r] = v
		c.multipliers[string(r)] = v
	}
	for _, r := range t.RoundDirect {
		if _, ok := c.units[r]; !ok {
			return nil, invalidConfig("%s: round-direct %q is not a unit", t.Name, r)
		}
		c.roundDirect[r] = true
	}
	for w, v := range t.Multipliers {
		if w == "" || v < 1 {
			return nil, invalidConfig("%s: multiplier %q has value %d", t.Name, w, v)
		}
		c.multipliers[w] = v
	}
	c.multKeys = make([]string, 0, len(c.multipliers))
	for w := range c.multipliers {
		c.multKeys = append(c.multKeys, w)
	}
	c.multKeys = sortLongestFirst(c.multKeys)

	for _, r := range t.DecimalPoints {
		if c.isNumeric(r) {
			return nil, invalidConfig("%s: decimal point %q is a digit or unit", t.Name, r)
		}
		c.decimalPoints[r] = true
	}

	for k, v := range t.FullWidth {
		c.fullWidth[k] = v
	}
	for k, v := range t.Traditional {
		c.traditional[k] = v
	}

	pairs := make([]string, 0, 2*len(t.UnitWords))
	for _, w := range sortLongestFirst(mapKeys(t.UnitWords)) {
		pairs = append(pairs, w, t.UnitWords[w])
	}
	c.unitWords = strings.NewReplacer(pairs...)

	for _, r := range t.IdiomTens {
		c.idiomTens[r] = true
	}
	for k, v := range t.IdiomPhrases {
		c.idiomPhrases[k] = v
	}

	return c, nil
}

// Name returns the language name given in Tables.
func (c *Config) Name() string { return c.name }

// DigitValue returns the value of digit character r.
func (c *Config) DigitValue(r rune) (int64, bool) {
	v, ok := c.digits[r]
	return v, ok
}

// UnitValue returns the multiplier of unit character r.
func (c *Config) UnitValue(r rune) (int64, bool) {
	v, ok := c.units[r]
	return v, ok
}

// Normalize composes s to NFC and maps full-width characters to half-width
// and traditional characters to simplified ones, rune by rune.
func (c *Config) Normalize(s string) string {
	t := transform.Chain(norm.NFC, runes.Map(c.mapRune))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func (c *Config) mapRune(r rune) rune {
	if n, ok := c.fullWidth[r]; ok {
		r = n
	}
	if n, ok := c.traditional[r]; ok {
		r = n
	}
	return r
}

// digitOf looks r up as an ideographic or ASCII digit.
func (c *Config) digitOf(r rune) (int64, bool) {
	if isASCIIDigit(r) {
		return int64(r - '0'), true
	}
	d, ok := c.digits[r]
	return d, ok
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// digitPath reports whether s is an Arabic digit run for the digit
// evaluator. Text where a digit follows a unit character ("1万2千") is
// place-value text instead.
func (c *Config) digitPath(s string) bool {
	return hasArabicDigit(s) && !c.digitAfterUnit(s)
}

func (c *Config) digitAfterUnit(s string) bool {
	sawUnit := false
	for _, r := range s {
		if c.isUnit(r) {
			sawUnit = true
			continue
		}
		if _, ok := c.digitOf(r); ok && sawUnit {
			return true
		}
	}
	return false
}

func (c *Config) isUnit(r rune) bool {
	_, ok := c.units[r]
	return ok
}

func (c *Config) isNumeric(r rune) bool {
	_, d := c.digits[r]
	_, u := c.units[r]
	return d || u
}

// trimNegative strips one leading negative sign.
func (c *Config) trimNegative(s string) (string, bool) {
	for _, sign := range c.negative {
		if rest, ok := strings.CutPrefix(s, sign); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return s, false
}

// trimGroupSuffix strips a trailing dozen or pair marker and returns the
// factor it stands for.
func (c *Config) trimGroupSuffix(s string) (string, int64) {
	for _, w := range c.dozen {
		if rest, ok := strings.CutSuffix(s, w); ok {
			return rest, 12
		}
	}
	for _, w := range c.pair {
		if rest, ok := strings.CutSuffix(s, w); ok {
			return rest, 2
		}
	}
	return s, 1
}

func (c *Config) replaceUnitWords(s string) string {
	return c.unitWords.Replace(s)
}

func (c *Config) trimOrdinal(s string) string {
	for _, p := range c.ordinalPrefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

// stripPercent removes percent markers from both ends of s.
func (c *Config) stripPercent(s string) string {
	for changed := true; changed; {
		changed = false
		for _, m := range c.percentMarkers {
			if rest, ok := strings.CutPrefix(s, m); ok {
				s, changed = strings.TrimSpace(rest), true
			}
			if rest, ok := strings.CutSuffix(s, m); ok {
				s, changed = strings.TrimSpace(rest), true
			}
		}
	}
	return s
}

// splitPoint splits s on ideographic decimal points.
func (c *Config) splitPoint(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if c.decimalPoints[r] {
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}

// splitFraction splits s on every fraction separator, keeping empty parts.
func (c *Config) splitFraction(s string) []string {
	var parts []string
	for {
		idx, size := -1, 0
		for _, sep := range c.fractionSplits {
			if i := strings.Index(s, sep); i >= 0 && (idx < 0 || i < idx) {
				idx, size = i, len(sep)
			}
		}
		if idx < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:idx])
		s = s[idx+size:]
	}
}

func sortLongestFirst(words []string) []string {
	out := slices.Clone(words)
	slices.SortFunc(out, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return lb - la
		}
		return strings.Compare(a, b)
	})
	return out
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
