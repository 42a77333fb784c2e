package numeral

import (
	"errors"
	"testing"
)

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tag := range Tags() {
		text, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", int(tag), err)
		}
		var got Tag
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != tag {
			t.Errorf("round trip %s = %s", tag, got)
		}
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	if tag, err := ParseTag(" Percent-Idiom "); err != nil || tag != PercentageIdiom {
		t.Errorf("ParseTag(Percent-Idiom) = %v, %v", tag, err)
	}
	if _, err := ParseTag("roman"); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("ParseTag(roman) error = %v, want ErrUnknownTag", err)
	}
}

func TestTagString(t *testing.T) {
	t.Parallel()

	if got := Fraction.String(); got != "fraction" {
		t.Errorf("Fraction.String() = %q", got)
	}
	if got := Tag(42).String(); got != "Tag(42)" {
		t.Errorf("Tag(42).String() = %q", got)
	}
	if _, err := Tag(-1).MarshalText(); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("MarshalText(-1) error = %v", err)
	}
}

func TestIsPercentage(t *testing.T) {
	t.Parallel()

	want := map[Tag]bool{
		PercentageIdiom:       true,
		PercentageDigit:       true,
		PercentageIdeographic: true,
	}
	for _, tag := range Tags() {
		if got := tag.IsPercentage(); got != want[tag] {
			t.Errorf("%s.IsPercentage() = %v", tag, got)
		}
	}
}
