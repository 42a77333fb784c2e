package numeral

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsable indicates the text does not have the shape its tag implies.
	ErrUnparsable = errors.New("numeral: unparsable numeral")
	// ErrUnknownToken indicates a character is absent from the lookup table
	// the evaluation reached. It usually means a tag/table mismatch upstream.
	ErrUnknownToken = errors.New("numeral: unknown numeral token")
	// ErrUnknownTag indicates a Tag outside the declared set.
	ErrUnknownTag = errors.New("numeral: unknown tag")
	// ErrNilConfig indicates Evaluate was called without a Config.
	ErrNilConfig = errors.New("numeral: nil config")
	// ErrInvalidConfig indicates Tables failed validation in NewConfig.
	ErrInvalidConfig = errors.New("numeral: invalid config")
)

func unparsable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnparsable, fmt.Sprintf(format, args...))
}

func unknownToken(r rune) error {
	return fmt.Errorf("%w: %q", ErrUnknownToken, r)
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
