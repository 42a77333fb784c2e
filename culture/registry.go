// Package culture provides numeral configurations for Chinese, Japanese and
// Korean and a registry that resolves BCP 47 language tags to them.
//
// Configurations are data only; the evaluation algorithms live in package
// numeral and never change per language. Build a Registry once at startup
// and share it: lookups never mutate it.
package culture

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/az-ai-labs/cjknum/numeral"
)

// ErrUnsupported indicates no registered language matches the requested tag.
var ErrUnsupported = errors.New("culture: unsupported language")

// Entry binds a language tag to a configuration.
type Entry struct {
	Tag    language.Tag
	Config *numeral.Config
}

// Registry resolves language tags to numeral configurations.
type Registry struct {
	tags    []language.Tag
	configs []*numeral.Config
	matcher language.Matcher
}

// NewRegistry returns a registry over entries. The first entry is the
// matcher's preferred language. Several tags may share one Config.
func NewRegistry(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty registry", ErrUnsupported)
	}

	r := &Registry{
		tags:    make([]language.Tag, 0, len(entries)),
		configs: make([]*numeral.Config, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Config == nil {
			return nil, fmt.Errorf("culture: nil config for %s", e.Tag)
		}
		r.tags = append(r.tags, e.Tag)
		r.configs = append(r.configs, e.Config)
	}
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// Default returns a registry with Chinese (simplified and traditional),
// Japanese and Korean.
func Default() (*Registry, error) {
	zh, err := Chinese()
	if err != nil {
		return nil, err
	}
	ja, err := Japanese()
	if err != nil {
		return nil, err
	}
	ko, err := Korean()
	if err != nil {
		return nil, err
	}

	return NewRegistry(
		Entry{Tag: language.SimplifiedChinese, Config: zh},
		Entry{Tag: language.TraditionalChinese, Config: zh},
		Entry{Tag: language.Japanese, Config: ja},
		Entry{Tag: language.Korean, Config: ko},
	)
}

// Lookup returns the configuration that best matches tag.
func (r *Registry) Lookup(tag language.Tag) (*numeral.Config, error) {
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, tag)
	}
	return r.configs[idx], nil
}

// LookupString parses s as a BCP 47 tag and returns its configuration.
func (r *Registry) LookupString(s string) (*numeral.Config, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
	}
	return r.Lookup(tag)
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []language.Tag {
	out := make([]language.Tag, len(r.tags))
	copy(out, r.tags)
	return out
}
