package filter

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/ggfx/param"
)

// Definition is the serializable description of a filter or chain. It owns
// no runtime image state.
//
// Key names the definition. Filter names the registered filter that
// implements it and defaults to Key, so presets such as two lookup entries
// on different tables can share one implementation. Chain marks a chain
// even when it has no stages.
type Definition struct {
	Key        string           `json:"key" yaml:"key" mapstructure:"key" validate:"required"`
	Filter     string           `json:"filter,omitempty" yaml:"filter,omitempty" mapstructure:"filter"`
	Chain      bool             `json:"chain,omitempty" yaml:"chain,omitempty" mapstructure:"chain"`
	Title      string           `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Type       OperationType    `json:"type" yaml:"type" mapstructure:"type"`
	Slow       bool             `json:"slow,omitempty" yaml:"slow,omitempty" mapstructure:"slow"`
	Hide       bool             `json:"hide,omitempty" yaml:"hide,omitempty" mapstructure:"hide"`
	Rating     int              `json:"rating,omitempty" yaml:"rating,omitempty" mapstructure:"rating" validate:"min=0,max=3"`
	Parameters []param.Settings `json:"parameters,omitempty" yaml:"parameters,omitempty" mapstructure:"parameters" validate:"dive"`
	Lookup     string           `json:"lookup,omitempty" yaml:"lookup,omitempty" mapstructure:"lookup"`
	Stages     []Definition     `json:"stages,omitempty" yaml:"stages,omitempty" mapstructure:"stages" validate:"dive"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field constraints, unique parameter keys, and that only
// lookup definitions name a lookup image.
func (d *Definition) Validate() error {
	if err := structValidator().Struct(d); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Key, err)
	}
	return d.validateTree()
}

func (d *Definition) validateTree() error {
	seen := make(map[string]bool, len(d.Parameters))
	for _, s := range d.Parameters {
		if seen[s.Key] {
			return fmt.Errorf("%w: %s: duplicate parameter %q", ErrInvalidDefinition, d.Key, s.Key)
		}
		seen[s.Key] = true
	}
	if d.Type > OperationCustom {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Key, ErrUnknownOperation)
	}
	if d.Lookup != "" && d.Type != OperationLookup {
		return fmt.Errorf("%w: %s: lookup image on %s filter", ErrInvalidDefinition, d.Key, d.Type)
	}
	if d.IsChain() && len(d.Parameters) > 0 {
		return fmt.Errorf("%w: %s: a chain has no parameters", ErrInvalidDefinition, d.Key)
	}
	if d.IsChain() && d.Filter != "" {
		return fmt.Errorf("%w: %s: a chain names no filter", ErrInvalidDefinition, d.Key)
	}
	for i := range d.Stages {
		if err := d.Stages[i].validateTree(); err != nil {
			return err
		}
	}
	return nil
}

// IsChain reports whether the definition describes a chain.
func (d *Definition) IsChain() bool { return d.Chain || len(d.Stages) > 0 }

// FilterName returns the name of the filter implementing the definition.
func (d *Definition) FilterName() string {
	if d.Filter != "" {
		return d.Filter
	}
	return d.Key
}

// TitleFromKey derives a display title from a filter key by splitting
// camel case and separators: "SobelEdges" → "Sobel Edges",
// "white-balance" → "White Balance".
func TitleFromKey(key string) string {
	var b strings.Builder
	var prev rune
	for i, r := range key {
		switch {
		case r == '-' || r == '_' || r == '.':
			r = ' '
		case i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	words := strings.Fields(b.String())
	return cases.Title(language.English, cases.NoLower).String(strings.Join(words, " "))
}
