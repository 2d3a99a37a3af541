package filter

import (
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/param"
)

// Inputs are the images handed to Filter.Output.
type Inputs struct {
	// Image is the primary (foreground) image.
	Image *ggfx.Pixmap

	// Background is the second image of blend and custom operations.
	Background *ggfx.Pixmap
}

// Filter is a parameterized image operation.
//
// Implementations embed Base and provide Output. Output must not modify
// its inputs and must return either an image or an error, never both.
type Filter interface {
	// Name returns the registered filter name.
	Name() string

	// Specs returns the accepted parameters with their defaults.
	Specs() []param.Spec

	// SetValue assigns a parameter. It fails with param.ErrUnknownKey or
	// param.ErrTypeMismatch.
	SetValue(key string, v param.Value) error

	// Value returns the current value of a parameter.
	Value(key string) (param.Value, bool)

	// SetDefaults restores every parameter to its default.
	SetDefaults()

	// Output renders the filter.
	Output(in Inputs) (*ggfx.Pixmap, error)
}

// Base implements parameter storage for a Filter.
type Base struct {
	name   string
	specs  []param.Spec
	values param.Config
}

// NewBase returns a Base holding the defaults of specs.
func NewBase(name string, specs ...param.Spec) Base {
	b := Base{name: name, specs: specs}
	b.SetDefaults()
	return b
}

// Name returns the filter name.
func (b *Base) Name() string { return b.name }

// Specs returns the parameter declarations.
func (b *Base) Specs() []param.Spec { return b.specs }

// SetValue assigns a parameter value.
func (b *Base) SetValue(key string, v param.Value) error {
	if err := b.values.Set(key, v); err != nil {
		return fmt.Errorf("%s: %w", b.name, err)
	}
	return nil
}

// Value returns the current value of key.
func (b *Base) Value(key string) (param.Value, bool) {
	v, err := b.values.Value(key)
	return v, err == nil
}

// SetDefaults restores every parameter to its default.
func (b *Base) SetDefaults() {
	settings := make([]param.Settings, len(b.specs))
	for i, s := range b.specs {
		settings[i] = param.FromSpec(s)
	}
	b.values = param.NewConfig(settings...)
}

// Float returns a float parameter, or 0 for an undeclared key.
func (b *Base) Float(key string) float64 {
	f, err := b.values.Float(key)
	if err != nil {
		return 0
	}
	return f
}

// Color returns a color parameter.
func (b *Base) Color(key string) ggfx.RGBA {
	c, _ := b.values.Color(key)
	return c
}

// Position returns a position parameter.
func (b *Base) Position(key string) ggfx.Point {
	p, _ := b.values.Position(key)
	return p
}

// Vector returns a vector parameter.
func (b *Base) Vector(key string) param.Vec4 {
	v, _ := b.values.Vector(key)
	return v
}

// Image returns an image parameter, or nil if unset.
func (b *Base) Image(key string) *ggfx.Pixmap {
	v, err := b.values.Value(key)
	if err != nil {
		return nil
	}
	img, _ := v.Image()
	return img
}

// Factory constructs a new, independent filter instance.
type Factory func() Filter
