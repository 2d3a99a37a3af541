package param

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/ggfx"
)

// NotSet is returned by float getters when the key is unknown or has a
// different type. Callers that ignore the error must check for it.
const NotSet = -1000.0

var (
	// ErrUnknownKey is returned for a key that is not part of a configuration.
	ErrUnknownKey = errors.New("param: unknown parameter key")

	// ErrTypeMismatch is returned when an accessor does not match the
	// declared type of the parameter.
	ErrTypeMismatch = errors.New("param: parameter type mismatch")
)

// Spec declares one parameter accepted by a filter, with its range and
// default value.
type Spec struct {
	Key     string
	Title   string
	Min     float64
	Max     float64
	Default Value
}

// Type returns the declared parameter type, taken from the default value.
func (s Spec) Type() Type { return s.Default.Type() }

// Settings is the serializable state of one parameter.
//
// Float parameters keep their value in Value. Colors, positions and vectors
// keep their components in Components (r,g,b,a / x,y / v0..v3). Image
// parameters are never persisted; their live image is held out of band.
type Settings struct {
	Key        string    `json:"key" yaml:"key" mapstructure:"key" validate:"required"`
	Title      string    `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Min        float64   `json:"min" yaml:"min" mapstructure:"min"`
	Max        float64   `json:"max" yaml:"max" mapstructure:"max" validate:"gtefield=Min"`
	Value      float64   `json:"value" yaml:"value" mapstructure:"value"`
	Type       Type      `json:"type" yaml:"type" mapstructure:"type"`
	Components []float64 `json:"components,omitempty" yaml:"components,omitempty" mapstructure:"components" validate:"max=4"`

	img *ggfx.Pixmap
}

// FromSpec returns Settings holding the declared default of s.
func FromSpec(s Spec) Settings {
	out := Settings{
		Key:   s.Key,
		Title: s.Title,
		Min:   s.Min,
		Max:   s.Max,
		Type:  s.Type(),
	}
	_ = out.Assign(s.Default)
	return out
}

// Current returns the settings' value as a tagged Value.
func (s Settings) Current() Value {
	if s.Type == TypeImage {
		return Image(s.img)
	}
	return fromComponents(s.Type, s.Value, s.Components)
}

// Assign stores v, which must match the declared type. Float values are
// clamped into [Min, Max] when Min < Max.
func (s *Settings) Assign(v Value) error {
	if v.Type() != s.Type {
		return fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, s.Key, s.Type, v.Type())
	}
	switch s.Type {
	case TypeFloat:
		f, _ := v.Float()
		if s.Min < s.Max {
			f = max(s.Min, min(s.Max, f))
		}
		s.Value = f
	case TypeImage:
		s.img, _ = v.Image()
	default:
		s.Components = v.components()
	}
	return nil
}

// Config is the live parameter configuration of a filter: key → Settings.
// Keys are unique; iteration order is not significant.
type Config map[string]Settings

// NewConfig builds a configuration from settings. Later duplicates of a key
// replace earlier ones.
func NewConfig(settings ...Settings) Config {
	c := make(Config, len(settings))
	for _, s := range settings {
		c[s.Key] = s
	}
	return c
}

// Len returns the number of parameters.
func (c Config) Len() int { return len(c) }

// Has reports whether key is part of the configuration.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Keys returns the parameter keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Settings returns the parameter settings sorted by key.
func (c Config) Settings() []Settings {
	out := make([]Settings, 0, len(c))
	for _, k := range c.Keys() {
		out = append(out, c[k])
	}
	return out
}

// Clone returns an independent copy of the configuration.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, s := range c {
		s.Components = slices.Clone(s.Components)
		out[k] = s
	}
	return out
}

// Type returns the declared type of key, or TypeUnknown with ErrUnknownKey.
func (c Config) Type(key string) (Type, error) {
	s, ok := c[key]
	if !ok {
		return TypeUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s.Type, nil
}

// Value returns the current value of key.
func (c Config) Value(key string) (Value, error) {
	s, ok := c[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s.Current(), nil
}

// Set assigns v to key. The value type must match the declared type.
func (c Config) Set(key string, v Value) error {
	s, ok := c[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := s.Assign(v); err != nil {
		return err
	}
	c[key] = s
	return nil
}

func (c Config) typed(key string, want Type) (Value, error) {
	s, ok := c[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if s.Type != want {
		return Value{}, fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, key, s.Type, want)
	}
	return s.Current(), nil
}

// Float returns the float value of key, or NotSet with an error.
func (c Config) Float(key string) (float64, error) {
	v, err := c.typed(key, TypeFloat)
	if err != nil {
		return NotSet, err
	}
	f, _ := v.Float()
	return f, nil
}

// SetFloat assigns a float value, clamped to the parameter range.
func (c Config) SetFloat(key string, f float64) error {
	return c.Set(key, Float(f))
}

// Color returns the color value of key, or the zero color with an error.
func (c Config) Color(key string) (ggfx.RGBA, error) {
	v, err := c.typed(key, TypeColor)
	if err != nil {
		return ggfx.RGBA{}, err
	}
	col, _ := v.Color()
	return col, nil
}

// SetColor assigns a color value.
func (c Config) SetColor(key string, col ggfx.RGBA) error {
	return c.Set(key, Color(col))
}

// Position returns the position value of key, or the origin with an error.
func (c Config) Position(key string) (ggfx.Point, error) {
	v, err := c.typed(key, TypePosition)
	if err != nil {
		return ggfx.Point{}, err
	}
	p, _ := v.Position()
	return p, nil
}

// SetPosition assigns a position value.
func (c Config) SetPosition(key string, p ggfx.Point) error {
	return c.Set(key, Position(p))
}

// Vector returns the vector value of key, or the zero vector with an error.
func (c Config) Vector(key string) (Vec4, error) {
	v, err := c.typed(key, TypeVector)
	if err != nil {
		return Vec4{}, err
	}
	vec, _ := v.Vector()
	return vec, nil
}

// SetVector assigns a vector value.
func (c Config) SetVector(key string, v Vec4) error {
	return c.Set(key, Vector(v))
}
