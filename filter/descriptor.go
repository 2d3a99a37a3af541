package filter

import (
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/param"
)

// NoFilterKey is the identity filter. A descriptor with this key returns
// its input unchanged without invoking any filter.
const NoFilterKey = "NoFilter"

// Parameters injected by descriptors in addition to the filter's own.
const (
	// KeyLookupIntensity mixes a lookup result with the original image.
	KeyLookupIntensity = "lookupIntensity"

	// KeyBlendOpacity scales the alpha of the blend image before compositing.
	KeyBlendOpacity = "blendOpacity"

	// KeyLookupImage is the image parameter lookup filters read the table from.
	KeyLookupImage = "lookupImage"
)

// Defaults of the injected parameters.
const (
	DefaultLookupIntensity = 1.0
	DefaultBlendOpacity    = 0.8
)

// LookupStore provides lookup table images by name.
type LookupStore interface {
	Image(name string) (*ggfx.Pixmap, error)
}

// BlendSource provides the default second image of blend descriptors,
// sized to match the primary image.
type BlendSource interface {
	BlendImage(size ggfx.Size) (*ggfx.Pixmap, error)
}

// Applier is implemented by Descriptor and Chain.
type Applier interface {
	Key() string
	Title() string
	Operation() OperationType
	NumParameters() int
	Definition() Definition
	Apply(image, image2 *ggfx.Pixmap) (*ggfx.Pixmap, error)
}

// State is the lifecycle state of a Descriptor.
type State uint8

// Descriptor states.
const (
	// StateConstructed has identity and operation type but no parameters.
	StateConstructed State = iota

	// StateConfigured has parameters from its definition and a stash.
	StateConfigured

	// StateActive has been mutated or applied.
	StateActive

	// StateReleased has dropped its filter. Apply fails.
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateConfigured:
		return "configured"
	case StateActive:
		return "active"
	case StateReleased:
		return "released"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Option configures a Descriptor.
type Option func(*Descriptor)

// WithLookupStore sets where lookup descriptors load their table image.
func WithLookupStore(s LookupStore) Option {
	return func(d *Descriptor) { d.store = s }
}

// WithBlendSource sets the default second image of blend descriptors.
func WithBlendSource(s BlendSource) Option {
	return func(d *Descriptor) { d.blend = s }
}

// Descriptor is the runtime wrapper of one filter. It exclusively owns the
// filter it was built with; callers must not share it.
type Descriptor struct {
	membership

	key    string
	impl   string
	title  string
	op     OperationType
	slow   bool
	hide   bool
	rating int
	lookup string

	params param.Config
	stash  param.Config
	filter Filter
	state  State

	store     LookupStore
	blend     BlendSource
	lookupImg *ggfx.Pixmap
}

// NewDescriptor builds a descriptor from def around f and configures it.
//
// f implements def.FilterName() and may be nil only for NoFilterKey.
// Definition parameters that f does not accept are logged and dropped. The lookup intensity and blend opacity
// parameters are injected for lookup and blend operations when def does
// not carry them.
func NewDescriptor(def Definition, f Filter, opts ...Option) (*Descriptor, error) {
	if def.Type > OperationCustom {
		ggfx.Logger().Warn("descriptor has unknown operation type", "key", def.Key, "type", def.Type)
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, def.Key)
	}
	if f == nil && def.FilterName() != NoFilterKey {
		ggfx.Logger().Warn("descriptor has no filter", "key", def.Key, "filter", def.FilterName())
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, def.Key)
	}

	d := &Descriptor{
		key:    def.Key,
		impl:   def.FilterName(),
		title:  def.Title,
		op:     def.Type,
		slow:   def.Slow,
		hide:   def.Hide,
		rating: def.Rating,
		lookup: def.Lookup,
		filter: f,
		state:  StateConstructed,
	}
	if d.title == "" {
		d.title = TitleFromKey(d.key)
	}
	for _, opt := range opts {
		opt(d)
	}
	d.configure(def.Parameters)
	return d, nil
}

// configure copies settings into the live configuration, pushes them into
// the filter, and stashes a snapshot.
func (d *Descriptor) configure(settings []param.Settings) {
	accepted := make([]param.Settings, 0, len(settings)+1)
	for _, s := range settings {
		if !d.accepts(s.Key) {
			ggfx.Logger().Warn("filter does not accept parameter", "filter", d.key, "key", s.Key)
			continue
		}
		accepted = append(accepted, d.complete(s))
	}
	d.params = param.NewConfig(accepted...)

	switch d.op {
	case OperationLookup:
		d.inject(KeyLookupIntensity, DefaultLookupIntensity)
	case OperationBlend:
		d.inject(KeyBlendOpacity, DefaultBlendOpacity)
	}

	for _, s := range d.params.Settings() {
		d.push(s.Key, s.Current())
	}
	d.stash = d.params.Clone()
	d.state = StateConfigured
}

// complete fills the type and range of settings that omit them from the
// filter's declaration of the same key.
func (d *Descriptor) complete(s param.Settings) param.Settings {
	if d.filter == nil || (s.Type != param.TypeUnknown && s.Min != s.Max) {
		return s
	}
	for _, spec := range d.filter.Specs() {
		if spec.Key != s.Key {
			continue
		}
		if s.Type == param.TypeUnknown {
			s.Type = spec.Type()
		}
		if s.Min == s.Max && s.Type == param.TypeFloat && spec.Min < spec.Max {
			s.Min, s.Max = spec.Min, spec.Max
			s.Value = max(s.Min, min(s.Max, s.Value))
		}
		if s.Title == "" {
			s.Title = spec.Title
		}
		break
	}
	return s
}

func (d *Descriptor) inject(key string, def float64) {
	if d.params.Has(key) {
		return
	}
	d.params[key] = param.FromSpec(param.Spec{
		Key:     key,
		Title:   TitleFromKey(key),
		Min:     0,
		Max:     1,
		Default: param.Float(def),
	})
}

// accepts reports whether key may be part of the configuration.
func (d *Descriptor) accepts(key string) bool {
	if d.injected(key) {
		return true
	}
	if d.filter == nil {
		return false
	}
	_, ok := d.filter.Value(key)
	return ok
}

func (d *Descriptor) injected(key string) bool {
	return (d.op == OperationLookup && key == KeyLookupIntensity) ||
		(d.op == OperationBlend && key == KeyBlendOpacity)
}

// push forwards a value to the filter if the filter declares the key.
func (d *Descriptor) push(key string, v param.Value) {
	if d.filter == nil {
		return
	}
	if _, ok := d.filter.Value(key); !ok {
		return
	}
	if err := d.filter.SetValue(key, v); err != nil {
		ggfx.Logger().Warn("filter rejected parameter", "filter", d.key, "key", key, "err", err)
	}
}

// Key returns the filter key.
func (d *Descriptor) Key() string { return d.key }

// Title returns the display title.
func (d *Descriptor) Title() string { return d.title }

// Operation returns the operation type.
func (d *Descriptor) Operation() OperationType { return d.op }

// State returns the lifecycle state.
func (d *Descriptor) State() State { return d.state }

// Filter returns the underlying filter, nil for NoFilterKey or after Release.
func (d *Descriptor) Filter() Filter { return d.filter }

// NumParameters returns the number of live parameters.
func (d *Descriptor) NumParameters() int { return d.params.Len() }

// ParameterKeys returns the live parameter keys in sorted order.
func (d *Descriptor) ParameterKeys() []string { return d.params.Keys() }

// Settings returns the live settings of key.
func (d *Descriptor) Settings(key string) (param.Settings, bool) {
	s, ok := d.params[key]
	return s, ok
}

// Config returns a copy of the live configuration.
func (d *Descriptor) Config() param.Config { return d.params.Clone() }

// Stash snapshots the live configuration.
func (d *Descriptor) Stash() {
	d.stash = d.params.Clone()
}

// Restore returns the live configuration to the last stash and pushes it
// into the filter.
func (d *Descriptor) Restore() {
	d.params = d.stash.Clone()
	for _, s := range d.params.Settings() {
		d.push(s.Key, s.Current())
	}
	d.touch()
}

// Reset reapplies the filter's own defaults, not the stash. Injected
// parameters return to their defaults too.
func (d *Descriptor) Reset() {
	if d.filter != nil {
		d.filter.SetDefaults()
	}
	for _, key := range d.params.Keys() {
		s := d.params[key]
		switch {
		case key == KeyLookupIntensity && d.injected(key):
			s.Value = DefaultLookupIntensity
		case key == KeyBlendOpacity && d.injected(key):
			s.Value = DefaultBlendOpacity
		case d.filter != nil:
			if v, ok := d.filter.Value(key); ok {
				_ = s.Assign(v)
			}
		}
		d.params[key] = s
	}
	d.touch()
}

// Release drops the filter and any cached lookup image. The descriptor
// cannot be applied afterwards.
func (d *Descriptor) Release() {
	d.filter = nil
	d.lookupImg = nil
	d.state = StateReleased
}

// Definition serializes the live state. Image parameters are omitted.
func (d *Descriptor) Definition() Definition {
	def := Definition{
		Key:    d.key,
		Title:  d.title,
		Type:   d.op,
		Slow:   d.slow,
		Hide:   d.hide,
		Rating: d.rating,
		Lookup: d.lookup,
	}
	if d.impl != d.key {
		def.Filter = d.impl
	}
	for _, s := range d.params.Settings() {
		if s.Type == param.TypeImage {
			continue
		}
		s.Components = append([]float64(nil), s.Components...)
		def.Parameters = append(def.Parameters, s)
	}
	return def
}

func (d *Descriptor) touch() {
	if d.state != StateReleased {
		d.state = StateActive
	}
}
