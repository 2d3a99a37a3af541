// Package registry maps filter names to factories, caches one shared
// instance per name, and builds descriptors from names or definitions.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/filter/builtin"
	"github.com/gogpu/ggfx/param"
)

// ErrDuplicate is returned when a name is registered twice.
var ErrDuplicate = errors.New("registry: filter already registered")

// Category groups filters for listing.
type Category uint8

// Categories.
const (
	// CategoryMultiPixel filters read pixel neighborhoods.
	CategoryMultiPixel Category = iota

	// CategoryColor filters are pure per-pixel functions.
	CategoryColor
)

func (c Category) String() string {
	switch c {
	case CategoryMultiPixel:
		return "multi-pixel"
	case CategoryColor:
		return "color"
	}
	return fmt.Sprintf("Category(%d)", c)
}

type entry struct {
	category Category
	factory  filter.Factory
}

// Registry is a name → factory table with an instance cache.
//
// Filter returns a cached instance shared by every caller of the same
// name; NewFilter always constructs and never touches the cache. Work that
// mutates filter parameters on its own (background renders, descriptors)
// must use NewFilter. All methods are safe for concurrent use, but cached
// filter instances themselves are not: callers sharing one must not
// mutate it concurrently.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry

	cacheMu sync.Mutex
	cache   map[string]filter.Filter

	once sync.Once
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]entry),
		cache:   make(map[string]filter.Filter),
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry with the built-in filters
// registered.
func Default() *Registry {
	defaultRegistry.RegisterFilters()
	return defaultRegistry
}

// Register adds a factory under name.
func (r *Registry) Register(name string, category Category, factory filter.Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("registry: invalid registration %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.entries[name] = entry{category: category, factory: factory}
	return nil
}

// RegisterFilters registers every built-in filter. Only the first call
// has an effect.
func (r *Registry) RegisterFilters() {
	r.once.Do(func() {
		groups := []struct {
			category  Category
			factories map[string]filter.Factory
		}{
			{CategoryMultiPixel, builtin.MultiPixel()},
			{CategoryColor, builtin.Color()},
		}
		n := 0
		for _, g := range groups {
			for name, f := range g.factories {
				if err := r.Register(name, g.category, f); err != nil {
					ggfx.Logger().Warn("built-in filter not registered", "name", name, "err", err)
					continue
				}
				n++
			}
		}
		ggfx.Logger().Debug("registered built-in filters", "count", n)
	})
}

// NewFilter constructs a fresh, uncached instance of name.
func (r *Registry) NewFilter(name string) (filter.Filter, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		ggfx.Logger().Error("filter not registered", "name", name)
		return nil, fmt.Errorf("%w: %s", filter.ErrUnknownFilter, name)
	}
	return e.factory(), nil
}

// Filter returns the cached instance of name, constructing it on first use.
// Repeated calls return the same instance until ClearCache.
func (r *Registry) Filter(name string) (filter.Filter, error) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	if f, ok := r.cache[name]; ok {
		return f, nil
	}
	f, err := r.NewFilter(name)
	if err != nil {
		return nil, err
	}
	r.cache[name] = f
	return f, nil
}

// Cached reports whether name has a cached instance.
func (r *Registry) Cached(name string) bool {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	_, ok := r.cache[name]
	return ok
}

// ClearCache drops every cached instance.
func (r *Registry) ClearCache() {
	r.cacheMu.Lock()
	clear(r.cache)
	r.cacheMu.Unlock()
}

// Evict drops the cached instance of name.
func (r *Registry) Evict(name string) {
	r.cacheMu.Lock()
	delete(r.cache, name)
	r.cacheMu.Unlock()
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NamesByCategory returns the registered names of category in sorted order.
func (r *Registry) NamesByCategory(category Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name, e := range r.entries {
		if e.category == category {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Category returns the category of name.
func (r *Registry) Category(name string) (Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.category, ok
}

// Definition returns the default definition of name, built from the
// filter's parameter specs. The operation type is inferred: filters with
// a lookup image parameter are lookup filters, blend filters are blend.
func (r *Registry) Definition(name string) (filter.Definition, error) {
	if name == filter.NoFilterKey {
		return filter.Definition{Key: name, Title: filter.TitleFromKey(name)}, nil
	}
	f, err := r.NewFilter(name)
	if err != nil {
		return filter.Definition{}, err
	}
	def := filter.Definition{
		Key:   name,
		Title: filter.TitleFromKey(name),
		Type:  operationOf(name, f),
	}
	for _, s := range f.Specs() {
		if s.Type() == param.TypeImage {
			continue
		}
		def.Parameters = append(def.Parameters, param.FromSpec(s))
	}
	if cat, _ := r.Category(name); cat == CategoryMultiPixel && name != builtin.Convolution3x3 {
		def.Slow = true
	}
	return def, nil
}

func operationOf(name string, f filter.Filter) filter.OperationType {
	if _, ok := f.Value(filter.KeyLookupImage); ok {
		return filter.OperationLookup
	}
	if isBlend(name) {
		return filter.OperationBlend
	}
	return filter.OperationSingle
}

// Descriptor builds a descriptor for name from its default definition
// around a fresh filter instance.
func (r *Registry) Descriptor(name string, opts ...filter.Option) (*filter.Descriptor, error) {
	def, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	var f filter.Filter
	if name != filter.NoFilterKey {
		if f, err = r.NewFilter(name); err != nil {
			return nil, err
		}
	}
	return filter.NewDescriptor(def, f, opts...)
}

// Resolve builds a descriptor or chain from a definition tree. Every filter
// in the tree is a fresh instance. Lookup definitions whose key is not a
// registered filter and that name no filter are implemented by ColorCube.
func (r *Registry) Resolve(def filter.Definition, opts ...filter.Option) (filter.Applier, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return filter.Build(r.bind(def), r, opts...)
}

// bind returns def with default implementations filled in. def is not
// modified.
func (r *Registry) bind(def filter.Definition) filter.Definition {
	if def.IsChain() {
		stages := make([]filter.Definition, len(def.Stages))
		for i, sd := range def.Stages {
			stages[i] = r.bind(sd)
		}
		def.Stages = stages
		return def
	}
	if def.Filter == "" && def.Type == filter.OperationLookup {
		if _, ok := r.Category(def.Key); !ok {
			def.Filter = builtin.ColorCube
		}
	}
	return def
}
