package catalog

import (
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/registry"
)

// FromRegistry returns a catalog holding the default definition of every
// registered filter, in name order.
func FromRegistry(r *registry.Registry) (*Catalog, error) {
	c := &Catalog{Version: Version}
	for _, name := range r.Names() {
		def, err := r.Definition(name)
		if err != nil {
			return nil, err
		}
		c.Filters = append(c.Filters, def)
	}
	return c, nil
}

// Resolve builds the entry key with r, passing opts to every descriptor.
func (c *Catalog) Resolve(key string, r *registry.Registry, opts ...filter.Option) (filter.Applier, error) {
	def, ok := c.Find(key)
	if !ok {
		return nil, &MissingError{Key: key}
	}
	return r.Resolve(def, opts...)
}

// MissingError reports a key absent from the catalog.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string { return "catalog: no entry " + e.Key }

// Unwrap makes MissingError match filter.ErrUnknownFilter.
func (e *MissingError) Unwrap() error { return filter.ErrUnknownFilter }
