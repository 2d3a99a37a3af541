package filter

import "fmt"

// Resolver constructs fresh filters by name. The registry implements it.
type Resolver interface {
	NewFilter(name string) (Filter, error)
}

// Build turns a definition tree into an Applier: chain definitions become
// chains, all others descriptors around a freshly resolved filter named by
// FilterName.
// Options are passed to every descriptor in the tree.
func Build(def Definition, r Resolver, opts ...Option) (Applier, error) {
	if def.IsChain() {
		c, err := NewChain(def.Key)
		if err != nil {
			return nil, err
		}
		if def.Title != "" {
			c.SetTitle(def.Title)
		}
		for i, sd := range def.Stages {
			stage, err := Build(sd, r, opts...)
			if err != nil {
				return nil, fmt.Errorf("chain %s: stage %d: %w", def.Key, i, err)
			}
			if err := c.Append(stage); err != nil {
				return nil, err
			}
		}
		return c, nil
	}

	var f Filter
	if name := def.FilterName(); name != NoFilterKey {
		var err error
		if f, err = r.NewFilter(name); err != nil {
			return nil, err
		}
	}
	d, err := NewDescriptor(def, f, opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}
