package filter

import (
	"fmt"

	"github.com/gogpu/ggfx"
)

// Policy decides what a Chain does when a stage fails.
type Policy uint8

// Chain failure policies.
const (
	// SkipFailed passes the failed stage's input on to the next stage.
	SkipFailed Policy = iota

	// AbortOnError stops the chain and returns the stage error.
	AbortOnError
)

// membership records which chain owns a stage.
type membership struct {
	owner *Chain
}

func (m *membership) parent() *Chain     { return m.owner }
func (m *membership) setParent(c *Chain) { m.owner = c }

type member interface {
	parent() *Chain
	setParent(c *Chain)
}

// Chain applies an ordered list of stages as one filter:
//
//	out₀ = image, outᵢ = stageᵢ.Apply(outᵢ₋₁, image2)
//
// An empty chain returns image unchanged. A chain owns its stages; a stage
// can belong to at most one chain, and a chain cannot contain itself.
type Chain struct {
	membership

	key    string
	title  string
	stages []Applier
	policy Policy
}

// NewChain returns a chain with the given stages.
func NewChain(key string, stages ...Applier) (*Chain, error) {
	c := &Chain{key: key, title: TitleFromKey(key)}
	if err := c.SetFilters(stages...); err != nil {
		return nil, err
	}
	return c, nil
}

// Key returns the chain key.
func (c *Chain) Key() string { return c.key }

// Title returns the display title.
func (c *Chain) Title() string { return c.title }

// SetTitle sets the display title.
func (c *Chain) SetTitle(title string) { c.title = title }

// Operation returns OperationCustom.
func (c *Chain) Operation() OperationType { return OperationCustom }

// NumParameters is always zero; stages keep their own parameters.
func (c *Chain) NumParameters() int { return 0 }

// Policy returns the failure policy.
func (c *Chain) Policy() Policy { return c.policy }

// SetPolicy sets the failure policy.
func (c *Chain) SetPolicy(p Policy) { c.policy = p }

// Len returns the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// Filters returns the stages in order.
func (c *Chain) Filters() []Applier {
	return append([]Applier(nil), c.stages...)
}

// SetFilters replaces the stages. On error the chain is left unchanged.
func (c *Chain) SetFilters(stages ...Applier) error {
	for i, s := range stages {
		if err := c.check(s); err != nil {
			return err
		}
		for _, prev := range stages[:i] {
			if prev == s {
				return fmt.Errorf("%w: %s listed twice", ErrShared, s.Key())
			}
		}
	}
	c.Clear()
	for _, s := range stages {
		c.adopt(s)
	}
	return nil
}

// Append adds a stage at the end.
func (c *Chain) Append(s Applier) error {
	if err := c.check(s); err != nil {
		return err
	}
	for _, have := range c.stages {
		if have == s {
			return fmt.Errorf("%w: %s already in %s", ErrShared, s.Key(), c.key)
		}
	}
	c.adopt(s)
	return nil
}

// Clear removes every stage and releases their ownership.
func (c *Chain) Clear() {
	for _, s := range c.stages {
		if m, ok := s.(member); ok {
			m.setParent(nil)
		}
	}
	c.stages = nil
}

func (c *Chain) adopt(s Applier) {
	if m, ok := s.(member); ok {
		m.setParent(c)
	}
	c.stages = append(c.stages, s)
}

// check reports whether s may be added to c.
func (c *Chain) check(s Applier) error {
	if s == nil {
		return fmt.Errorf("%w: nil stage", ErrUnknownFilter)
	}
	if sc, ok := s.(*Chain); ok {
		for p := c; p != nil; p = p.parent() {
			if p == sc {
				return fmt.Errorf("%w: %s", ErrCycle, sc.key)
			}
		}
	}
	if m, ok := s.(member); ok && m.parent() != nil && m.parent() != c {
		return fmt.Errorf("%w: %s", ErrShared, s.Key())
	}
	return nil
}

// Apply folds image through the stages. With SkipFailed a failing stage is
// logged and its input passed on; with AbortOnError the first failure is
// returned. A nil image always fails.
func (c *Chain) Apply(image, image2 *ggfx.Pixmap) (*ggfx.Pixmap, error) {
	if err := ggfx.CheckImage(image); err != nil {
		ggfx.Logger().Warn("chain apply failed", "chain", c.key, "err", err)
		return nil, fmt.Errorf("chain %s: %w", c.key, err)
	}
	out := image
	for i, s := range c.stages {
		next, err := s.Apply(out, image2)
		if err != nil {
			if c.policy == AbortOnError {
				return nil, fmt.Errorf("chain %s: stage %d: %w", c.key, i, err)
			}
			ggfx.Logger().Debug("chain skipped stage", "chain", c.key, "stage", i, "key", s.Key(), "err", err)
			continue
		}
		out = next
	}
	return out, nil
}

// Definition serializes the chain with its stages.
func (c *Chain) Definition() Definition {
	def := Definition{
		Key:   c.key,
		Title: c.title,
		Type:  OperationCustom,
		Chain: true,
	}
	for _, s := range c.stages {
		def.Stages = append(def.Stages, s.Definition())
	}
	return def
}
