package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/param"
)

func TestChain_EmptyIsIdentity(t *testing.T) {
	c, err := NewChain("Empty")
	require.NoError(t, err)

	src := pattern(4, 3)
	out, err := c.Apply(src, nil)
	require.NoError(t, err)
	assert.True(t, out.Equal(src))
	assert.Equal(t, OperationCustom, c.Operation())
	assert.Equal(t, 0, c.NumParameters())
}

func TestChain_NilImage(t *testing.T) {
	c, err := NewChain("Chain", invertDescriptor())
	require.NoError(t, err)
	_, err = c.Apply(nil, nil)
	assert.ErrorIs(t, err, ggfx.ErrNilImage)
}

func TestChain_OrderMatters(t *testing.T) {
	src := ggfx.NewPixmapFilled(3, 3, ggfx.RGB(0.2, 0.2, 0.2))

	gainFirst, err := NewChain("A", gainDescriptor(0.5), invertDescriptor())
	require.NoError(t, err)
	invertFirst, err := NewChain("B", invertDescriptor(), gainDescriptor(0.5))
	require.NoError(t, err)

	a, err := gainFirst.Apply(src, nil)
	require.NoError(t, err)
	b, err := invertFirst.Apply(src, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.9, a.GetPixel(1, 1).R, 1e-6)
	assert.InDelta(t, 0.4, b.GetPixel(1, 1).R, 1e-6)
}

func TestChain_MatchesSequentialApply(t *testing.T) {
	src := pattern(8, 6)
	g, inv := gainDescriptor(0.7), invertDescriptor()

	step, err := g.Apply(src, nil)
	require.NoError(t, err)
	want, err := inv.Apply(step, nil)
	require.NoError(t, err)

	c, err := NewChain("Seq", gainDescriptor(0.7), invertDescriptor())
	require.NoError(t, err)
	got, err := c.Apply(src, nil)
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(want, 1e-6))
}

func TestChain_Nested(t *testing.T) {
	inner, err := NewChain("Inner", invertDescriptor(), invertDescriptor())
	require.NoError(t, err)
	outer, err := NewChain("Outer", inner, gainDescriptor(0.5))
	require.NoError(t, err)

	src := pattern(5, 5)
	out, err := outer.Apply(src, nil)
	require.NoError(t, err)
	assert.InDelta(t, src.GetPixel(2, 3).B*0.5, out.GetPixel(2, 3).B, 1e-6)
}

func TestChain_RejectsCycles(t *testing.T) {
	a, err := NewChain("A")
	require.NoError(t, err)
	assert.ErrorIs(t, a.Append(a), ErrCycle)

	b, err := NewChain("B")
	require.NoError(t, err)
	require.NoError(t, a.Append(b))
	assert.ErrorIs(t, b.Append(a), ErrCycle, "ancestor cannot become a child")
	assert.Equal(t, 0, b.Len())
}

func TestChain_RejectsSharedStages(t *testing.T) {
	d := invertDescriptor()
	a, err := NewChain("A", d)
	require.NoError(t, err)

	_, err = NewChain("B", d)
	assert.ErrorIs(t, err, ErrShared)
	assert.ErrorIs(t, a.Append(d), ErrShared, "same stage twice")

	err = a.SetFilters(gainDescriptor(1), d, d)
	assert.ErrorIs(t, err, ErrShared)
	assert.Equal(t, 1, a.Len(), "failed SetFilters leaves the chain unchanged")

	assert.ErrorIs(t, a.Append(nil), ErrUnknownFilter)

	a.Clear()
	b, err := NewChain("B", d)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
}

func TestChain_Policies(t *testing.T) {
	broken, err := NewDescriptor(Definition{Key: "Broken"}, &brokenFilter{Base: NewBase("Broken")})
	require.NoError(t, err)

	c, err := NewChain("Mixed", invertDescriptor(), broken, gainDescriptor(0.5))
	require.NoError(t, err)
	assert.Equal(t, SkipFailed, c.Policy())

	src := ggfx.NewPixmapFilled(2, 2, ggfx.RGB(0.2, 0.2, 0.2))
	out, err := c.Apply(src, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, out.GetPixel(0, 0).R, 1e-6, "failed stage is skipped")

	c.SetPolicy(AbortOnError)
	out, err = c.Apply(src, nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, errBroken)
	assert.ErrorContains(t, err, "stage 1")
}

func TestChain_ForwardsSecondImage(t *testing.T) {
	blend, err := NewDescriptor(Definition{Key: "Blend", Type: OperationBlend}, &blendFilter{Base: NewBase("Blend")})
	require.NoError(t, err)
	require.NoError(t, blend.SetParameter(KeyBlendOpacity, 1))

	c, err := NewChain("Forward", gainDescriptor(1), blend)
	require.NoError(t, err)

	img := ggfx.NewPixmapFilled(3, 3, ggfx.RGBA2(1, 1, 1, 0.5))
	out, err := c.Apply(img, ggfx.NewPixmapFilled(3, 3, ggfx.Black))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out.GetPixel(1, 1).R, 1e-5)

	_, err = c.Apply(img, nil)
	require.NoError(t, err, "missing second image is skipped under SkipFailed")
}

func TestChain_DefinitionAndBuild(t *testing.T) {
	inner, err := NewChain("Inner", invertDescriptor())
	require.NoError(t, err)
	c, err := NewChain("Look", gainDescriptor(0.25), inner)
	require.NoError(t, err)
	c.SetTitle("My Look")

	def := c.Definition()
	assert.True(t, def.IsChain())
	assert.Equal(t, OperationCustom, def.Type)
	assert.Equal(t, "My Look", def.Title)
	require.Len(t, def.Stages, 2)
	assert.Equal(t, "Gain", def.Stages[0].Key)
	assert.Equal(t, "Inner", def.Stages[1].Key)
	require.NoError(t, def.Validate())

	built, err := Build(def, testResolver())
	require.NoError(t, err)
	rebuilt, ok := built.(*Chain)
	require.True(t, ok)
	assert.Equal(t, "My Look", rebuilt.Title())
	assert.Equal(t, 2, rebuilt.Len())

	src := pattern(6, 4)
	want, err := c.Apply(src, nil)
	require.NoError(t, err)
	got, err := rebuilt.Apply(src, nil)
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(want, 1e-6))
}

func TestBuild_Failures(t *testing.T) {
	_, err := Build(Definition{Key: "Nope"}, testResolver())
	assert.ErrorIs(t, err, ErrUnknownFilter)

	_, err = Build(Definition{Key: "Chain", Stages: []Definition{{Key: "Gain"}, {Key: "Nope"}}}, testResolver())
	assert.ErrorIs(t, err, ErrUnknownFilter)
	assert.ErrorContains(t, err, "stage 1")

	a, err := Build(Definition{Key: NoFilterKey}, testResolver())
	require.NoError(t, err)
	assert.Equal(t, NoFilterKey, a.Key())
}

func TestBuild_EmptyChains(t *testing.T) {
	empty, err := NewChain("Empty")
	require.NoError(t, err)
	def := empty.Definition()
	assert.True(t, def.IsChain())
	require.NoError(t, def.Validate())

	built, err := Build(def, testResolver())
	require.NoError(t, err)
	c, ok := built.(*Chain)
	require.True(t, ok)
	assert.Equal(t, 0, c.Len())
	src := pattern(3, 3)
	out, err := c.Apply(src, nil)
	require.NoError(t, err)
	assert.Same(t, src, out)

	inner, err := NewChain("Inner")
	require.NoError(t, err)
	outer, err := NewChain("Outer", invertDescriptor(), inner)
	require.NoError(t, err)
	built, err = Build(outer.Definition(), testResolver())
	require.NoError(t, err)
	rebuilt := built.(*Chain)
	require.Equal(t, 2, rebuilt.Len())
	nested, ok := rebuilt.Filters()[1].(*Chain)
	require.True(t, ok)
	assert.Equal(t, "Inner", nested.Key())
	assert.Equal(t, 0, nested.Len())
}

func TestBuild_Presets(t *testing.T) {
	def := Definition{
		Key:        "Brighten",
		Filter:     "Gain",
		Parameters: []param.Settings{{Key: "gain", Value: 1.5}},
	}
	require.NoError(t, def.Validate())
	built, err := Build(def, testResolver())
	require.NoError(t, err)
	d := built.(*Descriptor)
	assert.Equal(t, "Brighten", d.Key())
	assert.Equal(t, "Gain", d.Filter().Name())
	assert.Equal(t, 1.5, d.Parameter("gain"))

	saved := d.Definition()
	assert.Equal(t, "Gain", saved.Filter)
	again, err := Build(saved, testResolver())
	require.NoError(t, err)
	assert.Equal(t, 1.5, again.(*Descriptor).Parameter("gain"))

	assert.Empty(t, gainDescriptor(1).Definition().Filter)

	plain, err := Build(Definition{Key: "Plain", Filter: NoFilterKey}, testResolver())
	require.NoError(t, err)
	src := pattern(2, 2)
	out, err := plain.Apply(src, nil)
	require.NoError(t, err)
	assert.Same(t, src, out)

	bad := Definition{Key: "Look", Chain: true, Filter: "Gain"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDefinition)
}

func TestChain_SetFiltersReorders(t *testing.T) {
	g, inv := gainDescriptor(0.5), invertDescriptor()
	c, err := NewChain("Reorder", g, inv)
	require.NoError(t, err)

	require.NoError(t, c.SetFilters(inv, g))
	stages := c.Filters()
	require.Len(t, stages, 2)
	assert.Same(t, inv, stages[0])
	assert.Same(t, g, stages[1])
}
