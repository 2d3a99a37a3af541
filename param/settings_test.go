package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggfx"
)

func testConfig() Config {
	return NewConfig(
		FromSpec(Spec{Key: "radius", Title: "Radius", Min: 0, Max: 10, Default: Float(2)}),
		FromSpec(Spec{Key: "tint", Title: "Tint", Default: Color(ggfx.White)}),
		FromSpec(Spec{Key: "center", Title: "Center", Default: Position(ggfx.Pt(5, 5))}),
		FromSpec(Spec{Key: "bounds", Title: "Bounds", Default: Vector(Vec4{0, 0, 1, 1})}),
		FromSpec(Spec{Key: "mask", Title: "Mask", Default: Image(nil)}),
	)
}

func TestConfig_TypedAccessors(t *testing.T) {
	c := testConfig()
	require.Equal(t, 5, c.Len())

	f, err := c.Float("radius")
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)

	col, err := c.Color("tint")
	require.NoError(t, err)
	assert.Equal(t, ggfx.White, col)

	p, err := c.Position("center")
	require.NoError(t, err)
	assert.Equal(t, ggfx.Pt(5, 5), p)

	v, err := c.Vector("bounds")
	require.NoError(t, err)
	assert.Equal(t, Vec4{0, 0, 1, 1}, v)

	require.NoError(t, c.SetColor("tint", ggfx.Red))
	require.NoError(t, c.SetPosition("center", ggfx.Pt(1, 2)))
	require.NoError(t, c.SetVector("bounds", Vec4{1, 2, 3, 4}))

	col, _ = c.Color("tint")
	p, _ = c.Position("center")
	v, _ = c.Vector("bounds")
	assert.Equal(t, ggfx.Red, col)
	assert.Equal(t, ggfx.Pt(1, 2), p)
	assert.Equal(t, Vec4{1, 2, 3, 4}, v)
}

func TestConfig_FloatClamped(t *testing.T) {
	c := testConfig()
	require.NoError(t, c.SetFloat("radius", 50))
	f, _ := c.Float("radius")
	assert.Equal(t, 10.0, f)

	require.NoError(t, c.SetFloat("radius", -3))
	f, _ = c.Float("radius")
	assert.Equal(t, 0.0, f)
}

func TestConfig_UnknownKey(t *testing.T) {
	c := testConfig()
	before := c.Clone()

	f, err := c.Float("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, NotSet, f)

	assert.ErrorIs(t, c.SetFloat("nope", 1), ErrUnknownKey)
	assert.ErrorIs(t, c.SetColor("nope", ggfx.Red), ErrUnknownKey)
	assert.Equal(t, before, c)
}

func TestConfig_TypeMismatch(t *testing.T) {
	c := testConfig()
	before := c.Clone()

	f, err := c.Float("tint")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, NotSet, f)

	col, err := c.Color("radius")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, ggfx.RGBA{}, col)

	p, err := c.Position("bounds")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, ggfx.Point{}, p)

	v, err := c.Vector("center")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, Vec4{}, v)

	assert.ErrorIs(t, c.SetColor("radius", ggfx.Red), ErrTypeMismatch)
	assert.ErrorIs(t, c.SetFloat("tint", 1), ErrTypeMismatch)
	assert.ErrorIs(t, c.Set("center", Vector(Vec4{})), ErrTypeMismatch)
	assert.Equal(t, before, c)
}

func TestConfig_Image(t *testing.T) {
	c := testConfig()
	img := ggfx.NewPixmap(2, 2)
	require.NoError(t, c.Set("mask", Image(img)))

	v, err := c.Value("mask")
	require.NoError(t, err)
	got, ok := v.Image()
	require.True(t, ok)
	assert.Same(t, img, got)
}

func TestConfig_CloneIndependent(t *testing.T) {
	c := testConfig()
	d := c.Clone()
	require.NoError(t, d.SetFloat("radius", 7))
	require.NoError(t, d.SetVector("bounds", Vec4{9, 9, 9, 9}))

	f, _ := c.Float("radius")
	v, _ := c.Vector("bounds")
	assert.Equal(t, 2.0, f)
	assert.Equal(t, Vec4{0, 0, 1, 1}, v)
}

func TestConfig_KeysSorted(t *testing.T) {
	assert.Equal(t, []string{"bounds", "center", "mask", "radius", "tint"}, testConfig().Keys())
}

func TestSettings_CurrentRoundtrip(t *testing.T) {
	values := []Value{
		Float(0.5),
		Color(ggfx.RGBA2(0.1, 0.2, 0.3, 0.4)),
		Position(ggfx.Pt(-1, 3)),
		Vector(Vec4{1, 2, 3, 4}),
	}
	for _, v := range values {
		t.Run(v.Type().String(), func(t *testing.T) {
			s := Settings{Key: "k", Type: v.Type()}
			require.NoError(t, s.Assign(v))
			assert.Equal(t, v, s.Current())
		})
	}
}

func TestSettings_ColorAlphaDefault(t *testing.T) {
	s := Settings{Key: "c", Type: TypeColor, Components: []float64{1, 0, 0}}
	col, ok := s.Current().Color()
	require.True(t, ok)
	assert.Equal(t, ggfx.Red, col)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"float", TypeFloat},
		{"Color", TypeColor},
		{"image", TypeImage},
		{"position", TypePosition},
		{"vector", TypeVector},
		{"rectangle", TypeVector},
		{"unknown", TypeUnknown},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseType("matrix")
	assert.Error(t, err)

	var typ Type
	require.NoError(t, typ.UnmarshalText([]byte("position")))
	assert.Equal(t, TypePosition, typ)
	b, err := TypeVector.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "vector", string(b))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "0.5", Float(0.5).String())
	assert.Equal(t, "(1, 2)", Position(ggfx.Pt(1, 2)).String())
	assert.Equal(t, "image(nil)", Image(nil).String())
	assert.Equal(t, "unknown", Value{}.String())
}
