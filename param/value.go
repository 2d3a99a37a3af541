package param

import (
	"fmt"

	"github.com/gogpu/ggfx"
)

// Vec4 is a four-component vector parameter.
type Vec4 [4]float64

// Value is a parameter value tagged with its type. The zero Value has type
// TypeUnknown.
type Value struct {
	kind Type
	f    float64
	c    ggfx.RGBA
	p    ggfx.Point
	v    Vec4
	img  *ggfx.Pixmap
}

// Float returns a float value.
func Float(f float64) Value { return Value{kind: TypeFloat, f: f} }

// Color returns a color value.
func Color(c ggfx.RGBA) Value { return Value{kind: TypeColor, c: c} }

// Position returns a position value.
func Position(p ggfx.Point) Value { return Value{kind: TypePosition, p: p} }

// Vector returns a vector value.
func Vector(v Vec4) Value { return Value{kind: TypeVector, v: v} }

// Image returns an image value. The image is referenced, not copied.
func Image(img *ggfx.Pixmap) Value { return Value{kind: TypeImage, img: img} }

// Type returns the type tag of the value.
func (v Value) Type() Type { return v.kind }

// Float returns the float payload; ok is false for other types.
func (v Value) Float() (f float64, ok bool) { return v.f, v.kind == TypeFloat }

// Color returns the color payload; ok is false for other types.
func (v Value) Color() (c ggfx.RGBA, ok bool) { return v.c, v.kind == TypeColor }

// Position returns the position payload; ok is false for other types.
func (v Value) Position() (p ggfx.Point, ok bool) { return v.p, v.kind == TypePosition }

// Vector returns the vector payload; ok is false for other types.
func (v Value) Vector() (vec Vec4, ok bool) { return v.v, v.kind == TypeVector }

// Image returns the image payload; ok is false for other types.
func (v Value) Image() (img *ggfx.Pixmap, ok bool) { return v.img, v.kind == TypeImage }

// String formats the value for logs.
func (v Value) String() string {
	switch v.kind {
	case TypeFloat:
		return fmt.Sprintf("%g", v.f)
	case TypeColor:
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", v.c.R, v.c.G, v.c.B, v.c.A)
	case TypePosition:
		return fmt.Sprintf("(%g, %g)", v.p.X, v.p.Y)
	case TypeVector:
		return fmt.Sprintf("[%g %g %g %g]", v.v[0], v.v[1], v.v[2], v.v[3])
	case TypeImage:
		if v.img == nil {
			return "image(nil)"
		}
		return fmt.Sprintf("image(%dx%d)", v.img.Width(), v.img.Height())
	default:
		return "unknown"
	}
}

// components returns the persisted float components of the value.
func (v Value) components() []float64 {
	switch v.kind {
	case TypeColor:
		return []float64{v.c.R, v.c.G, v.c.B, v.c.A}
	case TypePosition:
		return []float64{v.p.X, v.p.Y}
	case TypeVector:
		return []float64{v.v[0], v.v[1], v.v[2], v.v[3]}
	default:
		return nil
	}
}

// fromComponents rebuilds a value of type t from persisted components.
// Missing components are zero, except color alpha which defaults to 1.
func fromComponents(t Type, f float64, comps []float64) Value {
	at := func(i int, def float64) float64 {
		if i < len(comps) {
			return comps[i]
		}
		return def
	}
	switch t {
	case TypeFloat:
		return Float(f)
	case TypeColor:
		return Color(ggfx.RGBA{R: at(0, 0), G: at(1, 0), B: at(2, 0), A: at(3, 1)})
	case TypePosition:
		return Position(ggfx.Point{X: at(0, 0), Y: at(1, 0)})
	case TypeVector:
		return Vector(Vec4{at(0, 0), at(1, 0), at(2, 0), at(3, 0)})
	case TypeImage:
		return Image(nil)
	default:
		return Value{}
	}
}
