package filter

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/param"
)

// The accessors below fail soft: unknown keys and type mismatches are
// logged and leave the configuration unchanged.

func (d *Descriptor) reportAccess(op, key string, err error) {
	ggfx.Logger().Warn("parameter access rejected", "filter", d.key, "op", op, "key", key, "err", err)
}

// set assigns v in the configuration and forwards it to the filter.
func (d *Descriptor) set(op, key string, v param.Value) error {
	if err := d.params.Set(key, v); err != nil {
		d.reportAccess(op, key, err)
		return err
	}
	s := d.params[key]
	d.push(key, s.Current())
	d.touch()
	return nil
}

// Parameter returns the float value of key, or param.NotSet.
func (d *Descriptor) Parameter(key string) float64 {
	f, err := d.params.Float(key)
	if err != nil {
		d.reportAccess("get", key, err)
		return param.NotSet
	}
	return f
}

// SetParameter assigns a float parameter, clamped to its range.
func (d *Descriptor) SetParameter(key string, f float64) error {
	return d.set("set", key, param.Float(f))
}

// ColorParameter returns the color value of key, or the zero color.
func (d *Descriptor) ColorParameter(key string) ggfx.RGBA {
	c, err := d.params.Color(key)
	if err != nil {
		d.reportAccess("getColor", key, err)
	}
	return c
}

// SetColorParameter assigns a color parameter.
func (d *Descriptor) SetColorParameter(key string, c ggfx.RGBA) error {
	return d.set("setColor", key, param.Color(c))
}

// PositionParameter returns the position value of key, or the origin.
func (d *Descriptor) PositionParameter(key string) ggfx.Point {
	p, err := d.params.Position(key)
	if err != nil {
		d.reportAccess("getPosition", key, err)
	}
	return p
}

// SetPositionParameter assigns a position parameter.
func (d *Descriptor) SetPositionParameter(key string, p ggfx.Point) error {
	return d.set("setPosition", key, param.Position(p))
}

// VectorParameter returns the vector value of key, or the zero vector.
func (d *Descriptor) VectorParameter(key string) param.Vec4 {
	v, err := d.params.Vector(key)
	if err != nil {
		d.reportAccess("getVector", key, err)
	}
	return v
}

// SetVectorParameter assigns a vector parameter.
func (d *Descriptor) SetVectorParameter(key string, v param.Vec4) error {
	return d.set("setVector", key, param.Vector(v))
}

// SetImageParameter binds an image parameter.
func (d *Descriptor) SetImageParameter(key string, img *ggfx.Pixmap) error {
	return d.set("setImage", key, param.Image(img))
}

// SetValue assigns a value of any type.
func (d *Descriptor) SetValue(key string, v param.Value) error {
	return d.set("set"+v.Type().String(), key, v)
}
