package filter

import (
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
	"github.com/gogpu/ggfx/param"
)

// Apply renders the descriptor.
//
// Single, blend and lookup outputs are clamp-extended and cropped back to
// the extent of image, so the result always has the input's size. For
// blend operations image2 (or the blend source when image2 is nil) is
// resized to that extent if needed and scaled by the blend opacity before
// it becomes the background. Custom operations pass both images to the
// filter unchanged.
//
// On failure Apply logs the cause and returns a nil image with the error.
func (d *Descriptor) Apply(image, image2 *ggfx.Pixmap) (*ggfx.Pixmap, error) {
	if d.state == StateReleased {
		return nil, d.fail(ErrReleased)
	}
	if err := ggfx.CheckImage(image); err != nil {
		return nil, d.fail(err)
	}
	if d.impl == NoFilterKey {
		return image, nil
	}
	d.touch()

	var (
		out *ggfx.Pixmap
		err error
	)
	switch d.op {
	case OperationSingle:
		out, err = d.filter.Output(Inputs{Image: image})
	case OperationBlend:
		out, err = d.applyBlend(image, image2)
	case OperationLookup:
		out, err = d.applyLookup(image)
	case OperationCustom:
		return d.checked(d.filter.Output(Inputs{Image: image, Background: image2}))
	default:
		err = ErrUnknownOperation
	}
	if err != nil {
		return nil, d.fail(err)
	}
	if err := ggfx.CheckImage(out); err != nil {
		return nil, d.fail(err)
	}
	return out.FitExtent(image.Width(), image.Height()), nil
}

func (d *Descriptor) checked(out *ggfx.Pixmap, err error) (*ggfx.Pixmap, error) {
	if err != nil {
		return nil, d.fail(err)
	}
	return out, nil
}

func (d *Descriptor) fail(err error) error {
	ggfx.Logger().Warn("filter apply failed", "filter", d.key, "op", d.op, "err", err)
	return fmt.Errorf("filter %s: %w", d.key, err)
}

func (d *Descriptor) applyBlend(image, image2 *ggfx.Pixmap) (*ggfx.Pixmap, error) {
	bg := image2
	if bg == nil {
		if d.blend == nil {
			return nil, ErrMissingBlendImage
		}
		var err error
		bg, err = d.blend.BlendImage(image.Size())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMissingBlendImage, err)
		}
	}
	if err := ggfx.CheckImage(bg); err != nil {
		return nil, err
	}
	if !bg.SameSize(image) {
		var err error
		bg, err = kernel.Resize(bg, image.Width(), image.Height())
		if err != nil {
			return nil, err
		}
	}

	opacity, err := d.params.Float(KeyBlendOpacity)
	if err != nil {
		opacity = DefaultBlendOpacity
	}
	bg, err = kernel.Opacity(bg, opacity)
	if err != nil {
		return nil, err
	}
	return d.filter.Output(Inputs{Image: image, Background: bg})
}

func (d *Descriptor) applyLookup(image *ggfx.Pixmap) (*ggfx.Pixmap, error) {
	table, err := d.lookupImage()
	if err != nil {
		return nil, err
	}
	intensity, err := d.params.Float(KeyLookupIntensity)
	if err != nil {
		intensity = DefaultLookupIntensity
	}
	if err := d.filter.SetValue(KeyLookupImage, param.Image(table)); err != nil {
		return nil, err
	}
	d.push(KeyLookupIntensity, param.Float(intensity))
	return d.filter.Output(Inputs{Image: image})
}

// lookupImage loads the lookup table image once and caches it.
func (d *Descriptor) lookupImage() (*ggfx.Pixmap, error) {
	if d.lookupImg != nil {
		return d.lookupImg, nil
	}
	if d.lookup == "" || d.store == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingLookup, d.lookup)
	}
	img, err := d.store.Image(d.lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMissingLookup, d.lookup, err)
	}
	d.lookupImg = img
	return img, nil
}

// ApplyOrPassthrough applies a and returns image unchanged when a fails.
func ApplyOrPassthrough(a Applier, image, image2 *ggfx.Pixmap) *ggfx.Pixmap {
	if a == nil {
		return image
	}
	out, err := a.Apply(image, image2)
	if err != nil {
		return image
	}
	return out
}
