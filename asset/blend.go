package asset

import (
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

// BlendLibrary supplies the current default blend image of blend
// descriptors. It satisfies filter.BlendSource.
//
// BlendLibrary is a single-owner value.
type BlendLibrary struct {
	store   Store
	current string
	fill    ggfx.RGBA
}

// NewBlendLibrary returns a library reading images from store. Until an
// image is selected, BlendImage returns a solid fill.
func NewBlendLibrary(store Store, fill ggfx.RGBA) *BlendLibrary {
	return &BlendLibrary{store: store, fill: fill}
}

// Select makes name the current blend image. It fails if the store cannot
// load it; the previous selection is kept.
func (b *BlendLibrary) Select(name string) error {
	if name != "" {
		if _, err := b.store.Image(name); err != nil {
			return fmt.Errorf("asset: select blend image: %w", err)
		}
	}
	b.current = name
	return nil
}

// Current returns the selected image name, or "" for the solid fill.
func (b *BlendLibrary) Current() string { return b.current }

// BlendImage returns the current blend image resized to size.
func (b *BlendLibrary) BlendImage(size ggfx.Size) (*ggfx.Pixmap, error) {
	if size.Empty() {
		return nil, ggfx.ErrNoBacking
	}
	if b.current == "" {
		return ggfx.NewPixmapFilled(size.Width, size.Height, b.fill), nil
	}
	img, err := b.store.Image(b.current)
	if err != nil {
		return nil, err
	}
	return kernel.Resize(img, size.Width, size.Height)
}
