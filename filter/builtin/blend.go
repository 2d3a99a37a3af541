package builtin

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/kernel"
)

// BlendName returns the filter name of a blend mode, such as
// "MultiplyBlend".
func BlendName(mode kernel.BlendMode) string {
	return mode.String() + "Blend"
}

type blendFilter struct {
	filter.Base
	mode kernel.BlendMode
}

// NewBlend returns a filter that blends Inputs.Image onto
// Inputs.Background with mode.
func NewBlend(mode kernel.BlendMode) filter.Filter {
	return &blendFilter{Base: filter.NewBase(BlendName(mode)), mode: mode}
}

func (f *blendFilter) Output(in filter.Inputs) (*ggfx.Pixmap, error) {
	return kernel.Blend(in.Image, in.Background, f.mode)
}
