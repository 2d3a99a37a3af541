package kernel

import (
	"image"

	"github.com/gogpu/ggfx"
	xdraw "golang.org/x/image/draw"
)

// Resize scales src to width×height with Catmull-Rom resampling.
// When src already has that extent a copy is returned.
func Resize(src *ggfx.Pixmap, width, height int) (*ggfx.Pixmap, error) {
	if err := checkInput("resize", src); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidExtent
	}
	if src.Width() == width && src.Height() == height {
		return src.Clone(), nil
	}

	dst := image.NewNRGBA64(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src.ToNRGBA64(), src.Bounds(), xdraw.Src, nil)
	return ggfx.FromImage(dst), nil
}
