// Package kernel provides the pixel kernels behind ggfx filters.
//
// Every kernel is a pure function of its inputs: it never modifies the
// source pixmap, keeps no state between calls, and may run concurrently
// with other kernels. Kernels return a new pixmap with the same extent as
// their primary input.
//
// Kernels fail with ggfx.ErrNilImage or ggfx.ErrNoBacking when the input
// cannot be read. They never return a partial image together with an
// error; deciding whether a failed stage is skipped or aborts a pipeline is
// left to the caller (see filter.Chain).
//
// Families:
//   - Convolution: Convolve3x3, Convolve, SobelSinglePass, SobelTwoPass, Edges5x5
//   - Luma: LumaRange, Threshold
//   - Compositing: Opacity, Composite, OpacityOver, Blend
//   - Color: ColorMatrix and presets, ColorControls, Vibrance, ClampColors,
//     WhiteBalance, LookupTable and ApplyLookup
//   - Spatial: GaussianBlur, UnsharpMask, Clarity, Dehaze, Vignette, Resize
package kernel
