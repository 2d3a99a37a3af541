// Package ggfx provides composable image filters for Go.
//
// # Overview
//
// ggfx is a Pure Go filter layer in the GoGPU ecosystem. It turns a set of
// pixel kernels (convolution, edge detection, luma isolation, compositing,
// clarity, dehaze, white balance, color lookup) into uniformly addressable
// filters that can be parameterized by key, chained, persisted and created
// by name.
//
// # Quick Start
//
//	reg := registry.New()
//	reg.RegisterFilters()
//
//	d, err := reg.Descriptor("SobelEdges")
//	if err != nil {
//	    return err
//	}
//	_ = d.SetParameter("strength", 2)
//	out, err := d.Apply(img, nil)
//
// # Architecture
//
// The library is organized into:
//   - ggfx: Pixmap (the image handle), RGBA, Point, Size, logging
//   - param: typed filter parameters with fail-soft accessors
//   - kernel: pure pixel kernels
//   - filter: the Filter interface, Descriptor, Chain and Definition
//   - filter/builtin: filters wrapping the kernels
//   - registry: name to filter lookup with a shared cache
//   - asset, catalog: lookup images and persisted filter definitions
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Kernels are pure and may run concurrently. Descriptors and chains are
// single-owner values: mutate them from one goroutine. The registry cache
// is safe for concurrent use.
package ggfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
