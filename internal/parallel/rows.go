// Package parallel splits per-pixel image work into row bands that run on
// separate goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRowsPerBand keeps bands large enough that goroutine overhead stays
// small relative to the per-pixel work.
const minRowsPerBand = 16

// serialThreshold is the pixel count below which work runs on the calling
// goroutine.
const serialThreshold = 64 * 64

// ForRows calls fn over disjoint row ranges [y0, y1) that together cover
// [0, height). fn must only write rows inside its range; it may read
// anything. ForRows returns after every call has finished.
func ForRows(width, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers <= 1 || width*height < serialThreshold || height < 2*minRowsPerBand {
		fn(0, height)
		return
	}

	bands := Bands(height, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for _, b := range bands {
		g.Go(func() error {
			fn(b[0], b[1])
			return nil
		})
	}
	_ = g.Wait()
}

// Bands splits [0, height) into at most n contiguous ranges of at least
// minRowsPerBand rows (except when height itself is smaller).
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := height / minRowsPerBand; n > maxBands {
		n = max(maxBands, 1)
	}

	out := make([][2]int, 0, n)
	step := height / n
	rem := height % n
	y := 0
	for i := range n {
		h := step
		if i < rem {
			h++
		}
		out = append(out, [2]int{y, y + h})
		y += h
	}
	return out
}
