// Package cache provides a small generic LRU cache.
//
//	weights := cache.New[int, []float32](64)
//	w := weights.GetOrCreate(250, func() []float32 { return compute(2.5) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
