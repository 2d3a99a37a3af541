package asset

import (
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/cache"
)

// DefaultCacheLimit is the number of decoded images a CachedStore keeps
// when no limit is given.
const DefaultCacheLimit = 32

// CachedStore memoizes another store, keeping the most recently used
// images. Concurrent requests for the same name share one load. Failed
// loads are not cached.
type CachedStore struct {
	next   Store
	group  singleflight.Group
	images *cache.Cache[string, *ggfx.Pixmap]
}

// NewCachedStore wraps next. limit bounds the number of cached images;
// limit <= 0 selects DefaultCacheLimit.
func NewCachedStore(next Store, limit int) *CachedStore {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &CachedStore{next: next, images: cache.New[string, *ggfx.Pixmap](limit)}
}

// Image returns the cached image of name, loading it on first use. The
// returned pixmap is shared; callers must not modify it.
func (c *CachedStore) Image(name string) (*ggfx.Pixmap, error) {
	if img, ok := c.images.Get(name); ok {
		return img, nil
	}
	v, err, shared := c.group.Do(name, func() (any, error) {
		img, err := c.next.Image(name)
		if err != nil {
			return nil, err
		}
		c.images.Set(name, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	ggfx.Logger().Debug("asset cache miss", "name", name, "shared", shared)
	return v.(*ggfx.Pixmap), nil
}

// Len returns the number of cached images.
func (c *CachedStore) Len() int { return c.images.Len() }

// Purge drops every cached image.
func (c *CachedStore) Purge() { c.images.Clear() }
