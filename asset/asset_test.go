package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"luts/red.png":    {Data: encodePNG(t, 4, 2, color.NRGBA{R: 255, A: 255})},
		"luts/blue.png":   {Data: encodePNG(t, 3, 3, color.NRGBA{B: 255, A: 255})},
		"luts/notes.txt":  {Data: []byte("not an image")},
		"luts/broken.png": {Data: []byte("garbage")},
		"luts/sub/x.png":  {Data: encodePNG(t, 1, 1, color.NRGBA{A: 255})},
	}
}

func TestFSStore_Image(t *testing.T) {
	s := NewFSStore(testFS(t), "luts")

	img, err := s.Image("red.png")
	require.NoError(t, err)
	assert.Equal(t, ggfx.Size{Width: 4, Height: 2}, img.Size())
	assert.Equal(t, ggfx.Red, img.GetPixel(3, 1))

	img, err = s.Image("blue")
	require.NoError(t, err, "extension is optional")
	assert.Equal(t, ggfx.Blue, img.GetPixel(0, 0))

	img, err = s.Image("sub/x")
	require.NoError(t, err)
	assert.Equal(t, ggfx.Black, img.GetPixel(0, 0))
}

func TestFSStore_Failures(t *testing.T) {
	s := NewFSStore(testFS(t), "luts")

	for _, name := range []string{"", "missing", "missing.png", "../red.png", "/abs.png"} {
		_, err := s.Image(name)
		assert.ErrorIs(t, err, ErrNotFound, name)
	}

	_, err := s.Image("broken.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = s.Image("notes.txt")
	assert.Error(t, err)
}

func TestFSStore_Names(t *testing.T) {
	names, err := NewFSStore(testFS(t), "luts").Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"red", "blue", "broken"}, names)

	_, err = NewFSStore(testFS(t), "nowhere").Names()
	assert.Error(t, err)
}

type countingStore struct {
	loads atomic.Int32
	img   *ggfx.Pixmap
	err   error
}

func (s *countingStore) Image(string) (*ggfx.Pixmap, error) {
	s.loads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

func TestCachedStore(t *testing.T) {
	next := &countingStore{img: kernel.IdentityLookupImage(4)}
	c := NewCachedStore(next, 0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := c.Image("identity")
			assert.NoError(t, err)
			assert.Same(t, next.img, img)
		}()
	}
	wg.Wait()
	_, err := c.Image("identity")
	require.NoError(t, err)
	assert.LessOrEqual(t, next.loads.Load(), int32(8))
	loads := next.loads.Load()

	_, err = c.Image("identity")
	require.NoError(t, err)
	assert.Equal(t, loads, next.loads.Load(), "served from cache")
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, err = c.Image("identity")
	require.NoError(t, err)
	assert.Equal(t, loads+1, next.loads.Load())
}

func TestCachedStore_FailuresNotCached(t *testing.T) {
	errMissing := errors.New("missing")
	next := &countingStore{err: errMissing}
	c := NewCachedStore(next, 0)

	for range 2 {
		_, err := c.Image("x")
		assert.ErrorIs(t, err, errMissing)
	}
	assert.Equal(t, int32(2), next.loads.Load())
	assert.Equal(t, 0, c.Len())
}

type nameStore struct{ loads atomic.Int32 }

func (s *nameStore) Image(name string) (*ggfx.Pixmap, error) {
	s.loads.Add(1)
	return ggfx.NewPixmap(len(name), 1), nil
}

func TestCachedStore_Limit(t *testing.T) {
	next := &nameStore{}
	c := NewCachedStore(next, 2)

	for _, name := range []string{"a", "bb", "a", "ccc", "a", "bb"} {
		img, err := c.Image(name)
		require.NoError(t, err)
		assert.Equal(t, len(name), img.Width())
	}
	assert.Equal(t, 2, c.Len())
	// a, bb, ccc load once each; bb is loaded again after ccc evicted it.
	assert.Equal(t, int32(4), next.loads.Load())
}

func TestBlendLibrary(t *testing.T) {
	lib := NewBlendLibrary(NewFSStore(testFS(t), "luts"), ggfx.MidGray)
	size := ggfx.Size{Width: 6, Height: 5}

	img, err := lib.BlendImage(size)
	require.NoError(t, err)
	assert.Equal(t, size, img.Size())
	assert.Equal(t, ggfx.MidGray, img.GetPixel(5, 4))

	require.NoError(t, lib.Select("red"))
	assert.Equal(t, "red", lib.Current())
	img, err = lib.BlendImage(size)
	require.NoError(t, err)
	assert.Equal(t, size, img.Size())
	assert.InDelta(t, 1, img.GetPixel(2, 2).R, 1e-3)

	assert.Error(t, lib.Select("missing"))
	assert.Equal(t, "red", lib.Current(), "failed selection keeps the previous one")

	require.NoError(t, lib.Select(""))
	assert.Equal(t, "", lib.Current())

	_, err = lib.BlendImage(ggfx.Size{})
	assert.ErrorIs(t, err, ggfx.ErrNoBacking)
}
