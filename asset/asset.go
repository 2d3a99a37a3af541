// Package asset loads the images filters depend on: lookup tables for
// lookup descriptors and default blend images for blend descriptors.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/ggfx"
)

// ErrNotFound is returned when no asset matches a name.
var ErrNotFound = errors.New("asset: not found")

// Store provides images by name. It satisfies filter.LookupStore.
type Store interface {
	Image(name string) (*ggfx.Pixmap, error)
}

// Extensions tried, in order, when a name has none.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"}

// FSStore decodes images from a file system.
type FSStore struct {
	fsys fs.FS
	dir  string
}

// NewFSStore returns a store reading images under dir of fsys.
func NewFSStore(fsys fs.FS, dir string) *FSStore {
	if dir == "" {
		dir = "."
	}
	return &FSStore{fsys: fsys, dir: dir}
}

// Image decodes the image called name. A name without extension is
// matched against Extensions.
func (s *FSStore) Image(name string) (*ggfx.Pixmap, error) {
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range Extensions {
			candidates = append(candidates, name+ext)
		}
	}
	for _, c := range candidates {
		img, err := s.decode(path.Join(s.dir, c))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return img, err
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (s *FSStore) decode(name string) (*ggfx.Pixmap, error) {
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", name, err)
	}
	ggfx.Logger().Debug("asset decoded", "name", name, "format", format,
		"size", img.Bounds().Size())
	return ggfx.FromImage(img), nil
}

// Names lists the image assets in the store directory, without extension.
func (s *FSStore) Names() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		for _, known := range Extensions {
			if ext == known {
				names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
				break
			}
		}
	}
	return names, nil
}
