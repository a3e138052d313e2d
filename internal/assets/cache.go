package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Key identifies a scaled image. Two lookups with the same key share one image.
type Key struct {
	Path   string
	Width  int
	Height int
}

// Loader reads and decodes the image stored at path.
type Loader func(path string) (image.Image, error)

// Cache loads images on first use and keeps every scaled result for the
// lifetime of the process. It is not safe for concurrent use.
type Cache struct {
	dir     string
	load    Loader
	entries map[Key]image.Image
}

type Option func(*Cache)

// WithLoader replaces the file system loader.
func WithLoader(l Loader) Option {
	return func(c *Cache) {
		c.load = l
	}
}

func NewCache(dir string, opts ...Option) *Cache {
	c := &Cache{
		dir:     dir,
		load:    decodeFile,
		entries: make(map[Key]image.Image),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sprite returns the sprite scaled to width x height pixels.
func (c *Cache) Sprite(s Sprite, width, height int) (image.Image, error) {
	name, err := s.File()
	if err != nil {
		return nil, err
	}
	return c.Get(filepath.Join(c.dir, name), width, height)
}

// Get returns the image at path scaled to width x height pixels.
func (c *Cache) Get(path string, width, height int) (image.Image, error) {
	key := Key{Path: path, Width: width, Height: height}
	if img, ok := c.entries[key]; ok {
		return img, nil
	}

	src, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	img := scale(src, width, height)
	c.entries[key] = img
	return img, nil
}

func (c *Cache) Len() int {
	return len(c.entries)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func scale(src image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return src
	}
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
