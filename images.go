package board

import "image"

// ImageCache resolves ImageProps.Src references to decoded images. The
// engine never fetches or decodes image data itself; the host registers
// decoded images under the same opaque src strings it stores in props.
// Unresolved sources render as placeholders.
type ImageCache struct {
	bySrc map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{bySrc: make(map[string]image.Image)}
}

// Register associates a decoded image with a src reference, replacing any
// earlier registration.
func (c *ImageCache) Register(src string, img image.Image) {
	if src == "" || img == nil {
		return
	}
	c.bySrc[src] = img
}

// Lookup returns the image registered for src. A nil cache resolves
// nothing.
func (c *ImageCache) Lookup(src string) (image.Image, bool) {
	if c == nil || src == "" {
		return nil, false
	}
	img, ok := c.bySrc[src]
	return img, ok
}

// Len returns the number of registered images.
func (c *ImageCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bySrc)
}
