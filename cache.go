package glyphcache

import (
	"image"

	"github.com/google/uuid"

	"github.com/gogpu/glyphcache/atlas"
	"github.com/gogpu/glyphcache/font"
	"github.com/gogpu/glyphcache/internal/cache"
)

// Allocator places pixel images into texture atlas space. *atlas.Atlas
// implements it; GPU backends can provide their own.
type Allocator interface {
	// Allocate copies img into the atlas and returns where it landed.
	Allocate(img *image.RGBA) (atlas.Sprite, error)

	// AllocateWithPadding is Allocate with padding transparent pixels
	// reserved around img.
	AllocateWithPadding(img *image.RGBA, padding int) (atlas.Sprite, error)

	// Clear drops every allocation.
	Clear()
}

// GlyphCache maps glyphs, images, procedural glyphs and line decorations
// to sprites in a texture atlas, rendering each one once.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	alloc   Allocator
	fonts   font.Resolver
	metrics RenderMetrics
	opts    options

	glyphs *glyphIndex
	images *cache.LRU[uuid.UUID, *cachedImage]
	frames map[frameKey]atlas.Sprite
	lines  map[LineKey]atlas.Sprite
	custom map[CustomGlyphKey]atlas.Sprite
}

// New creates a cache that renders with fonts at the cell geometry of
// metrics and stores the results through alloc.
func New(alloc Allocator, fonts font.Resolver, metrics RenderMetrics, opts ...Option) *GlyphCache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &GlyphCache{
		alloc:   alloc,
		fonts:   fonts,
		metrics: metrics,
		opts:    o,
		glyphs:  newGlyphIndex(),
		images:  cache.NewLRU[uuid.UUID, *cachedImage](o.imageCacheSize),
		frames:  make(map[frameKey]atlas.Sprite),
		lines:   make(map[LineKey]atlas.Sprite),
		custom:  make(map[CustomGlyphKey]atlas.Sprite),
	}
}

// NewInMemory creates a cache backed by a new in-memory atlas of the given
// size.
func NewInMemory(atlasSize int, fonts font.Resolver, metrics RenderMetrics, opts ...Option) (*GlyphCache, error) {
	a, err := atlas.New(atlasSize)
	if err != nil {
		return nil, err
	}
	return New(a, fonts, metrics, opts...), nil
}

// Allocator returns the allocator sprites are placed with.
func (c *GlyphCache) Allocator() Allocator {
	return c.alloc
}

// Atlas returns the in-memory atlas behind the cache, if it uses one.
func (c *GlyphCache) Atlas() (*atlas.Atlas, bool) {
	a, ok := c.alloc.(*atlas.Atlas)
	return a, ok
}

// Metrics returns the cell geometry procedural sprites are drawn at.
func (c *GlyphCache) Metrics() RenderMetrics {
	return c.metrics
}

// Clear forgets every sprite and clears the atlas. Decoded images stay
// cached so animations keep their timing; their frames are uploaded again
// on next use.
func (c *GlyphCache) Clear() {
	c.glyphs.clear()
	clear(c.frames)
	clear(c.lines)
	clear(c.custom)
	c.alloc.Clear()
}

// Stats is a snapshot of cache occupancy.
type Stats struct {
	Glyphs       int
	GlyphHits    uint64
	GlyphMisses  uint64
	Images       int
	ImageFrames  int
	Lines        int
	CustomGlyphs int
}

// Stats returns the current cache occupancy.
func (c *GlyphCache) Stats() Stats {
	hits, misses := c.glyphs.entries.Stats()
	return Stats{
		Glyphs:       c.glyphs.len(),
		GlyphHits:    hits,
		GlyphMisses:  misses,
		Images:       c.images.Len(),
		ImageFrames:  len(c.frames),
		Lines:        len(c.lines),
		CustomGlyphs: len(c.custom),
	}
}
