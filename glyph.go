package glyphcache

import (
	"log/slog"

	"github.com/gogpu/glyphcache/atlas"
	"github.com/gogpu/glyphcache/font"
	ximage "github.com/gogpu/glyphcache/internal/image"
)

// squareAspect is the cell height/width ratio of a glyph's font from which
// its glyphs count as square and may overflow.
const squareAspect = 0.9

// CachedGlyph is the rendering of one glyph. It is shared between callers
// and never modified after it is cached.
type CachedGlyph struct {
	HasColor bool

	// XOffset and YOffset are the shaper offsets in pixels, scaled.
	XOffset, YOffset float64

	// BearingX and BearingY place the sprite relative to the pen and the
	// baseline, scaled.
	BearingX, BearingY float64

	// Texture is nil for glyphs with no pixels, such as spaces.
	Texture *atlas.Sprite

	// Scale is the factor the renderer still has to apply. Glyphs that
	// needed rescaling are resampled before upload, so it is 1 for them.
	Scale float64
}

// ResolveGlyph returns the cached rendering of a shaped glyph in style,
// rasterizing and uploading it on first use. followedBySpace reports
// whether the next cell is blank, which matters to the
// OverflowWhenFollowedBySpace policy.
//
// A hit allocates nothing. Resolver and rasterizer failures are returned
// as *GlyphError; atlas failures are returned unchanged. Nothing is cached
// when an error is returned.
func (c *GlyphCache) ResolveGlyph(info *font.GlyphInfo, style *font.TextStyle, followedBySpace bool) (*CachedGlyph, error) {
	key := BorrowedGlyphKey{
		FontIdx:         info.FontIdx,
		GlyphPos:        info.GlyphPos,
		Style:           style,
		FollowedBySpace: followedBySpace,
	}
	if g, ok := c.glyphs.get(key); ok {
		return g, nil
	}

	g, err := c.loadGlyph(info, key)
	if err != nil {
		return nil, err
	}
	return c.glyphs.insert(key, g), nil
}

// LookupGlyph returns the cached glyph for key without rendering anything.
func (c *GlyphCache) LookupGlyph(key BorrowedGlyphKey) (*CachedGlyph, bool) {
	return c.glyphs.get(key)
}

func (c *GlyphCache) loadGlyph(info *font.GlyphInfo, key BorrowedGlyphKey) (*CachedGlyph, error) {
	fail := func(err error) error {
		owned := key.ToOwned()
		return &GlyphError{FontIdx: owned.FontIdx, GlyphPos: owned.GlyphPos, Style: owned.Style, Err: err}
	}

	handle, err := c.fonts.ResolveFont(key.Style)
	if err != nil {
		return nil, fail(err)
	}
	base := handle.Metrics()
	raster, err := handle.RasterizeGlyph(info.GlyphPos, info.FontIdx)
	if err != nil {
		return nil, fail(err)
	}
	idx, err := handle.MetricsForIdx(info.FontIdx)
	if err != nil {
		return nil, fail(err)
	}

	scale := c.glyphScale(base, idx, raster, info.Cells(), key.FollowedBySpace)

	if raster.Width == 0 || raster.Height == 0 || raster.Image == nil {
		return &CachedGlyph{
			HasColor: raster.HasColor,
			XOffset:  info.XOffset * scale,
			YOffset:  info.YOffset * scale,
			Scale:    scale,
		}, nil
	}

	g := &CachedGlyph{
		HasColor: raster.HasColor,
		XOffset:  info.XOffset * scale,
		YOffset:  info.YOffset * scale,
		BearingX: raster.BearingX * scale,
		BearingY: raster.BearingY * scale,
		Scale:    scale,
	}

	pixels := raster.Image
	if scale != 1 {
		Logger().Debug("glyphcache: rescaling glyph",
			slog.Int("font_idx", info.FontIdx),
			slog.Uint64("glyph", uint64(info.GlyphPos)),
			slog.Float64("scale", scale),
			slog.Int("width", raster.Width),
			slog.Int("height", raster.Height),
			slog.Float64("cell_width", base.CellWidth),
			slog.Float64("cell_height", base.CellHeight))
		pixels = ximage.ScaleBy(pixels, scale)
		g.Scale = 1
	}

	sprite, err := c.alloc.Allocate(pixels)
	if err != nil {
		return nil, err
	}
	g.Texture = &sprite

	if info.FontIdx != 0 {
		Logger().Debug("glyphcache: fallback font glyph",
			slog.Int("font_idx", info.FontIdx),
			slog.Uint64("glyph", uint64(info.GlyphPos)),
			slog.Int("width", pixels.Rect.Dx()),
			slog.Int("height", pixels.Rect.Dy()))
	}
	return g, nil
}

// glyphScale reconciles the metrics of the glyph's own font with the base
// font. The height-derived scale is preferred; the width-derived one is
// used when the glyph would otherwise spill past numCells cells and the
// overflow policy does not allow that.
func (c *GlyphCache) glyphScale(base, idx font.Metrics, raster *font.RasterizedGlyph, numCells int, followedBySpace bool) float64 {
	if idx.CellHeight <= 0 || idx.CellWidth <= 0 {
		return 1
	}
	yScale := base.CellHeight / idx.CellHeight
	xScale := base.CellWidth / (idx.CellWidth / float64(numCells))

	allowOverflow := false
	if idx.CellHeight/idx.CellWidth >= squareAspect {
		switch c.opts.overflow {
		case OverflowAlways:
			allowOverflow = true
		case OverflowWhenFollowedBySpace:
			allowOverflow = followedBySpace
		}
	}

	if !allowOverflow && yScale*float64(raster.Width) > base.CellWidth*float64(numCells) {
		return xScale
	}
	return yScale
}
