package font

import "image"

// Resolver maps a text style to the fonts that render it.
type Resolver interface {
	ResolveFont(style *TextStyle) (Handle, error)
}

// Handle is a resolved fallback chain of fonts.
type Handle interface {
	// Metrics returns the metrics of the primary font.
	Metrics() Metrics

	// MetricsForIdx returns the metrics of the font at idx in the chain.
	MetricsForIdx(idx int) (Metrics, error)

	// RasterizeGlyph draws glyph glyphPos of the font at idx.
	RasterizeGlyph(glyphPos uint32, idx int) (*RasterizedGlyph, error)
}

// RasterizedGlyph is the raw rendering of one glyph at its natural size.
type RasterizedGlyph struct {
	Width, Height int

	// BearingX is the offset from the pen position to the left edge.
	BearingX float64

	// BearingY is the offset from the baseline up to the top edge.
	BearingY float64

	// HasColor reports whether Image carries its own colors. Monochrome
	// glyphs are premultiplied white coverage, tinted at draw time.
	HasColor bool

	// Image holds the pixels. It is nil when Width or Height is zero.
	Image *image.RGBA
}

// GlyphInfo is one shaped glyph of a text run.
type GlyphInfo struct {
	// FontIdx is the index of the font in the style's fallback chain.
	FontIdx int

	// GlyphPos is the glyph id within that font.
	GlyphPos uint32

	// Cluster is the byte offset of the glyph's cluster in the source text.
	Cluster int

	// NumCells is the number of terminal cells the cluster occupies.
	NumCells int

	// XOffset and YOffset are the shaper's positioning adjustments in pixels.
	XOffset, YOffset float64
}

// Cells returns NumCells, treating values below one as one.
func (g *GlyphInfo) Cells() int {
	return max(g.NumCells, 1)
}
