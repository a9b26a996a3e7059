// Package font resolves text styles to concrete fonts and rasterizes their
// glyphs for the glyph cache.
//
// A [Configuration] holds a fixed set of registered font [Source] values
// parsed with golang.org/x/image/font/sfnt. Resolving a [TextStyle] yields a
// [Handle]: the ordered fallback chain of fonts for that style. Index 0 is
// the primary font; higher indices are fallbacks chosen when the primary
// lacks a glyph.
//
// [Shaper] turns text into positioned [GlyphInfo] values using HarfBuzz
// shaping from go-text/typesetting, and [SplitCells] splits text into
// terminal cells (grapheme clusters with their display width).
//
// Nothing in this package discovers system fonts; callers register every
// source explicitly or use [DefaultSources].
package font
