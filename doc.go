// Package glyphcache turns render requests into sprites packed in a texture
// atlas.
//
// # Overview
//
// A terminal renderer asks, for every cell of a frame, which texture region
// shows that cell's content. GlyphCache answers for four kinds of content,
// each behind its own entry point and its own cache:
//
//   - [GlyphCache.ResolveGlyph]: font glyphs, rasterized through a
//     [font.Resolver] and rescaled to fit the base font's cell.
//   - [GlyphCache.ResolveImage]: decoded images, including animated GIF and
//     APNG, with per-image frame timing.
//   - [GlyphCache.ResolveCustomGlyph]: box-drawing and block-element glyphs
//     drawn from geometry instead of the font.
//   - [GlyphCache.ResolveLineSprite]: underline, strike-through and overline
//     decorations.
//
// # Quick Start
//
//	cfg, _ := font.NewConfiguration(16, font.DefaultSources()...)
//	style := font.NewTextStyle("Go Mono")
//	h, _ := cfg.ResolveFont(&style)
//
//	gc, _ := glyphcache.NewInMemory(1024, cfg, glyphcache.NewRenderMetrics(h.Metrics()))
//	glyphs, _ := font.NewShaper(cfg).Shape("hello", &style)
//	for i := range glyphs {
//	    g, err := gc.ResolveGlyph(&glyphs[i], &style, false)
//	    ...
//	}
//
// # Glyph lookup
//
// Glyph lookups outnumber insertions by orders of magnitude, and the text
// style inside a glyph key holds a slice. The glyph cache interns styles
// into small integer handles so the stored key is a plain comparable
// struct: a lookup hashes the caller's style in place and allocates
// nothing. The owned [GlyphKey] is only materialized on a miss.
//
// # Invalidation
//
// [GlyphCache.Clear] empties the glyph, line, custom-glyph and frame caches
// and resets the atlas; every sprite issued before the call is invalid.
// Decoded images survive a clear because decoding is the expensive part;
// their frames are re-uploaded on demand.
//
// # Animation
//
// ResolveImage returns the instant the image's current frame expires. The
// cache owns no timers: callers poll again no later than that instant.
//
// # Concurrency
//
// A GlyphCache is single-threaded. Callers rendering from several
// goroutines must serialize access.
package glyphcache
