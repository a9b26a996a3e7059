package glyphcache

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphcache/font"
)

// Sentinel errors for glyphcache package.
var (
	// ErrNilImage is returned when ResolveImage receives no image data.
	ErrNilImage = errors.New("glyphcache: nil image data")

	// ErrUnknownOverflow is returned when a square glyph overflow policy
	// name is not recognized.
	ErrUnknownOverflow = errors.New("glyphcache: unknown square glyph overflow policy")
)

// GlyphError is returned when a glyph cannot be resolved or rasterized. It
// carries the glyph identity and style for diagnostics.
type GlyphError struct {
	FontIdx  int
	GlyphPos uint32
	Style    font.TextStyle
	Err      error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyphcache: glyph %d of font %d %v: %v", e.GlyphPos, e.FontIdx, e.Style.Fonts, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
