package font

import "errors"

// Sentinel errors for font package.
var (
	// ErrNoFonts is returned when a configuration has no sources to resolve.
	ErrNoFonts = errors.New("font: no font sources registered")

	// ErrEmptyFontData is returned when a source carries no font bytes.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrInvalidSize is returned for a non-positive pixel size.
	ErrInvalidSize = errors.New("font: pixel size must be positive")

	// ErrFontIndex is returned when a fallback index is outside the chain.
	ErrFontIndex = errors.New("font: font index out of range")

	// ErrColorGlyph is returned for glyphs stored as bitmaps or color
	// layers, which the outline rasterizer cannot draw.
	ErrColorGlyph = errors.New("font: color glyphs are not supported")
)

// ParseError is returned when a registered source fails to parse.
type ParseError struct {
	Family string
	Err    error
}

func (e *ParseError) Error() string {
	return "font: parse " + e.Family + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
