package glyphcache

import (
	"strings"
	"time"
)

// DefaultImageCacheSize is the number of decoded images kept by default.
const DefaultImageCacheSize = 16

// SquareGlyphOverflow decides whether glyphs at least about as tall as they
// are wide may spill past their cells instead of being shrunk to fit.
type SquareGlyphOverflow uint8

const (
	// OverflowNever always shrinks glyphs to their cells.
	OverflowNever SquareGlyphOverflow = iota

	// OverflowAlways lets square glyphs keep their height-derived size.
	OverflowAlways

	// OverflowWhenFollowedBySpace lets square glyphs overflow only into a
	// blank neighbouring cell.
	OverflowWhenFollowedBySpace
)

// String returns a string representation of the policy.
func (p SquareGlyphOverflow) String() string {
	switch p {
	case OverflowNever:
		return "Never"
	case OverflowAlways:
		return "Always"
	case OverflowWhenFollowedBySpace:
		return "WhenFollowedBySpace"
	default:
		return "Unknown"
	}
}

// ParseSquareGlyphOverflow parses a policy name, ignoring case.
func ParseSquareGlyphOverflow(s string) (SquareGlyphOverflow, error) {
	for _, p := range []SquareGlyphOverflow{OverflowNever, OverflowAlways, OverflowWhenFollowedBySpace} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return OverflowNever, ErrUnknownOverflow
}

// Option configures a GlyphCache during creation.
//
// Example:
//
//	gc := glyphcache.New(atlas, fonts, metrics,
//	    glyphcache.WithSquareGlyphOverflow(glyphcache.OverflowWhenFollowedBySpace),
//	    glyphcache.WithImageCacheSize(64))
type Option func(*options)

type options struct {
	now            func() time.Time
	imageCacheSize int
	overflow       SquareGlyphOverflow
}

func defaultOptions() options {
	return options{
		now:            time.Now,
		imageCacheSize: DefaultImageCacheSize,
		overflow:       OverflowNever,
	}
}

// WithClock replaces the time source used for animation timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithImageCacheSize bounds the number of decoded images kept. Values below
// one are ignored.
func WithImageCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.imageCacheSize = n
		}
	}
}

// WithSquareGlyphOverflow sets the overflow policy for square glyphs.
func WithSquareGlyphOverflow(p SquareGlyphOverflow) Option {
	return func(o *options) {
		o.overflow = p
	}
}
