package glyphcache

import (
	"github.com/gogpu/glyphcache/font"
	"github.com/gogpu/glyphcache/internal/cache"
)

// GlyphKey identifies a rendered glyph. It owns its style.
type GlyphKey struct {
	FontIdx         int
	GlyphPos        uint32
	Style           font.TextStyle
	FollowedBySpace bool
}

// BorrowedGlyphKey is a GlyphKey that points at a style owned by the
// caller. It is what lookups use; it compares and hashes exactly like the
// owned key built from the same field values.
type BorrowedGlyphKey struct {
	FontIdx         int
	GlyphPos        uint32
	Style           *font.TextStyle
	FollowedBySpace bool
}

// Borrow returns a view of k. The view is valid while k is.
func (k *GlyphKey) Borrow() BorrowedGlyphKey {
	return BorrowedGlyphKey{
		FontIdx:         k.FontIdx,
		GlyphPos:        k.GlyphPos,
		Style:           &k.Style,
		FollowedBySpace: k.FollowedBySpace,
	}
}

// ToOwned returns a GlyphKey holding a deep copy of the style.
func (k BorrowedGlyphKey) ToOwned() GlyphKey {
	return GlyphKey{
		FontIdx:         k.FontIdx,
		GlyphPos:        k.GlyphPos,
		Style:           k.Style.Clone(),
		FollowedBySpace: k.FollowedBySpace,
	}
}

// glyphSlot is the stored form of a glyph key: the style is replaced by its
// interned handle, so the key is comparable and copying it is free.
type glyphSlot struct {
	fontIdx         int
	glyphPos        uint32
	style           cache.Handle
	followedBySpace bool
}

// glyphIndex maps glyph keys to cached glyphs.
type glyphIndex struct {
	styles  *cache.Interner[font.TextStyle, *font.TextStyle]
	entries *cache.Index[glyphSlot, *CachedGlyph]
}

func newGlyphIndex() *glyphIndex {
	return &glyphIndex{
		styles:  cache.NewInterner[font.TextStyle](),
		entries: cache.NewIndex[glyphSlot, *CachedGlyph](),
	}
}

// get looks k up without allocating.
func (x *glyphIndex) get(k BorrowedGlyphKey) (*CachedGlyph, bool) {
	h, ok := x.styles.Lookup(k.Style)
	if !ok {
		x.entries.Miss()
		return nil, false
	}
	return x.entries.Get(glyphSlot{
		fontIdx:         k.FontIdx,
		glyphPos:        k.GlyphPos,
		style:           h,
		followedBySpace: k.FollowedBySpace,
	})
}

// insert stores g under k, interning a copy of the style if it is new.
func (x *glyphIndex) insert(k BorrowedGlyphKey, g *CachedGlyph) *CachedGlyph {
	return x.entries.Insert(glyphSlot{
		fontIdx:         k.FontIdx,
		glyphPos:        k.GlyphPos,
		style:           x.styles.Intern(k.Style),
		followedBySpace: k.FollowedBySpace,
	}, g)
}

// len returns the number of cached glyphs.
func (x *glyphIndex) len() int {
	return x.entries.Len()
}

func (x *glyphIndex) clear() {
	x.entries.Clear()
	x.styles.Clear()
}
