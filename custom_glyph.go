package glyphcache

import (
	"unicode/utf8"

	"github.com/gogpu/glyphcache/atlas"
)

// BoxDrawingKey selects a box-drawing line.
type BoxDrawingKey uint8

const (
	LightHorizontal BoxDrawingKey = iota // U+2500
	HeavyHorizontal                      // U+2501
	LightVertical                        // U+2502
	HeavyVertical                        // U+2503
)

// String returns a string representation of the key.
func (k BoxDrawingKey) String() string {
	switch k {
	case LightHorizontal:
		return "LightHorizontal"
	case HeavyHorizontal:
		return "HeavyHorizontal"
	case LightVertical:
		return "LightVertical"
	case HeavyVertical:
		return "HeavyVertical"
	default:
		return "Unknown"
	}
}

// BlockAlpha is the opacity of a shaded full block.
type BlockAlpha uint8

const (
	AlphaFull   BlockAlpha = iota // 100%
	AlphaDark                     // 75%
	AlphaMedium                   // 50%
	AlphaLight                    // 25%
)

// value returns the linear opacity of a.
func (a BlockAlpha) value() float64 {
	switch a {
	case AlphaDark:
		return 0.75
	case AlphaMedium:
		return 0.5
	case AlphaLight:
		return 0.25
	default:
		return 1
	}
}

// Quadrant is a set of cell quarters.
type Quadrant uint8

const (
	QuadrantUpperLeft  Quadrant = 1 << 1
	QuadrantUpperRight Quadrant = 1 << 2
	QuadrantLowerLeft  Quadrant = 1 << 3
	QuadrantLowerRight Quadrant = 1 << 4
)

// Has reports whether q contains every quadrant of o.
func (q Quadrant) Has(o Quadrant) bool {
	return q&o == o
}

type blockKind uint8

const (
	blockUpper blockKind = iota
	blockLower
	blockLeft
	blockRight
	blockFull
	blockQuadrants
)

// BlockKey selects a block element. Build one with Upper, Lower, Left,
// Right, Full or Quadrants.
type BlockKey struct {
	kind blockKind
	n    uint8 // eighths, alpha or quadrant bits depending on kind
}

// Upper fills the top n eighths of the cell.
func Upper(n uint8) BlockKey { return BlockKey{kind: blockUpper, n: n} }

// Lower fills the bottom n eighths of the cell.
func Lower(n uint8) BlockKey { return BlockKey{kind: blockLower, n: n} }

// Left fills the left n eighths of the cell.
func Left(n uint8) BlockKey { return BlockKey{kind: blockLeft, n: n} }

// Right fills the right n eighths of the cell.
func Right(n uint8) BlockKey { return BlockKey{kind: blockRight, n: n} }

// Full fills the whole cell at the given opacity.
func Full(a BlockAlpha) BlockKey { return BlockKey{kind: blockFull, n: uint8(a)} }

// Quadrants fills the given quarters of the cell.
func Quadrants(q Quadrant) BlockKey { return BlockKey{kind: blockQuadrants, n: uint8(q)} }

type customKind uint8

const (
	customBoxDrawing customKind = iota
	customBlock
)

// CustomGlyphKey identifies a glyph drawn from geometry rather than taken
// from a font: either a box-drawing line or a block element. It is
// comparable.
type CustomGlyphKey struct {
	kind  customKind
	box   BoxDrawingKey
	block BlockKey
}

// BoxDrawing returns the key of a box-drawing glyph.
func BoxDrawing(k BoxDrawingKey) CustomGlyphKey {
	return CustomGlyphKey{kind: customBoxDrawing, box: k}
}

// Block returns the key of a block element.
func Block(k BlockKey) CustomGlyphKey {
	return CustomGlyphKey{kind: customBlock, block: k}
}

// BoxDrawing returns the box-drawing variant, if k is one.
func (k CustomGlyphKey) BoxDrawing() (BoxDrawingKey, bool) {
	return k.box, k.kind == customBoxDrawing
}

// Block returns the block variant, if k is one.
func (k CustomGlyphKey) Block() (BlockKey, bool) {
	return k.block, k.kind == customBlock
}

// CustomGlyphFromRune maps a box-drawing or block-element code point to
// its key.
func CustomGlyphFromRune(r rune) (CustomGlyphKey, bool) {
	switch {
	case r >= 0x2500 && r <= 0x2503:
		return BoxDrawing(BoxDrawingKey(r - 0x2500)), true
	case r == 0x2580:
		return Block(Upper(4)), true
	case r >= 0x2581 && r <= 0x2587:
		return Block(Lower(uint8(r - 0x2580))), true
	case r == 0x2588:
		return Block(Full(AlphaFull)), true
	case r >= 0x2589 && r <= 0x258f:
		return Block(Left(uint8(0x2590 - r))), true
	case r == 0x2590:
		return Block(Right(4)), true
	case r == 0x2591:
		return Block(Full(AlphaLight)), true
	case r == 0x2592:
		return Block(Full(AlphaMedium)), true
	case r == 0x2593:
		return Block(Full(AlphaDark)), true
	case r == 0x2594:
		return Block(Upper(1)), true
	case r == 0x2595:
		return Block(Right(1)), true
	case r >= 0x2596 && r <= 0x259f:
		return Block(Quadrants(quadrantGlyphs[r-0x2596])), true
	}
	return CustomGlyphKey{}, false
}

// quadrantGlyphs lists U+2596 through U+259F.
var quadrantGlyphs = [...]Quadrant{
	QuadrantLowerLeft,
	QuadrantLowerRight,
	QuadrantUpperLeft,
	QuadrantUpperLeft | QuadrantLowerLeft | QuadrantLowerRight,
	QuadrantUpperLeft | QuadrantLowerRight,
	QuadrantUpperLeft | QuadrantUpperRight | QuadrantLowerLeft,
	QuadrantUpperLeft | QuadrantUpperRight | QuadrantLowerRight,
	QuadrantUpperRight,
	QuadrantUpperRight | QuadrantLowerLeft,
	QuadrantUpperRight | QuadrantLowerLeft | QuadrantLowerRight,
}

// CustomGlyphFromCell maps the text of a cell to a custom glyph key. Only
// cells holding exactly one qualifying code point match; a combining mark
// or any other extra rune disqualifies the cell.
func CustomGlyphFromCell(text string) (CustomGlyphKey, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return CustomGlyphKey{}, false
	}
	return CustomGlyphFromRune(r)
}

// ResolveCustomGlyph returns the sprite of a box-drawing or block glyph,
// drawing it at cell size on first use.
func (c *GlyphCache) ResolveCustomGlyph(key CustomGlyphKey) (atlas.Sprite, error) {
	if sprite, ok := c.custom[key]; ok {
		return sprite, nil
	}

	var err error
	var sprite atlas.Sprite
	switch key.kind {
	case customBlock:
		sprite, err = c.alloc.Allocate(drawBlock(key.block, c.metrics))
	default:
		sprite, err = c.alloc.Allocate(drawBoxDrawing(key.box, c.metrics))
	}
	if err != nil {
		return atlas.Sprite{}, err
	}
	c.custom[key] = sprite
	return sprite, nil
}
