package atlas

import (
	"image"
	"math/bits"
)

// Size limits for New.
const (
	MinSize = 64
	MaxSize = 16384
)

// gutter is the spacing between packed sprites so bilinear sampling at a
// sprite edge never reads a neighbour.
const gutter = 1

// Atlas packs bitmaps into a single square Texture.
type Atlas struct {
	tex        *Texture
	shelves    *shelfAllocator
	generation uint64
	sprites    int
}

// New creates an empty atlas whose texture is size x size pixels. size must
// be a power of two between MinSize and MaxSize.
func New(size int) (*Atlas, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &Atlas{
		tex:     newTexture("glyph-atlas", size),
		shelves: newShelfAllocator(size, size, gutter),
	}, nil
}

func validateSize(size int) error {
	if size < MinSize {
		return &ConfigError{Field: "Size", Reason: "must be at least 64"}
	}
	if size > MaxSize {
		return &ConfigError{Field: "Size", Reason: "must be at most 16384"}
	}
	if size&(size-1) != 0 {
		return &ConfigError{Field: "Size", Reason: "must be power of 2"}
	}
	return nil
}

// Allocate copies img into the atlas.
func (a *Atlas) Allocate(img *image.RGBA) (Sprite, error) {
	return a.AllocateWithPadding(img, 0)
}

// AllocateWithPadding copies img into the atlas surrounded by padding
// transparent pixels on every side. The returned sprite covers img only.
// Negative padding is treated as zero.
func (a *Atlas) AllocateWithPadding(img *image.RGBA, padding int) (Sprite, error) {
	padding = max(padding, 0)
	size := img.Bounds().Size()
	w, h := size.X+2*padding, size.Y+2*padding

	x, y, ok := a.shelves.allocate(w, h)
	if !ok {
		return Sprite{}, &OutOfTextureSpaceError{SizeHint: a.sizeHint(w, h)}
	}

	outer := image.Rect(x, y, x+w, y+h)
	if padding > 0 {
		clearRect(a.tex.pix, outer)
		a.tex.markDirty(outer)
	}
	origin := image.Pt(x+padding, y+padding)
	a.tex.write(origin, img)
	a.sprites++

	return Sprite{
		Texture:    a.tex,
		Coords:     image.Rectangle{Min: origin, Max: origin.Add(size)},
		Generation: a.generation,
	}, nil
}

// sizeHint returns the next power of two whose square holds what is packed
// so far plus a w x h request.
func (a *Atlas) sizeHint(w, h int) int {
	side := a.tex.Size()
	need := a.shelves.occupied() + (w+gutter)*(h+gutter)
	hint := side * 2
	for hint*hint < need || hint < max(w, h)+gutter {
		hint *= 2
	}
	return nextPowerOfTwo(hint)
}

// Clear drops every allocation and zeroes the texture. Sprites issued
// before the call are no longer live.
func (a *Atlas) Clear() {
	a.shelves.reset()
	a.tex.clear()
	a.generation++
	a.sprites = 0
}

// IsLive reports whether s was allocated by a since its last Clear.
func (a *Atlas) IsLive(s Sprite) bool {
	return s.Texture == a.tex && s.Generation == a.generation
}

// Texture returns the backing texture.
func (a *Atlas) Texture() *Texture {
	return a.tex
}

// Generation returns the number of times the atlas has been cleared.
func (a *Atlas) Generation() uint64 {
	return a.generation
}

// Len returns the number of sprites allocated since the last Clear.
func (a *Atlas) Len() int {
	return a.sprites
}

// Utilization returns the fraction of the texture covered by sprites.
func (a *Atlas) Utilization() float64 {
	return a.shelves.utilization()
}

func clearRect(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		clear(img.Pix[i : i+r.Dx()*4])
	}
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}
