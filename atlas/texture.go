package atlas

import (
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture is the CPU-side backing store of an atlas.
type Texture struct {
	label string
	pix   *image.RGBA
	dirty image.Rectangle
}

func newTexture(label string, size int) *Texture {
	return &Texture{
		label: label,
		pix:   image.NewRGBA(image.Rect(0, 0, size, size)),
	}
}

// Size returns the side length in pixels.
func (t *Texture) Size() int {
	return t.pix.Rect.Dx()
}

// Image returns the pixels. Callers must treat them as read-only.
func (t *Texture) Image() *image.RGBA {
	return t.pix
}

// DirtyRect returns the region written since the last MarkClean.
func (t *Texture) DirtyRect() image.Rectangle {
	return t.dirty
}

// MarkClean records that the dirty region has been uploaded.
func (t *Texture) MarkClean() {
	t.dirty = image.Rectangle{}
}

// Descriptor returns the descriptor of the GPU texture mirroring t:
// a single-level 2D RGBA8 texture that is sampled by shaders and filled
// through buffer copies.
func (t *Texture) Descriptor() hal.TextureDescriptor {
	size := uint32(t.Size())
	return hal.TextureDescriptor{
		Label: t.label,
		Size: hal.Extent3D{
			Width:              size,
			Height:             size,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// write copies src into t at origin and grows the dirty region.
func (t *Texture) write(origin image.Point, src *image.RGBA) {
	b := src.Bounds()
	r := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}.Intersect(t.pix.Rect)
	if r.Empty() {
		return
	}
	rowBytes := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		do := t.pix.PixOffset(r.Min.X, r.Min.Y+y)
		copy(t.pix.Pix[do:do+rowBytes], src.Pix[so:so+rowBytes])
	}
	t.markDirty(r)
}

func (t *Texture) markDirty(r image.Rectangle) {
	t.dirty = t.dirty.Union(r)
}

func (t *Texture) clear() {
	clear(t.pix.Pix)
	t.markDirty(t.pix.Rect)
}
