package glyphcache

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/gogpu/glyphcache/atlas"
	"github.com/gogpu/glyphcache/font"
	ximage "github.com/gogpu/glyphcache/internal/image"
)

var errUnknownGlyph = errors.New("unknown glyph")

// fakeHandle serves canned glyphs. Index 0 is the primary font; fallback
// metrics are looked up by index.
type fakeHandle struct {
	metrics []font.Metrics
	glyphs  map[uint32]*font.RasterizedGlyph
	rasters int
}

func (h *fakeHandle) Metrics() font.Metrics {
	return h.metrics[0]
}

func (h *fakeHandle) MetricsForIdx(idx int) (font.Metrics, error) {
	if idx < 0 || idx >= len(h.metrics) {
		return font.Metrics{}, font.ErrFontIndex
	}
	return h.metrics[idx], nil
}

func (h *fakeHandle) RasterizeGlyph(glyphPos uint32, idx int) (*font.RasterizedGlyph, error) {
	h.rasters++
	if _, err := h.MetricsForIdx(idx); err != nil {
		return nil, err
	}
	g, ok := h.glyphs[glyphPos]
	if !ok {
		return nil, errUnknownGlyph
	}
	return g, nil
}

type fakeResolver struct {
	handle *fakeHandle
	err    error
}

func (r *fakeResolver) ResolveFont(*font.TextStyle) (font.Handle, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.handle, nil
}

// testFontMetrics is a 10x20 cell.
var testFontMetrics = font.Metrics{
	PixelSize:          16,
	CellWidth:          10,
	CellHeight:         20,
	Ascent:             15,
	Descender:          -5,
	UnderlineThickness: 1,
	UnderlinePosition:  -2,
}

// testRenderMetrics is an 8x16 cell with a one pixel underline.
var testRenderMetrics = RenderMetrics{
	CellWidth:        8,
	CellHeight:       16,
	UnderlineHeight:  1,
	DescenderRow:     13,
	DescenderPlusTwo: 15,
	StrikeRow:        6,
}

func solidGlyph(w, h int, bearingX, bearingY float64) *font.RasterizedGlyph {
	img := ximage.NewCell(w, h)
	ximage.FillRect(img, img.Rect, ximage.White)
	return &font.RasterizedGlyph{
		Width:    w,
		Height:   h,
		BearingX: bearingX,
		BearingY: bearingY,
		Image:    img,
	}
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{
		metrics: []font.Metrics{testFontMetrics},
		glyphs: map[uint32]*font.RasterizedGlyph{
			1: solidGlyph(8, 14, 1, 12),
			2: {}, // space
		},
	}
}

func newTestCache(t *testing.T, h *fakeHandle, opts ...Option) *GlyphCache {
	t.Helper()
	c, err := NewInMemory(256, &fakeResolver{handle: h}, testRenderMetrics, opts...)
	if err != nil {
		t.Fatalf("NewInMemory() error = %v", err)
	}
	return c
}

// spritePixels returns the texture region a sprite covers, rebased to the
// origin.
func spritePixels(s atlas.Sprite) *image.RGBA {
	return ximage.ToRGBA(s.Texture.Image().SubImage(s.Coords))
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// encodeGIF builds an animated GIF whose frames are solid squares of the
// given palette indices, each shown for delay hundredths of a second.
func encodeGIF(t *testing.T, size int, delay int, colors ...uint8) []byte {
	t.Helper()
	palette := color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0, 0xff, 0, 0xff},
		color.RGBA{0, 0, 0xff, 0xff},
	}
	g := &gif.GIF{Config: image.Config{Width: size, Height: size, ColorModel: palette}}
	for _, idx := range colors {
		pm := image.NewPaletted(image.Rect(0, 0, size, size), palette)
		for i := range pm.Pix {
			pm.Pix[i] = idx
		}
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("gif.EncodeAll() error = %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}
