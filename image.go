package glyphcache

import (
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/glyphcache/atlas"
	ximage "github.com/gogpu/glyphcache/internal/image"
)

// ImageData is the encoded source of an image with a stable identity. The
// identity, not the bytes, keys the image caches.
type ImageData struct {
	id   uuid.UUID
	data []byte
}

// NewImageData wraps data under a fresh random identity.
func NewImageData(data []byte) *ImageData {
	return &ImageData{id: uuid.New(), data: data}
}

// NewImageDataWithID wraps data under a caller-chosen identity.
func NewImageDataWithID(id uuid.UUID, data []byte) *ImageData {
	return &ImageData{id: id, data: data}
}

// ID returns the identity of the image.
func (d *ImageData) ID() uuid.UUID {
	return d.id
}

// Data returns the encoded bytes.
func (d *ImageData) Data() []byte {
	return d.data
}

// ImageFrame is one decoded frame.
type ImageFrame struct {
	Duration time.Duration
	Image    *image.RGBA
}

// DecodedImage is an image's frame list plus its animation state.
type DecodedImage struct {
	frameStart   time.Time
	currentFrame int
	frames       []ImageFrame
}

// CurrentFrame returns the index of the frame being shown.
func (d *DecodedImage) CurrentFrame() int {
	return d.currentFrame
}

// FrameCount returns the number of frames, at least one.
func (d *DecodedImage) FrameCount() int {
	return len(d.frames)
}

// FrameStart returns when the current frame became active.
func (d *DecodedImage) FrameStart() time.Time {
	return d.frameStart
}

// Frame returns frame i.
func (d *DecodedImage) Frame(i int) ImageFrame {
	return d.frames[i]
}

// due returns when the current frame expires.
func (d *DecodedImage) due() time.Time {
	return d.frameStart.Add(d.frames[d.currentFrame].Duration)
}

// advance moves to the next frame when the current one has expired.
func (d *DecodedImage) advance(now time.Time) {
	if now.Before(d.due()) {
		return
	}
	d.currentFrame = (d.currentFrame + 1) % len(d.frames)
	d.frameStart = now
}

type cachedImageKind uint8

const (
	singleFrame cachedImageKind = iota
	animation
)

// cachedImage is what the image cache remembers about an identity. Single
// frame images keep nothing but their kind; their pixels live in the atlas.
type cachedImage struct {
	kind    cachedImageKind
	decoded *DecodedImage
}

type frameKey struct {
	id    uuid.UUID
	frame int
}

// ResolveImage returns the sprite showing img's current frame. For
// animated images it also returns when that frame expires; callers must
// call again no later than then to keep the animation moving. A zero
// instant means the image does not animate.
//
// padding adds that many transparent pixels around the sprite in the atlas.
// Undecodable data yields a 1x1 transparent placeholder rather than an
// error; only atlas failures are returned.
func (c *GlyphCache) ResolveImage(img *ImageData, padding int) (atlas.Sprite, time.Time, error) {
	if img == nil {
		return atlas.Sprite{}, time.Time{}, ErrNilImage
	}
	id := img.ID()

	if cached, ok := c.images.Get(id); ok {
		switch cached.kind {
		case singleFrame:
			if sprite, ok := c.frames[frameKey{id, 0}]; ok {
				return sprite, time.Time{}, nil
			}
			// Cleared since it was cached; decode again below.
		case animation:
			d := cached.decoded
			d.advance(c.opts.now())
			sprite, err := c.frameSprite(id, d.currentFrame, d.frames[d.currentFrame].Image, padding)
			if err != nil {
				return atlas.Sprite{}, time.Time{}, err
			}
			return sprite, d.due(), nil
		}
	}

	d := c.decode(img)
	sprite, err := c.alloc.AllocateWithPadding(d.frames[0].Image, padding)
	if err != nil {
		return atlas.Sprite{}, time.Time{}, err
	}
	c.frames[frameKey{id, 0}] = sprite

	if len(d.frames) > 1 {
		c.images.Put(id, &cachedImage{kind: animation, decoded: d})
		return sprite, d.due(), nil
	}
	c.images.Put(id, &cachedImage{kind: singleFrame})
	return sprite, time.Time{}, nil
}

// ImageState returns the animation state of a cached animated image
// without touching its recency.
func (c *GlyphCache) ImageState(id uuid.UUID) (*DecodedImage, bool) {
	cached, ok := c.images.Peek(id)
	if !ok || cached.kind != animation {
		return nil, false
	}
	return cached.decoded, true
}

func (c *GlyphCache) frameSprite(id uuid.UUID, frame int, pixels *image.RGBA, padding int) (atlas.Sprite, error) {
	key := frameKey{id, frame}
	if sprite, ok := c.frames[key]; ok {
		return sprite, nil
	}
	sprite, err := c.alloc.AllocateWithPadding(pixels, padding)
	if err != nil {
		return atlas.Sprite{}, err
	}
	c.frames[key] = sprite
	return sprite, nil
}

// decode turns img into frames, falling back to a single frame for broken
// animations and to the placeholder for anything undecodable.
func (c *GlyphCache) decode(img *ImageData) *DecodedImage {
	data := img.Data()
	frames, kind, err := ximage.DecodeFrames(data)
	if err != nil && kind != ximage.KindStill {
		Logger().Warn("glyphcache: animated image decode failed, using first frame",
			slog.String("id", img.ID().String()),
			slog.String("format", kind.String()),
			slog.String("err", err.Error()))
		frames, err = ximage.DecodeStill(data)
	}
	if err != nil || len(frames) == 0 {
		Logger().Debug("glyphcache: image decode failed, using placeholder",
			slog.String("id", img.ID().String()),
			slog.Any("err", err))
		frames = []ximage.Frame{{Image: ximage.Placeholder()}}
	}

	d := &DecodedImage{
		frameStart: c.opts.now(),
		frames:     make([]ImageFrame, len(frames)),
	}
	for i, f := range frames {
		d.frames[i] = ImageFrame{Duration: f.Delay, Image: f.Image}
	}
	return d
}
