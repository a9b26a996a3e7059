package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"time"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	xdraw "golang.org/x/image/draw"
)

// Decoding errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrNoFrames is returned when a container decodes to zero frames.
	ErrNoFrames = errors.New("image: no frames")
)

// Frame is one decoded frame of a possibly animated image.
type Frame struct {
	// Delay is how long the frame stays on screen.
	Delay time.Duration
	// Image is the fully composited frame.
	Image *image.RGBA
}

// Kind is the container family detected from the leading bytes.
type Kind uint8

const (
	// KindStill covers every format decoded as a single frame.
	KindStill Kind = iota
	// KindGIF is a GIF87a or GIF89a stream.
	KindGIF
	// KindAPNG is a PNG stream with an acTL chunk ahead of its image data.
	KindAPNG
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindStill:
		return "still"
	case KindGIF:
		return "gif"
	case KindAPNG:
		return "apng"
	default:
		return "unknown"
	}
}

// Sniff reports the container kind of data.
func Sniff(data []byte) Kind {
	switch {
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return KindGIF
	case isAPNG(data):
		return KindAPNG
	default:
		return KindStill
	}
}

// DecodeFrames decodes data as the container kind Sniff reports. It does
// not fall back between formats; callers decide what to do with an
// animated stream that fails to decode.
func DecodeFrames(data []byte) ([]Frame, Kind, error) {
	kind := Sniff(data)
	var (
		frames []Frame
		err    error
	)
	switch kind {
	case KindGIF:
		frames, err = DecodeGIF(data)
	case KindAPNG:
		frames, err = DecodeAPNG(data)
	default:
		frames, err = DecodeStill(data)
	}
	return frames, kind, err
}

// DecodeStill decodes data with whichever registered decoder claims it and
// returns it as a single frame with no delay.
func DecodeStill(data []byte) ([]Frame, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return []Frame{{Image: ToRGBA(img)}}, nil
}

// DecodeGIF decodes every frame of an animated GIF, compositing each onto
// the logical screen according to its disposal method. Delays are the
// stream's 1/100 s values taken as is.
func DecodeGIF(data []byte) ([]Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode GIF: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = image.Rectangle{}
		for _, pm := range g.Image {
			screen = screen.Union(pm.Bounds())
		}
		screen.Min = image.Point{}
	}

	canvas := image.NewRGBA(screen)
	frames := make([]Frame, 0, len(g.Image))
	for i, pm := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var saved []byte
		if disposal == gif.DisposalPrevious {
			saved = bytes.Clone(canvas.Pix)
		}

		xdraw.Draw(canvas, pm.Bounds(), pm, pm.Bounds().Min, xdraw.Over)

		var delay int
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		frames = append(frames, Frame{
			Delay: time.Duration(delay) * 10 * time.Millisecond,
			Image: clone(canvas),
		})

		switch disposal {
		case gif.DisposalBackground:
			FillRect(canvas, pm.Bounds(), Transparent)
		case gif.DisposalPrevious:
			copy(canvas.Pix, saved)
		}
	}
	return frames, nil
}

// Placeholder returns the 1x1 transparent image used in place of content
// that could not be decoded.
func Placeholder() *image.RGBA {
	return NewCell(1, 1)
}

func clone(src *image.RGBA) *image.RGBA {
	return &image.RGBA{
		Pix:    bytes.Clone(src.Pix),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
}
