package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrMalformedAPNG is returned when the animation chunks of a PNG stream are
// inconsistent.
var ErrMalformedAPNG = errors.New("image: malformed APNG")

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// APNG frame control ops.
const (
	apngDisposeNone       = 0
	apngDisposeBackground = 1
	apngDisposePrevious   = 2

	apngBlendSource = 0
	apngBlendOver   = 1
)

type pngChunk struct {
	typ  string
	data []byte
}

type apngFrame struct {
	rect    image.Rectangle
	delay   time.Duration
	dispose byte
	blend   byte
	data    [][]byte // IDAT payloads
}

// readChunks splits a PNG stream into its chunks. CRCs are not verified
// here; the PNG decoder verifies the reassembled streams.
func readChunks(data []byte) ([]pngChunk, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, fmt.Errorf("%w: missing signature", ErrMalformedAPNG)
	}
	data = data[len(pngSignature):]

	var chunks []pngChunk
	for len(data) >= 12 {
		n := binary.BigEndian.Uint32(data[:4])
		if uint64(n)+12 > uint64(len(data)) {
			return nil, fmt.Errorf("%w: truncated chunk", ErrMalformedAPNG)
		}
		c := pngChunk{typ: string(data[4:8]), data: data[8 : 8+n]}
		chunks = append(chunks, c)
		data = data[12+n:]
		if c.typ == "IEND" {
			break
		}
	}
	return chunks, nil
}

func isAPNG(data []byte) bool {
	if !bytes.HasPrefix(data, pngSignature) {
		return false
	}
	data = data[len(pngSignature):]
	for len(data) >= 12 {
		n := binary.BigEndian.Uint32(data[:4])
		switch string(data[4:8]) {
		case "acTL":
			return true
		case "IDAT", "IEND":
			return false
		}
		if uint64(n)+12 > uint64(len(data)) {
			return false
		}
		data = data[12+n:]
	}
	return false
}

// DecodeAPNG decodes every frame of an animated PNG. Each frame's data is
// reassembled into a standalone PNG stream, decoded, then composited onto
// the canvas with the frame's blend and dispose ops. The default image is
// only part of the animation when an fcTL precedes it.
func DecodeAPNG(data []byte) ([]Frame, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 || chunks[0].typ != "IHDR" || len(chunks[0].data) != 13 {
		return nil, fmt.Errorf("%w: missing IHDR", ErrMalformedAPNG)
	}
	ihdr := chunks[0].data
	width := int(binary.BigEndian.Uint32(ihdr[0:4]))
	height := int(binary.BigEndian.Uint32(ihdr[4:8]))

	var (
		shared  []pngChunk // PLTE, tRNS and friends, copied into each frame
		frames  []*apngFrame
		current *apngFrame
		seenDat bool
	)
	for _, c := range chunks[1:] {
		switch c.typ {
		case "acTL", "IEND":
		case "fcTL":
			f, err := parseFrameControl(c.data, width, height)
			if err != nil {
				return nil, err
			}
			frames = append(frames, f)
			current = f
		case "IDAT":
			seenDat = true
			if current != nil {
				current.data = append(current.data, c.data)
			}
		case "fdAT":
			if current == nil || len(c.data) < 4 {
				return nil, fmt.Errorf("%w: fdAT without fcTL", ErrMalformedAPNG)
			}
			current.data = append(current.data, c.data[4:])
		default:
			if !seenDat {
				shared = append(shared, c)
			}
		}
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	out := make([]Frame, 0, len(frames))
	for i, f := range frames {
		if len(f.data) == 0 {
			return nil, fmt.Errorf("%w: frame %d has no data", ErrMalformedAPNG, i)
		}
		img, err := png.Decode(bytes.NewReader(framePNG(ihdr, shared, f)))
		if err != nil {
			return nil, fmt.Errorf("image: decode APNG frame %d: %w", i, err)
		}

		dispose := f.dispose
		if i == 0 && dispose == apngDisposePrevious {
			dispose = apngDisposeBackground
		}
		var saved []byte
		if dispose == apngDisposePrevious {
			saved = bytes.Clone(canvas.Pix)
		}

		op := xdraw.Over
		if f.blend == apngBlendSource {
			op = xdraw.Src
		}
		xdraw.Draw(canvas, f.rect, img, img.Bounds().Min, op)
		out = append(out, Frame{Delay: f.delay, Image: clone(canvas)})

		switch dispose {
		case apngDisposeBackground:
			FillRect(canvas, f.rect, Transparent)
		case apngDisposePrevious:
			copy(canvas.Pix, saved)
		}
	}
	return out, nil
}

func parseFrameControl(b []byte, width, height int) (*apngFrame, error) {
	if len(b) != 26 {
		return nil, fmt.Errorf("%w: fcTL length %d", ErrMalformedAPNG, len(b))
	}
	w := int(binary.BigEndian.Uint32(b[4:8]))
	h := int(binary.BigEndian.Uint32(b[8:12]))
	x := int(binary.BigEndian.Uint32(b[12:16]))
	y := int(binary.BigEndian.Uint32(b[16:20]))
	num := binary.BigEndian.Uint16(b[20:22])
	den := binary.BigEndian.Uint16(b[22:24])

	rect := image.Rect(x, y, x+w, y+h)
	if w == 0 || h == 0 || !rect.In(image.Rect(0, 0, width, height)) {
		return nil, fmt.Errorf("%w: frame region %v outside %dx%d", ErrMalformedAPNG, rect, width, height)
	}
	if den == 0 {
		den = 100
	}
	return &apngFrame{
		rect:    rect,
		delay:   time.Duration(num) * time.Second / time.Duration(den),
		dispose: b[24],
		blend:   b[25],
	}, nil
}

// framePNG builds a standalone PNG stream holding one frame.
func framePNG(ihdr []byte, shared []pngChunk, f *apngFrame) []byte {
	var buf bytes.Buffer
	buf.Write(pngSignature)

	hdr := bytes.Clone(ihdr)
	binary.BigEndian.PutUint32(hdr[0:4], uint32(f.rect.Dx()))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(f.rect.Dy()))
	writeChunk(&buf, "IHDR", hdr)
	for _, c := range shared {
		writeChunk(&buf, c.typ, c.data)
	}
	for _, d := range f.data {
		writeChunk(&buf, "IDAT", d)
	}
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	buf.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	buf.WriteString(typ)
	buf.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	buf.Write(n[:])
}
