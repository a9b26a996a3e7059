package font

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterize renders one glyph outline to premultiplied white coverage.
func (lf *loadedFont) rasterize(glyphPos uint32, size float64) (*RasterizedGlyph, error) {
	ppem := toFixed(size)
	segs, err := lf.sf.LoadGlyph(&lf.buf, sfnt.GlyphIndex(glyphPos), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrColorGlyph
		}
		return nil, fmt.Errorf("font: load glyph %d of %s: %w", glyphPos, lf.src.Family, err)
	}
	if len(segs) == 0 {
		return &RasterizedGlyph{}, nil
	}

	// Segment coordinates grow downwards from the baseline origin. Shift
	// them into the positive quadrant the vector rasterizer expects.
	bounds := segs.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	offset := fixed.Point26_6{X: -fixed.I(minX), Y: -fixed.I(minY)}
	w := (bounds.Max.X + offset.X).Ceil()
	h := (bounds.Max.Y + offset.Y).Ceil()
	if w <= 0 || h <= 0 {
		return &RasterizedGlyph{}, nil
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := toPoint(seg.Args[0], offset)
			r.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toPoint(seg.Args[0], offset)
			r.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := toPoint(seg.Args[0], offset)
			x, y := toPoint(seg.Args[1], offset)
			r.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := toPoint(seg.Args[0], offset)
			c2x, c2y := toPoint(seg.Args[1], offset)
			x, y := toPoint(seg.Args[2], offset)
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &RasterizedGlyph{
		Width:    w,
		Height:   h,
		BearingX: float64(minX),
		BearingY: float64(-minY),
		Image:    coverageToRGBA(mask),
	}, nil
}

func toPoint(p, offset fixed.Point26_6) (float32, float32) {
	return float32(p.X+offset.X) / 64, float32(p.Y+offset.Y) / 64
}

// coverageToRGBA expands an alpha mask to premultiplied white.
func coverageToRGBA(mask *image.Alpha) *image.RGBA {
	out := image.NewRGBA(mask.Rect)
	for i, a := range mask.Pix {
		j := i * 4
		out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = a, a, a, a
	}
	return out
}
