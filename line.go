package glyphcache

import (
	"image"
	"math"

	"github.com/gogpu/glyphcache/atlas"
	ximage "github.com/gogpu/glyphcache/internal/image"
)

// Underline is the style of an underline decoration.
type Underline uint8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// String returns a string representation of the underline style.
func (u Underline) String() string {
	switch u {
	case UnderlineNone:
		return "None"
	case UnderlineSingle:
		return "Single"
	case UnderlineDouble:
		return "Double"
	case UnderlineCurly:
		return "Curly"
	case UnderlineDotted:
		return "Dotted"
	case UnderlineDashed:
		return "Dashed"
	default:
		return "Unknown"
	}
}

// LineKey identifies a combination of line decorations.
type LineKey struct {
	StrikeThrough bool
	Underline     Underline
	Overline      bool
}

// EffectiveUnderline returns the underline drawn for a cell. Cells of a
// highlighted hyperlink get a stronger underline than they asked for:
// none becomes single, single becomes double, anything else single.
func EffectiveUnderline(highlightedHyperlink bool, u Underline) Underline {
	if !highlightedHyperlink {
		return u
	}
	switch u {
	case UnderlineNone:
		return UnderlineSingle
	case UnderlineSingle:
		return UnderlineDouble
	default:
		return UnderlineSingle
	}
}

// ResolveLineSprite returns the cell-sized sprite holding the requested
// decorations, drawing it on first use.
func (c *GlyphCache) ResolveLineSprite(highlightedHyperlink, strikeThrough bool, underline Underline, overline bool) (atlas.Sprite, error) {
	key := LineKey{
		StrikeThrough: strikeThrough,
		Underline:     EffectiveUnderline(highlightedHyperlink, underline),
		Overline:      overline,
	}
	if sprite, ok := c.lines[key]; ok {
		return sprite, nil
	}

	sprite, err := c.alloc.Allocate(drawLines(key, c.metrics))
	if err != nil {
		return atlas.Sprite{}, err
	}
	c.lines[key] = sprite
	return sprite, nil
}

// drawLines renders overline, underline and strike-through, in that order,
// into a transparent cell.
func drawLines(k LineKey, m RenderMetrics) *image.RGBA {
	img := ximage.NewCell(m.CellWidth, m.CellHeight)
	thickness := max(m.UnderlineHeight, 1)

	stripe := func(top int) {
		for row := range thickness {
			ximage.HLine(img, top+row, ximage.White)
		}
	}

	if k.Overline {
		stripe(0)
	}

	switch k.Underline {
	case UnderlineSingle:
		stripe(m.DescenderRow)
	case UnderlineDouble:
		stripe(min(m.DescenderRow, m.DescenderPlusTwo-2*thickness))
		stripe(m.DescenderPlusTwo)
	case UnderlineCurly:
		drawCurly(img, m, thickness)
	case UnderlineDotted:
		drawBroken(img, m, thickness, img.Rect.Dx()/4)
	case UnderlineDashed:
		drawBroken(img, m, thickness, img.Rect.Dx()/3+1)
	}

	if k.StrikeThrough {
		stripe(m.StrikeRow)
	}
	return img
}

// drawBroken draws alternating runs of segment pixels along the underline
// rows, starting with a filled run.
func drawBroken(img *image.RGBA, m RenderMetrics, thickness, segment int) {
	segment = max(segment, 1)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for row := range thickness {
		y := m.DescenderRow + row
		if y >= h {
			break
		}
		on := true
		count := segment
		for x := range w {
			if on {
				img.SetRGBA(x, y, ximage.White)
			} else {
				img.SetRGBA(x, y, ximage.Transparent)
			}
			count--
			if count == 0 {
				on = !on
				count = segment
			}
		}
	}
}

// drawCurly draws one period of a cosine wave spanning the rows from the
// underline row to the last row of the cell, its amplitude half that span.
// Each column splits its intensity between the two rows around the exact
// curve position; overlapping contributions add up and saturate.
func drawCurly(img *image.RGBA, m RenderMetrics, thickness int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	waveHeight := h - 1 - m.DescenderRow
	amplitude := max(float64(waveHeight)/2, 0.5)
	center := float64(m.DescenderRow) + amplitude
	xFactor := 2 * math.Pi / float64(w)

	for x := range w {
		pos := center + amplitude*math.Cos(float64(x)*xFactor)
		v1 := math.Floor(pos)
		v2 := math.Ceil(pos)
		value := uint8(0xff * (pos - v1))
		for row := range thickness {
			ximage.AddCoverage(img, x, int(v1)+row, 0xff-value)
			ximage.AddCoverage(img, x, int(v2)+row, value)
		}
	}
}
