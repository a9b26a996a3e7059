package glyphcache

import (
	"image"
	"math"

	"github.com/gogpu/glyphcache/font"
)

// RenderMetrics holds the integer cell geometry the procedural glyphs are
// drawn against. Rows are counted from the top of the cell.
type RenderMetrics struct {
	CellWidth, CellHeight int

	// UnderlineHeight is the stroke thickness of lines and light box
	// drawing.
	UnderlineHeight int

	// DescenderRow is the first row of a single underline.
	DescenderRow int

	// DescenderPlusTwo is the first row of the lower double-underline
	// stroke.
	DescenderPlusTwo int

	// StrikeRow is the first row of the strike-through stroke.
	StrikeRow int
}

// NewRenderMetrics derives render metrics from the base font's metrics.
func NewRenderMetrics(m font.Metrics) RenderMetrics {
	cellWidth := max(int(math.Ceil(m.CellWidth)), 1)
	cellHeight := max(int(math.Ceil(m.CellHeight)), 1)
	underline := max(int(math.Round(m.UnderlineThickness)), 1)

	descender := cellHeight + int(m.Descender-m.UnderlinePosition)
	descender = min(max(descender, 0), max(cellHeight-underline, 0))

	return RenderMetrics{
		CellWidth:        cellWidth,
		CellHeight:       cellHeight,
		UnderlineHeight:  underline,
		DescenderRow:     descender,
		DescenderPlusTwo: min(2*underline+descender, cellHeight-underline),
		StrikeRow:        descender / 2,
	}
}

// Cell returns the cell rectangle anchored at the origin.
func (m RenderMetrics) Cell() image.Rectangle {
	return image.Rect(0, 0, m.CellWidth, m.CellHeight)
}
