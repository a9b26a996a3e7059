package glyphcache

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	ximage "github.com/gogpu/glyphcache/internal/image"
)

// spanOf rounds a fractional pixel length up, never below one pixel.
func spanOf(f float64) int {
	return max(int(math.Ceil(f)), 1)
}

// drawBlock renders a block element at cell size. Partial eighths are
// rounded up so every eighth covers at least one row or column.
func drawBlock(k BlockKey, m RenderMetrics) *image.RGBA {
	img := ximage.NewCell(m.CellWidth, m.CellHeight)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	yEighth := float64(h) / 8
	xEighth := float64(w) / 8

	switch k.kind {
	case blockUpper:
		for _, y := range eighths(k.n, yEighth) {
			ximage.HLine(img, y, ximage.White)
		}
	case blockLower:
		for _, y := range eighths(k.n, yEighth) {
			ximage.HLine(img, h-1-y, ximage.White)
		}
	case blockLeft:
		for _, x := range eighths(k.n, xEighth) {
			ximage.VLine(img, x, ximage.White)
		}
	case blockRight:
		for _, x := range eighths(k.n, xEighth) {
			ximage.VLine(img, w-1-x, ximage.White)
		}
	case blockFull:
		ximage.FillRect(img, img.Rect, shade(BlockAlpha(k.n)))
	case blockQuadrants:
		q := Quadrant(k.n)
		midX, midY := spanOf(float64(w)/2), spanOf(float64(h)/2)
		if q.Has(QuadrantUpperLeft) {
			ximage.FillRect(img, image.Rect(0, 0, midX, midY), ximage.White)
		}
		if q.Has(QuadrantUpperRight) {
			ximage.FillRect(img, image.Rect(midX, 0, w, midY), ximage.White)
		}
		if q.Has(QuadrantLowerLeft) {
			ximage.FillRect(img, image.Rect(0, midY, midX, h), ximage.White)
		}
		if q.Has(QuadrantLowerRight) {
			ximage.FillRect(img, image.Rect(midX, midY, w, h), ximage.White)
		}
	}
	return img
}

// eighths returns the offsets, from the filled edge, covered by the first n
// eighths of a span whose eighth is size pixels long.
func eighths(n uint8, size float64) []int {
	step := spanOf(size)
	offsets := make([]int, 0, int(n)*step)
	for i := range int(n) {
		start := int(math.Floor(float64(i) * size))
		for a := range step {
			offsets = append(offsets, start+a)
		}
	}
	return offsets
}

// shade returns the fill of a shaded block: the linear opacity converted to
// sRGB for the color channels, with alpha carrying the opacity itself.
func shade(a BlockAlpha) color.RGBA {
	v := a.value()
	r, g, b := colorful.LinearRgb(v, v, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(math.Round(v * 0xff))}
}
