// Package image provides the pixel-level helpers behind glyph and sprite
// synthesis: cell buffers, line and rectangle fills, additive coverage,
// resampling and frame-list decoding.
//
// All buffers are *image.RGBA with premultiplied alpha and a zero origin.
package image

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Common fill colors.
var (
	Transparent = color.RGBA{}
	White       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewCell returns a transparent buffer of the given size.
// Non-positive dimensions are raised to 1.
func NewCell(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
}

// FillRect overwrites r (clipped to dst) with c.
func FillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// DrawLine draws a one pixel wide line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm. Both endpoints are inclusive; pixels outside dst
// are skipped.
func DrawLine(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		setClipped(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// HLine draws a full-width horizontal line at row y.
func HLine(dst *image.RGBA, y int, c color.RGBA) {
	b := dst.Bounds()
	DrawLine(dst, b.Min.X, y, b.Max.X, y, c)
}

// VLine draws a full-height vertical line at column x.
func VLine(dst *image.RGBA, x int, c color.RGBA) {
	b := dst.Bounds()
	DrawLine(dst, x, b.Min.Y, x, b.Max.Y, c)
}

// AddCoverage adds v to the coverage of the pixel at (x, y), saturating at
// 255, and stores the sum as premultiplied white. Coverage is read from the
// red channel. y is clamped into the buffer; x outside it is ignored.
func AddCoverage(dst *image.RGBA, x, y int, v uint8) {
	b := dst.Bounds()
	if x < b.Min.X || x >= b.Max.X || b.Empty() {
		return
	}
	y = min(max(y, b.Min.Y), b.Max.Y-1)
	i := dst.PixOffset(x, y)
	sum := min(int(dst.Pix[i])+int(v), 0xff)
	p := dst.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = uint8(sum), uint8(sum), uint8(sum), uint8(sum)
}

func setClipped(dst *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) {
		return
	}
	dst.SetRGBA(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
