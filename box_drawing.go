package glyphcache

import (
	"image"

	ximage "github.com/gogpu/glyphcache/internal/image"
)

// drawBoxDrawing renders a straight box-drawing line through the cell
// center. Light lines are one underline thick, heavy lines two.
func drawBoxDrawing(k BoxDrawingKey, m RenderMetrics) *image.RGBA {
	img := ximage.NewCell(m.CellWidth, m.CellHeight)
	w, h := img.Rect.Dx(), img.Rect.Dy()

	thickness := max(m.UnderlineHeight, 1)
	if k == HeavyHorizontal || k == HeavyVertical {
		thickness *= 2
	}

	switch k {
	case LightHorizontal, HeavyHorizontal:
		top := h/2 - thickness/2
		ximage.FillRect(img, image.Rect(0, top, w, top+thickness), ximage.White)
	case LightVertical, HeavyVertical:
		left := w/2 - thickness/2
		ximage.FillRect(img, image.Rect(left, 0, left+thickness, h), ximage.White)
	}
	return img
}
