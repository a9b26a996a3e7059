package image

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ScaleBy resamples src by factor using Catmull-Rom filtering. The
// destination is round(w*factor) x round(h*factor), never smaller than 1x1.
// A factor of exactly 1 returns src unchanged.
func ScaleBy(src *image.RGBA, factor float64) *image.RGBA {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	w := max(int(math.Round(float64(b.Dx())*factor)), 1)
	h := max(int(math.Round(float64(b.Dy())*factor)), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// ToRGBA converts any image to a zero-origin RGBA buffer.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
