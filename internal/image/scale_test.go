package image

import (
	"image"
	"testing"
)

func TestScaleBy(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		factor       float64
		wantW, wantH int
	}{
		{"half", 10, 20, 0.5, 5, 10},
		{"double", 3, 4, 2, 6, 8},
		{"rounds", 10, 10, 0.25, 3, 3},
		{"never empty", 2, 2, 0.01, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewCell(tt.w, tt.h)
			FillRect(src, src.Bounds(), White)
			got := ScaleBy(src, tt.factor)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("size = %v, want %dx%d", got.Bounds().Size(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScaleBy_IdentityReturnsSource(t *testing.T) {
	src := NewCell(4, 4)
	if ScaleBy(src, 1) != src {
		t.Error("ScaleBy(1) should return the source buffer")
	}
}

func TestScaleBy_PreservesSolidFill(t *testing.T) {
	src := NewCell(8, 8)
	FillRect(src, src.Bounds(), White)
	got := ScaleBy(src, 0.5)
	if c := got.RGBAAt(2, 2); c.A < 0xf0 || c.R < 0xf0 {
		t.Errorf("center pixel = %v, want near %v", c, White)
	}
}

func TestToRGBA_RebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 9))
	src.SetRGBA(5, 5, White)

	got := ToRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 3, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,4)", got.Bounds())
	}
	if got.RGBAAt(0, 0) != White {
		t.Error("top-left pixel lost while rebasing")
	}
}
