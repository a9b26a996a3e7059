package glyphcache

import (
	"image"
	"testing"
)

func TestCustomGlyphFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want CustomGlyphKey
	}{
		{'─', BoxDrawing(LightHorizontal)},
		{'┃', BoxDrawing(HeavyVertical)},
		{'▀', Block(Upper(4))},
		{'▁', Block(Lower(1))},
		{'▇', Block(Lower(7))},
		{'█', Block(Full(AlphaFull))},
		{'▉', Block(Left(7))},
		{'▏', Block(Left(1))},
		{'▐', Block(Right(4))},
		{'░', Block(Full(AlphaLight))},
		{'▒', Block(Full(AlphaMedium))},
		{'▓', Block(Full(AlphaDark))},
		{'▔', Block(Upper(1))},
		{'▕', Block(Right(1))},
		{'▖', Block(Quadrants(QuadrantLowerLeft))},
		{'▚', Block(Quadrants(QuadrantUpperLeft | QuadrantLowerRight))},
		{'▟', Block(Quadrants(QuadrantUpperRight | QuadrantLowerLeft | QuadrantLowerRight))},
	}
	for _, tt := range tests {
		got, ok := CustomGlyphFromRune(tt.r)
		if !ok || got != tt.want {
			t.Errorf("CustomGlyphFromRune(%U) = %+v, %v; want %+v, true", tt.r, got, ok, tt.want)
		}
	}

	for _, r := range []rune{'a', '┄', '╿', '■'} {
		if _, ok := CustomGlyphFromRune(r); ok {
			t.Errorf("CustomGlyphFromRune(%U) ok = true, want false", r)
		}
	}
}

func TestCustomGlyphFromCell(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
	}{
		{"█", true},
		{"│", true},
		{"", false},
		{"x", false},
		{"██", false},
		{"\u2588\u0301", false},
	}
	for _, tt := range tests {
		if _, ok := CustomGlyphFromCell(tt.text); ok != tt.ok {
			t.Errorf("CustomGlyphFromCell(%q) ok = %v, want %v", tt.text, ok, tt.ok)
		}
	}
}

func TestCustomGlyphKeyVariants(t *testing.T) {
	k := BoxDrawing(HeavyHorizontal)
	if box, ok := k.BoxDrawing(); !ok || box != HeavyHorizontal {
		t.Errorf("BoxDrawing() = %v, %v; want HeavyHorizontal, true", box, ok)
	}
	if _, ok := k.Block(); ok {
		t.Error("Block() ok = true for a box-drawing key")
	}
	if BoxDrawing(LightHorizontal) == Block(Upper(0)) {
		t.Error("box-drawing and block keys compare equal")
	}
}

func TestResolveCustomGlyphBlocks(t *testing.T) {
	tests := []struct {
		name string
		key  BlockKey
		// opaque reports whether pixel (x, y) of the 8x16 cell is filled.
		opaque func(x, y int) bool
	}{
		{"upper half", Upper(4), func(_, y int) bool { return y < 8 }},
		{"upper eighth", Upper(1), func(_, y int) bool { return y < 2 }},
		{"lower eighth", Lower(1), func(_, y int) bool { return y >= 14 }},
		{"lower seven eighths", Lower(7), func(_, y int) bool { return y >= 2 }},
		{"left seven eighths", Left(7), func(x, _ int) bool { return x < 7 }},
		{"right half", Right(4), func(x, _ int) bool { return x >= 4 }},
		{"full", Full(AlphaFull), func(_, _ int) bool { return true }},
		{"quadrants", Quadrants(QuadrantUpperLeft | QuadrantLowerRight), func(x, y int) bool {
			return (x < 4) == (y < 8)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCache(t, newFakeHandle())
			sprite, err := c.ResolveCustomGlyph(Block(tt.key))
			if err != nil {
				t.Fatalf("ResolveCustomGlyph() error = %v", err)
			}
			img := spritePixels(sprite)
			if got := img.Rect.Size(); got != (image.Point{X: 8, Y: 16}) {
				t.Fatalf("sprite size = %v, want (8,16)", got)
			}
			for y := range 16 {
				for x := range 8 {
					want := uint8(0)
					if tt.opaque(x, y) {
						want = 0xff
					}
					if got := img.RGBAAt(x, y).A; got != want {
						t.Fatalf("alpha at (%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestResolveCustomGlyphShade(t *testing.T) {
	tests := []struct {
		alpha BlockAlpha
		wantA uint8
	}{
		{AlphaFull, 0xff},
		{AlphaDark, 191},
		{AlphaMedium, 128},
		{AlphaLight, 64},
	}
	for _, tt := range tests {
		c := newTestCache(t, newFakeHandle())
		sprite, err := c.ResolveCustomGlyph(Block(Full(tt.alpha)))
		if err != nil {
			t.Fatalf("ResolveCustomGlyph() error = %v", err)
		}
		px := spritePixels(sprite).RGBAAt(3, 5)
		if px.A != tt.wantA {
			t.Errorf("Full(%d) alpha = %d, want %d", tt.alpha, px.A, tt.wantA)
		}
		if px.R != px.G || px.G != px.B {
			t.Errorf("Full(%d) pixel = %v, want gray", tt.alpha, px)
		}
		// sRGB encoding lifts the gray above the linear value.
		if tt.alpha != AlphaFull && px.R <= px.A {
			t.Errorf("Full(%d) gray = %d, want above %d", tt.alpha, px.R, px.A)
		}
	}
}

func TestResolveCustomGlyphBoxDrawing(t *testing.T) {
	tests := []struct {
		key      BoxDrawingKey
		wantRows []int
		wantCols []int
	}{
		{LightHorizontal, []int{8}, nil},
		{HeavyHorizontal, []int{7, 8}, nil},
		{LightVertical, nil, []int{4}},
		{HeavyVertical, nil, []int{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c := newTestCache(t, newFakeHandle())
			sprite, err := c.ResolveCustomGlyph(BoxDrawing(tt.key))
			if err != nil {
				t.Fatalf("ResolveCustomGlyph() error = %v", err)
			}
			img := spritePixels(sprite)
			filled := 0
			for y := range 16 {
				for x := range 8 {
					if img.RGBAAt(x, y).A == 0xff {
						filled++
					}
				}
			}
			for _, y := range tt.wantRows {
				for x := range 8 {
					if img.RGBAAt(x, y).A != 0xff {
						t.Errorf("pixel (%d,%d) not filled", x, y)
					}
				}
			}
			for _, x := range tt.wantCols {
				for y := range 16 {
					if img.RGBAAt(x, y).A != 0xff {
						t.Errorf("pixel (%d,%d) not filled", x, y)
					}
				}
			}
			want := len(tt.wantRows)*8 + len(tt.wantCols)*16
			if filled != want {
				t.Errorf("filled pixels = %d, want %d", filled, want)
			}
		})
	}
}

func TestResolveCustomGlyphCached(t *testing.T) {
	c := newTestCache(t, newFakeHandle())
	key := Block(Lower(3))
	first, err := c.ResolveCustomGlyph(key)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.ResolveCustomGlyph(key)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("second ResolveCustomGlyph() = %v, want %v", second, first)
	}
	if got := c.Stats().CustomGlyphs; got != 1 {
		t.Errorf("Stats().CustomGlyphs = %d, want 1", got)
	}

	c.Clear()
	if got := c.Stats().CustomGlyphs; got != 0 {
		t.Errorf("Stats().CustomGlyphs after Clear = %d, want 0", got)
	}
}
