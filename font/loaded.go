package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// loadedFont is a parsed source. The sfnt.Buffer makes it unsafe for
// concurrent use.
type loadedFont struct {
	src Source
	sf  *sfnt.Font
	buf sfnt.Buffer

	shaping *gotext.Font // parsed on first use by a Shaper
}

func loadFont(src Source) (*loadedFont, error) {
	if len(src.Data) == 0 {
		return nil, &ParseError{Family: src.Family, Err: ErrEmptyFontData}
	}
	f, err := sfnt.Parse(src.Data)
	if err != nil {
		return nil, &ParseError{Family: src.Family, Err: err}
	}
	return &loadedFont{src: src, sf: f}, nil
}

// shapingFont returns the go-text view of the same font data.
func (lf *loadedFont) shapingFont() (*gotext.Font, error) {
	if lf.shaping != nil {
		return lf.shaping, nil
	}
	face, err := gotext.ParseTTF(bytes.NewReader(lf.src.Data))
	if err != nil {
		return nil, &ParseError{Family: lf.src.Family, Err: err}
	}
	lf.shaping = face.Font
	return lf.shaping, nil
}

// hasRune reports whether the font maps r to a real glyph.
func (lf *loadedFont) hasRune(r rune) bool {
	gi, err := lf.sf.GlyphIndex(&lf.buf, r)
	return err == nil && gi != 0
}

func (lf *loadedFont) metrics(size float64) (Metrics, error) {
	ppem := toFixed(size)
	m, err := lf.sf.Metrics(&lf.buf, ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("font: metrics of %s: %w", lf.src.Family, err)
	}

	var advance fixed.Int26_6
	for _, r := range "0M" {
		gi, err := lf.sf.GlyphIndex(&lf.buf, r)
		if err != nil || gi == 0 {
			continue
		}
		advance, err = lf.sf.GlyphAdvance(&lf.buf, gi, ppem, xfont.HintingNone)
		if err == nil {
			break
		}
	}
	if advance == 0 {
		advance = ppem / 2
	}

	out := Metrics{
		PixelSize:  size,
		CellWidth:  fromFixed(advance),
		CellHeight: fromFixed(m.Ascent + m.Descent),
		Ascent:     fromFixed(m.Ascent),
		Descender:  -fromFixed(m.Descent),
	}

	scale := size / float64(lf.sf.UnitsPerEm())
	if post := lf.sf.PostTable(); post != nil && post.UnderlineThickness > 0 {
		out.UnderlineThickness = float64(post.UnderlineThickness) * scale
		out.UnderlinePosition = float64(post.UnderlinePosition) * scale
	} else {
		out.UnderlineThickness = size / 14
		out.UnderlinePosition = out.Descender / 2
	}
	return out, nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
