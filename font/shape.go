package font

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Shaper turns text into positioned glyphs using HarfBuzz shaping from
// go-text/typesetting.
//
// Each cluster is assigned the first font of the style's chain that covers
// its leading rune, so fallback fonts fill in what the primary lacks.
// A Shaper is not safe for concurrent use.
type Shaper struct {
	cfg *Configuration
	hb  shaping.HarfbuzzShaper
}

// NewShaper returns a shaper over the fonts of cfg.
func NewShaper(cfg *Configuration) *Shaper {
	return &Shaper{cfg: cfg}
}

type fontRun struct {
	fontIdx    int
	start, end int // rune indices
}

// Shape returns the glyphs of text rendered in style. Glyph positions are
// relative to the pen; NumCells comes from SplitCells.
func (s *Shaper) Shape(text string, style *TextStyle) ([]GlyphInfo, error) {
	if text == "" {
		return nil, nil
	}
	ch, err := s.cfg.resolve(style)
	if err != nil {
		return nil, err
	}

	runes := make([]rune, 0, utf8.RuneCountInString(text))
	byteOffsets := make([]int, 0, cap(runes))
	for i, r := range text {
		runes = append(runes, r)
		byteOffsets = append(byteOffsets, i)
	}

	// Per rune: the cell width of its cluster.
	cellsOf := make([]int, len(runes))
	var runs []fontRun
	ri := 0
	for _, cell := range SplitCells(text) {
		n := utf8.RuneCountInString(cell.Text)
		idx := ch.fontFor(runes[ri])
		for k := ri; k < ri+n; k++ {
			cellsOf[k] = cell.Width
		}
		if last := len(runs) - 1; last >= 0 && runs[last].fontIdx == idx {
			runs[last].end = ri + n
		} else {
			runs = append(runs, fontRun{fontIdx: idx, start: ri, end: ri + n})
		}
		ri += n
	}

	var out []GlyphInfo
	for _, run := range runs {
		f, err := ch.fonts[run.fontIdx].shapingFont()
		if err != nil {
			return nil, err
		}
		input := shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: di.DirectionLTR,
			Face:      gotext.NewFace(f),
			Size:      toFixed(ch.size),
			Script:    language.LookupScript(runes[run.start]),
			Language:  language.NewLanguage("en"),
		}
		for _, g := range s.hb.Shape(input).Glyphs {
			ti := min(max(g.TextIndex(), 0), len(runes)-1)
			out = append(out, GlyphInfo{
				FontIdx:  run.fontIdx,
				GlyphPos: uint32(g.GlyphID),
				Cluster:  byteOffsets[ti],
				NumCells: cellsOf[ti],
				XOffset:  fromFixed(g.XOffset),
				YOffset:  fromFixed(g.YOffset),
			})
		}
	}
	return out, nil
}

// fontFor returns the index of the first font covering r, or 0.
func (c *chain) fontFor(r rune) int {
	for i, lf := range c.fonts {
		if lf.hasRune(r) {
			return i
		}
	}
	return 0
}
