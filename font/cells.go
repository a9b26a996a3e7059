package font

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// Cell is one grapheme cluster of a line of text.
type Cell struct {
	// Text is the cluster.
	Text string

	// Offset is the byte offset of Text in the source string.
	Offset int

	// Width is the number of terminal cells the cluster covers, 1 or 2.
	Width int
}

const emojiPresentation = '\uFE0F'

// SplitCells splits text into grapheme clusters and assigns each its
// display width. East Asian wide and fullwidth characters and clusters
// requesting emoji presentation take two cells; everything else takes one.
func SplitCells(text string) []Cell {
	var cells []Cell
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		s := g.Str()
		cells = append(cells, Cell{Text: s, Offset: from, Width: clusterWidth(s, g.Runes())})
	}
	return cells
}

func clusterWidth(s string, runes []rune) int {
	for _, r := range runes[1:] {
		if r == emojiPresentation {
			return 2
		}
	}
	p, _ := width.LookupString(s)
	switch p.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
