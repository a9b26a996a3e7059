package font

import (
	"hash/maphash"
	"image/color"
	"slices"
	"strconv"
	"strings"
)

// Weight is a font weight on the usual 100..900 scale.
type Weight uint16

// Common weights.
const (
	Thin     Weight = 100
	Light    Weight = 300
	Regular  Weight = 400
	Medium   Weight = 500
	SemiBold Weight = 600
	Bold     Weight = 700
	Black    Weight = 900
)

// String returns a string representation of the weight.
func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case Light:
		return "Light"
	case Regular:
		return "Regular"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case Black:
		return "Black"
	default:
		return "Weight(" + strconv.Itoa(int(w)) + ")"
	}
}

// FontAttributes selects one font of a family.
type FontAttributes struct {
	Family string
	Weight Weight
	Italic bool
}

// String returns a string representation of the attributes.
func (a FontAttributes) String() string {
	var sb strings.Builder
	sb.WriteString(a.Family)
	sb.WriteByte(' ')
	sb.WriteString(a.Weight.String())
	if a.Italic {
		sb.WriteString(" Italic")
	}
	return sb.String()
}

// TextStyle is the font selection and color of a run of text. It is the
// expensive part of a glyph cache key: a slice of attributes that cannot be
// compared with ==.
type TextStyle struct {
	// Fonts lists the preferred fonts in order. An empty list selects the
	// configuration's sources in registration order.
	Fonts []FontAttributes

	// Foreground is the text color.
	Foreground color.RGBA
}

// NewTextStyle returns a regular-weight style for the given families.
func NewTextStyle(families ...string) TextStyle {
	s := TextStyle{Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	for _, f := range families {
		s.Fonts = append(s.Fonts, FontAttributes{Family: f, Weight: Regular})
	}
	return s
}

// Bold returns a copy of s with every font switched to bold.
func (s TextStyle) Bold() TextStyle {
	c := s.Clone()
	for i := range c.Fonts {
		c.Fonts[i].Weight = Bold
	}
	return c
}

// Italic returns a copy of s with every font switched to italic.
func (s TextStyle) Italic() TextStyle {
	c := s.Clone()
	for i := range c.Fonts {
		c.Fonts[i].Italic = true
	}
	return c
}

// Clone returns a deep copy of s.
func (s *TextStyle) Clone() TextStyle {
	return TextStyle{
		Fonts:      slices.Clone(s.Fonts),
		Foreground: s.Foreground,
	}
}

// EqualTo reports whether s and o hold the same field values.
func (s *TextStyle) EqualTo(o *TextStyle) bool {
	return s.Foreground == o.Foreground && slices.Equal(s.Fonts, o.Fonts)
}

// HashInto writes the field values of s into h. Equal styles write equal
// byte sequences.
func (s *TextStyle) HashInto(h *maphash.Hash) {
	for _, f := range s.Fonts {
		h.WriteString(f.Family)
		h.WriteByte(0)
		h.WriteByte(byte(f.Weight >> 8))
		h.WriteByte(byte(f.Weight))
		if f.Italic {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	}
	h.WriteByte(0xff)
	h.WriteByte(s.Foreground.R)
	h.WriteByte(s.Foreground.G)
	h.WriteByte(s.Foreground.B)
	h.WriteByte(s.Foreground.A)
}

// fontKey identifies the font selection of a style, ignoring its color.
func (s *TextStyle) fontKey() string {
	var sb strings.Builder
	for _, f := range s.Fonts {
		sb.WriteString(strings.ToLower(f.Family))
		sb.WriteByte(0)
		sb.WriteString(strconv.Itoa(int(f.Weight)))
		if f.Italic {
			sb.WriteByte('i')
		}
		sb.WriteByte(0)
	}
	return sb.String()
}
