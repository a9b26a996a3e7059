package font

import (
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
)

// Source is one registered font file.
type Source struct {
	Family string
	Weight Weight
	Italic bool

	// Data is the TTF or OTF file contents.
	Data []byte
}

// DefaultSources returns the four Go Mono faces bundled with x/image.
func DefaultSources() []Source {
	return []Source{
		{Family: "Go Mono", Weight: Regular, Data: gomono.TTF},
		{Family: "Go Mono", Weight: Bold, Data: gomonobold.TTF},
		{Family: "Go Mono", Weight: Regular, Italic: true, Data: gomonoitalic.TTF},
		{Family: "Go Mono", Weight: Bold, Italic: true, Data: gomonobolditalic.TTF},
	}
}

// Configuration resolves text styles against a fixed set of sources at one
// pixel size. It implements Resolver.
//
// Configuration is not safe for concurrent use.
type Configuration struct {
	size    float64
	fonts   []*loadedFont
	handles map[string]*chain
}

// NewConfiguration parses sources for rendering at pixelSize pixels per em.
func NewConfiguration(pixelSize float64, sources ...Source) (*Configuration, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}
	c := &Configuration{
		size:    pixelSize,
		fonts:   make([]*loadedFont, 0, len(sources)),
		handles: make(map[string]*chain),
	}
	for _, src := range sources {
		lf, err := loadFont(src)
		if err != nil {
			return nil, err
		}
		c.fonts = append(c.fonts, lf)
	}
	return c, nil
}

// PixelSize returns the em size in pixels.
func (c *Configuration) PixelSize() float64 {
	return c.size
}

// Len returns the number of registered sources.
func (c *Configuration) Len() int {
	return len(c.fonts)
}

// ResolveFont returns the fallback chain for style. Chains are memoized by
// font selection; the style's color does not matter.
func (c *Configuration) ResolveFont(style *TextStyle) (Handle, error) {
	return c.resolve(style)
}

func (c *Configuration) resolve(style *TextStyle) (*chain, error) {
	if len(c.fonts) == 0 {
		return nil, ErrNoFonts
	}
	key := style.fontKey()
	if h, ok := c.handles[key]; ok {
		return h, nil
	}

	fonts := make([]*loadedFont, 0, len(c.fonts))
	used := make(map[*loadedFont]bool, len(c.fonts))
	for _, attr := range style.Fonts {
		if lf := c.match(attr); lf != nil && !used[lf] {
			fonts = append(fonts, lf)
			used[lf] = true
		}
	}
	for _, lf := range c.fonts {
		if !used[lf] {
			fonts = append(fonts, lf)
		}
	}

	h := &chain{size: c.size, fonts: fonts, metrics: make([]*Metrics, len(fonts))}
	c.handles[key] = h
	return h, nil
}

// match returns the source of attr's family closest to the requested weight
// and slant, or nil when the family is not registered.
func (c *Configuration) match(attr FontAttributes) *loadedFont {
	var (
		best      *loadedFont
		bestScore = -1
	)
	for _, lf := range c.fonts {
		if !strings.EqualFold(lf.src.Family, attr.Family) {
			continue
		}
		score := abs(int(lf.src.Weight) - int(attr.Weight))
		if lf.src.Italic != attr.Italic {
			score += 1000
		}
		if best == nil || score < bestScore {
			best, bestScore = lf, score
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
