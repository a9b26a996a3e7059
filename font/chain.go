package font

import "fmt"

// chain is the Handle returned by Configuration.
type chain struct {
	size    float64
	fonts   []*loadedFont
	metrics []*Metrics
}

// Len returns the number of fonts in the chain.
func (c *chain) Len() int {
	return len(c.fonts)
}

func (c *chain) Metrics() Metrics {
	m, err := c.MetricsForIdx(0)
	if err != nil {
		// The primary font parsed, so only a corrupt table lands here.
		return Metrics{PixelSize: c.size, CellWidth: c.size / 2, CellHeight: c.size, UnderlineThickness: 1}
	}
	return m
}

func (c *chain) MetricsForIdx(idx int) (Metrics, error) {
	if idx < 0 || idx >= len(c.fonts) {
		return Metrics{}, fmt.Errorf("%w: %d of %d", ErrFontIndex, idx, len(c.fonts))
	}
	if m := c.metrics[idx]; m != nil {
		return *m, nil
	}
	m, err := c.fonts[idx].metrics(c.size)
	if err != nil {
		return Metrics{}, err
	}
	c.metrics[idx] = &m
	return m, nil
}

func (c *chain) RasterizeGlyph(glyphPos uint32, idx int) (*RasterizedGlyph, error) {
	if idx < 0 || idx >= len(c.fonts) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, idx, len(c.fonts))
	}
	return c.fonts[idx].rasterize(glyphPos, c.size)
}
