package font

// Metrics holds font metrics at the configured pixel size.
type Metrics struct {
	// PixelSize is the em size in pixels.
	PixelSize float64

	// CellWidth is the advance of a digit, the width of one terminal cell.
	CellWidth float64

	// CellHeight is ascent plus descent.
	CellHeight float64

	// Ascent is the distance from the baseline to the top of the cell (positive).
	Ascent float64

	// Descender is the distance from the baseline to the bottom of the cell.
	// It is negative: the bottom lies below the baseline.
	Descender float64

	// UnderlineThickness is the recommended underline stroke in pixels.
	UnderlineThickness float64

	// UnderlinePosition is the top of the underline relative to the
	// baseline; negative values lie below it.
	UnderlinePosition float64
}
