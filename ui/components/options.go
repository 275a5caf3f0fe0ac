package components

const (
	DefaultHeadline    = "My Trading Algo"
	DefaultSaturation  = 5000.0
	DefaultCellPadding = 60
)

// Options are the presentation constants of the panel.
type Options struct {
	Headline string
	// Saturation is the quantity drawn as a full width bar.
	Saturation float64
	// CellPadding is the horizontal padding of a quantity bar, in pixels.
	CellPadding int
}

func DefaultOptions() Options {
	return Options{
		Headline:    DefaultHeadline,
		Saturation:  DefaultSaturation,
		CellPadding: DefaultCellPadding,
	}
}
