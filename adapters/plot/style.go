package plot

import (
	"gonum.org/v1/plot/vg"
)

// StyleConfig is the rendering configuration handed to the renderer
// explicitly, instead of a theme set once as process-global state.
type StyleConfig struct {
	Width         vg.Length
	Height        vg.Length
	HistogramBins int
	BarWidth      vg.Length
}

// DefaultStyle renders 10x6 inch figures with 20 histogram bins.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Width:         10 * vg.Inch,
		Height:        6 * vg.Inch,
		HistogramBins: 20,
		BarWidth:      20,
	}
}
