package scatter

// Density bounds. Density scales the expected word count per unit of
// canvas area; 1.0 budgets roughly one word per 40 cells.
const (
	MinDensity = 0.1
	MaxDensity = 6.0
)

// ClampDensity bounds a density value to [MinDensity, MaxDensity].
func ClampDensity(d float64) float64 {
	if d < MinDensity {
		return MinDensity
	}
	if d > MaxDensity {
		return MaxDensity
	}
	return d
}

// DensityStep returns the density change for one adjustment of an
// interactive control bar of the given width: the full density range
// divided across the bar's cells.
func DensityStep(barWidth int) float64 {
	if barWidth < 1 {
		barWidth = 1
	}
	return (MaxDensity - MinDensity) / float64(barWidth)
}
