package renderer

// RenderStats contains statistics about a completed frame
type RenderStats struct {
	TotalPixels       int // Number of pixels rendered
	TotalSamples      int // Number of primary rays traced
	DegenerateSamples int // Samples whose shading produced NaN/Inf and were clamped
	Tiles             int // Number of tiles the frame was partitioned into
	Workers           int // Number of parallel workers used
}

// merge accumulates per-tile statistics into the frame totals
func (rs *RenderStats) merge(other tileStats) {
	rs.TotalSamples += other.samples
	rs.DegenerateSamples += other.degenerate
}

// tileStats is the per-tile portion of RenderStats
type tileStats struct {
	samples    int
	degenerate int
}
