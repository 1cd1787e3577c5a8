package renderer

// RenderStats summarizes how hard the integrator worked on a frame or tile.
type RenderStats struct {
	TotalPixels  int     // pixels rendered
	HitPixels    int     // pixels whose primary ray found a surface
	TotalSteps   int     // march iterations consumed across all primary rays
	MaxStepsUsed int     // most iterations any single primary ray needed
	AverageSteps float64 // mean march iterations per pixel
}

// addPixel records one primary-ray outcome.
func (rs *RenderStats) addPixel(steps int, hit bool) {
	rs.TotalPixels++
	rs.TotalSteps += steps
	if steps > rs.MaxStepsUsed {
		rs.MaxStepsUsed = steps
	}
	if hit {
		rs.HitPixels++
	}
}

// merge folds another tile's statistics into rs.
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.TotalSteps += other.TotalSteps
	if other.MaxStepsUsed > rs.MaxStepsUsed {
		rs.MaxStepsUsed = other.MaxStepsUsed
	}
}

// finalize computes the derived averages once all tiles are merged.
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
}
