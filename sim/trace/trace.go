// Package trace holds the sampled trajectory records produced by the
// simulator. It stores pure data types plus summary statistics and has no
// dependency on the engine packages.
package trace

// Sample is one pose along the simulated trajectory, recorded at the
// sub-sampling resolution of a move segment. CumulativeCM is the total
// path length traversed up to this sample (turns contribute zero).
type Sample struct {
	X            float64
	Y            float64
	HeadingDeg   float64
	CumulativeCM float64
}

// Path is the ordered sequence of samples for one run. Ordering is
// significant: it represents spatial progression along the trajectory.
type Path []Sample

// Final returns the last sample of the path, or the zero Sample when the
// path is empty. The simulator always emits at least the start-pose
// sample, so engine callers see a non-empty path.
func (p Path) Final() Sample {
	if len(p) == 0 {
		return Sample{}
	}
	return p[len(p)-1]
}

// LengthCM returns the cumulative path length at the final sample.
func (p Path) LengthCM() float64 {
	return p.Final().CumulativeCM
}
