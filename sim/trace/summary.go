package trace

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics over a sampled path and the per-sample
// clearance series the collision sampler measured along it.
type Summary struct {
	Samples       int
	PathLengthCM  float64
	MinX, MaxX    float64
	MinY, MaxY    float64
	MinClearance  float64 // most negative = deepest penetration
	MeanClearance float64
	HasClearance  bool // false when the scene has no obstacles
}

// Summarize computes aggregate statistics for a path. clearances is the
// per-sample minimum signed distance over all obstacles, in path order; it
// may be nil or empty when the scene has no obstacles. Safe for empty
// paths (returns zero-value fields).
func Summarize(p Path, clearances []float64) Summary {
	s := Summary{Samples: len(p), PathLengthCM: p.LengthCM()}
	if len(p) == 0 {
		return s
	}

	xs := make([]float64, len(p))
	ys := make([]float64, len(p))
	for i, sm := range p {
		xs[i] = sm.X
		ys[i] = sm.Y
	}
	s.MinX, s.MaxX = floats.Min(xs), floats.Max(xs)
	s.MinY, s.MaxY = floats.Min(ys), floats.Max(ys)

	if len(clearances) > 0 {
		s.HasClearance = true
		s.MinClearance = floats.Min(clearances)
		s.MeanClearance = stat.Mean(clearances, nil)
	}
	return s
}
