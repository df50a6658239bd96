package sim

import (
	"math"

	"github.com/robobench/robobench/sim/geom"
	"github.com/robobench/robobench/sim/scene"
	"github.com/robobench/robobench/sim/trace"
)

// MetricsRecord is the terminal artifact of one evaluation run. It is
// created once, after simulation completes, and never mutated. Field names
// follow the _cm/_deg suffix convention so units are unambiguous in the
// serialized form.
type MetricsRecord struct {
	TotalPathLengthCM float64              `json:"total_path_length_cm" yaml:"total_path_length_cm"`
	ReachedGoal       bool                 `json:"reached_goal" yaml:"reached_goal"`
	CollisionSamples  int                  `json:"collision_samples" yaml:"collision_samples"`
	MinClearanceCM    *float64             `json:"min_clearance_cm" yaml:"min_clearance_cm"`
	FinalPose         scene.Pose           `json:"final_pose" yaml:"final_pose"`
	TurnConvention    scene.TurnConvention `json:"turn_convention" yaml:"turn_convention"`
}

// Score reduces the sampled path and the inflated obstacle set into a
// MetricsRecord. Every (sample, obstacle) pair is tested: a pair with
// negative signed distance counts as one collision sample, so a single
// pose penetrating two obstacles counts twice — multi-obstacle severity is
// deliberately surfaced, not deduplicated. MinClearanceCM is the minimum
// signed distance over the whole cross product, nil when the scene has no
// obstacles. finalPose is the simulator's terminal state.
func Score(path trace.Path, obstacles []InflatedObstacle, sc scene.Scene, finalPose scene.Pose) (MetricsRecord, error) {
	minClear := math.Inf(1)
	collisions := 0
	for _, sample := range path {
		p := geom.Point{X: sample.X, Y: sample.Y}
		for i := range obstacles {
			d, err := obstacles[i].SignedDistance(p)
			if err != nil {
				return MetricsRecord{}, err
			}
			if d < minClear {
				minClear = d
			}
			if d < 0 {
				collisions++
			}
		}
	}

	rec := MetricsRecord{
		TotalPathLengthCM: path.LengthCM(),
		CollisionSamples:  collisions,
		FinalPose:         finalPose,
		TurnConvention:    sc.TurnConvention,
	}
	if len(obstacles) > 0 {
		rec.MinClearanceCM = &minClear
	}

	final := path.Final()
	goalDist := math.Hypot(final.X-sc.Goal.X, final.Y-sc.Goal.Y)
	rec.ReachedGoal = goalDist <= sc.Goal.RadiusCM
	return rec, nil
}

// ClearanceSeries returns, for each path sample in order, the minimum
// signed distance over all obstacles. Used for trajectory summary
// statistics; returns nil when there are no obstacles.
func ClearanceSeries(path trace.Path, obstacles []InflatedObstacle) ([]float64, error) {
	if len(obstacles) == 0 {
		return nil, nil
	}
	series := make([]float64, len(path))
	for si, sample := range path {
		p := geom.Point{X: sample.X, Y: sample.Y}
		minD := math.Inf(1)
		for i := range obstacles {
			d, err := obstacles[i].SignedDistance(p)
			if err != nil {
				return nil, err
			}
			if d < minD {
				minD = d
			}
		}
		series[si] = minD
	}
	return series, nil
}

// Evaluate runs the full pipeline for one (scene, instructions) pair:
// footprint reduction, obstacle inflation, trajectory simulation, and
// scoring. All state is constructed fresh, so concurrent Evaluate calls
// with different inputs are independent. Any configuration, instruction,
// or geometry failure aborts the run without producing a record.
func Evaluate(sc scene.Scene, instructions []scene.Instruction, cfg EngineConfig) (MetricsRecord, error) {
	if err := cfg.Validate(); err != nil {
		return MetricsRecord{}, err
	}
	if err := sc.Validate(); err != nil {
		return MetricsRecord{}, err
	}
	circum, err := Circumradius(sc.Robot)
	if err != nil {
		return MetricsRecord{}, err
	}
	obstacles, err := InflateObstacles(sc.Obstacles, circum, sc.ClearanceCM)
	if err != nil {
		return MetricsRecord{}, err
	}
	simulator := NewSimulator(sc.Start, sc.TurnConvention, cfg)
	path, err := simulator.Run(instructions)
	if err != nil {
		return MetricsRecord{}, err
	}
	return Score(path, obstacles, sc, simulator.FinalPose)
}
