// Package sim provides the geometric simulation and scoring engine for the
// robot path benchmark.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - footprint.go: robot footprint → effective circumradius reduction
//   - simulator.go: move/turn instruction replay into a sampled path
//   - metrics.go: path × obstacle collision scoring into a MetricsRecord
//
// # Architecture
//
// The engine is one linear pipeline per run: reduce the footprint, inflate
// the obstacles, simulate the trajectory, score the samples. Each run
// constructs fresh immutable obstacle and pose data; there is no shared
// state across runs, so independent evaluations are safe to parallelize
// (see sim/batch).
//
// Supporting packages:
//   - sim/geom/: pure 2D signed-distance primitives
//   - sim/scene/: structured scene/instruction inputs and their parsers
//   - sim/trace/: trajectory sample records and summary statistics
//   - sim/batch/: parallel multi-case evaluation with per-run budgets
//
// # Determinism
//
// Two runs over the same (scene, instructions) pair MUST produce
// bit-for-bit identical MetricsRecord values. The engine contains no
// randomness and no hidden configuration.
package sim
