// Package batch evaluates many (scene, instructions) cases concurrently.
// Runs are independent by construction — the engine shares no state across
// evaluations — so the runner only adds worker fan-out and an optional
// per-run wall-clock budget.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/robobench/robobench/sim"
	"github.com/robobench/robobench/sim/scene"
)

// Case is one evaluation input.
type Case struct {
	Scene        scene.Scene
	Instructions []scene.Instruction
}

// Result is the outcome of one case. Exactly one of Metrics or Err is
// meaningful: a run that fails or exceeds its budget produces no record,
// never a partial one.
type Result struct {
	Metrics sim.MetricsRecord
	Err     error
}

// Runner evaluates cases across a fixed pool of workers.
type Runner struct {
	Workers      int
	PerRunBudget time.Duration // 0 = unlimited
	Config       sim.EngineConfig
}

// NewRunner returns a Runner with one worker per CPU and no per-run budget.
func NewRunner(cfg sim.EngineConfig) *Runner {
	return &Runner{Workers: runtime.NumCPU(), Config: cfg}
}

// Evaluate runs all cases and returns results in case order. ctx cancels
// the batch as a whole: cases not yet started when ctx is done fail with
// ctx.Err(). A case that exceeds PerRunBudget is reported as failed; the
// abandoned evaluation finishes in the background and its result is
// discarded.
func (r *Runner) Evaluate(ctx context.Context, cases []Case) []Result {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(cases))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = r.runOne(ctx, cases[i])
			}
		}()
	}

	for i := range cases {
		select {
		case <-ctx.Done():
			results[i] = Result{Err: fmt.Errorf("batch canceled: %w", ctx.Err())}
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()
	return results
}

func (r *Runner) runOne(ctx context.Context, c Case) Result {
	if r.PerRunBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.PerRunBudget)
		defer cancel()
	}

	done := make(chan Result, 1)
	go func() {
		rec, err := sim.Evaluate(c.Scene, c.Instructions, r.Config)
		done <- Result{Metrics: rec, Err: err}
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		logrus.Warnf("evaluation exceeded budget %v, discarding run", r.PerRunBudget)
		return Result{Err: fmt.Errorf("run exceeded wall-clock budget: %w", ctx.Err())}
	}
}
