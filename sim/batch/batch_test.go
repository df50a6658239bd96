package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robobench/robobench/sim"
	"github.com/robobench/robobench/sim/scene"
)

func openField() scene.Scene {
	s := scene.Default()
	s.Robot = scene.RobotFootprint{Shape: scene.ShapeCircle, RadiusCM: 10}
	s.Goal = scene.Goal{X: 0, Y: 1000, RadiusCM: 10}
	return s
}

func moveCase(distance float64) Case {
	return Case{
		Scene:        openField(),
		Instructions: []scene.Instruction{{Op: scene.OpMove, Value: distance}},
	}
}

func TestEvaluate_ResultsInCaseOrder(t *testing.T) {
	r := NewRunner(sim.DefaultEngineConfig())
	r.Workers = 4

	cases := []Case{moveCase(10), moveCase(20), moveCase(30)}
	results := r.Evaluate(context.Background(), cases)
	require.Len(t, results, 3)
	for i, want := range []float64{10, 20, 30} {
		require.NoError(t, results[i].Err)
		assert.InDelta(t, want, results[i].Metrics.TotalPathLengthCM, 1e-9)
	}
}

func TestEvaluate_FailedCaseDoesNotPoisonOthers(t *testing.T) {
	bad := moveCase(10)
	bad.Scene.ClearanceCM = -1

	r := NewRunner(sim.DefaultEngineConfig())
	results := r.Evaluate(context.Background(), []Case{moveCase(5), bad, moveCase(15)})
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Equal(t, sim.MetricsRecord{}, results[1].Metrics)
	assert.NoError(t, results[2].Err)
}

func TestEvaluate_CanceledContextFailsRemainingCases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(sim.DefaultEngineConfig())
	results := r.Evaluate(ctx, []Case{moveCase(5), moveCase(10)})
	require.Len(t, results, 2)
	for _, res := range results {
		// Depending on scheduling a case may be dispatched before the
		// cancellation is observed; a dispatched run still succeeds.
		if res.Err != nil {
			assert.ErrorIs(t, res.Err, context.Canceled)
		}
	}
}

func TestEvaluate_PerRunBudgetExceeded(t *testing.T) {
	// A deliberately heavy case: fine sampling over a long drive through a
	// large obstacle field.
	heavy := openField()
	for i := 0; i < 100; i++ {
		heavy.Obstacles = append(heavy.Obstacles, scene.RawObstacle{
			Kind: scene.ObstaclePolygon, CX: float64(i * 7), CY: float64(i * 3), RadiusCM: 10, Faces: 8,
		})
	}
	var instr []scene.Instruction
	for i := 0; i < 200; i++ {
		instr = append(instr, scene.Instruction{Op: scene.OpMove, Value: 100})
	}

	r := NewRunner(sim.EngineConfig{SampleStepCM: 0.05})
	r.PerRunBudget = time.Nanosecond

	results := r.Evaluate(context.Background(), []Case{{Scene: heavy, Instructions: instr}})
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
	assert.Equal(t, sim.MetricsRecord{}, results[0].Metrics)
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(sim.DefaultEngineConfig())
	assert.Greater(t, r.Workers, 0)
	assert.Equal(t, time.Duration(0), r.PerRunBudget)
}
