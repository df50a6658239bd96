package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robobench/robobench/sim/scene"
)

func newTestSimulator(start scene.Pose, convention scene.TurnConvention) *Simulator {
	return NewSimulator(start, convention, DefaultEngineConfig())
}

func TestRun_EmptyInstructionList(t *testing.T) {
	s := newTestSimulator(scene.Pose{X: 3, Y: 4, HeadingDeg: 45}, scene.RightPositive)
	path, err := s.Run(nil)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, 3.0, path[0].X)
	assert.Equal(t, 4.0, path[0].Y)
	assert.Equal(t, 45.0, path[0].HeadingDeg)
	assert.Equal(t, 0.0, path[0].CumulativeCM)
	assert.Equal(t, scene.Pose{X: 3, Y: 4, HeadingDeg: 45}, s.FinalPose)
}

func TestRun_TurnsOnlyMoveNothing(t *testing.T) {
	s := newTestSimulator(scene.Pose{X: 7, Y: -2}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{
		{Op: scene.OpTurn, Value: 90},
		{Op: scene.OpTurn, Value: -45},
		{Op: scene.OpTurn, Value: 720},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, path.LengthCM())
	assert.Equal(t, 7.0, s.FinalPose.X)
	assert.Equal(t, -2.0, s.FinalPose.Y)
	assert.InDelta(t, 45.0, s.FinalPose.HeadingDeg, 1e-9)
	// Turns emit no samples.
	assert.Len(t, path, 1)
}

func TestRun_SingleMoveAlongHeading(t *testing.T) {
	// Heading 0 points along +y.
	s := newTestSimulator(scene.Pose{}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{{Op: scene.OpMove, Value: 100}})
	require.NoError(t, err)

	final := path.Final()
	assert.InDelta(t, 0.0, final.X, 1e-9)
	assert.InDelta(t, 100.0, final.Y, 1e-9)
	assert.InDelta(t, 100.0, final.CumulativeCM, 1e-9)
}

func TestRun_MoveEast(t *testing.T) {
	// Under right_positive, turn(90) from heading 0 faces +x.
	s := newTestSimulator(scene.Pose{}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{
		{Op: scene.OpTurn, Value: 90},
		{Op: scene.OpMove, Value: 50},
	})
	require.NoError(t, err)

	final := path.Final()
	assert.InDelta(t, 50.0, final.X, 1e-9)
	assert.InDelta(t, 0.0, final.Y, 1e-9)
}

func TestRun_NegativeMoveReverses(t *testing.T) {
	s := newTestSimulator(scene.Pose{}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{{Op: scene.OpMove, Value: -50}})
	require.NoError(t, err)

	final := path.Final()
	assert.InDelta(t, -50.0, final.Y, 1e-9)
	// Reverse still accumulates positive path length, heading unchanged.
	assert.InDelta(t, 50.0, final.CumulativeCM, 1e-9)
	assert.Equal(t, 0.0, final.HeadingDeg)
}

func TestRun_TurnConventionSymmetry(t *testing.T) {
	for _, startHeading := range []float64{0, 17.3, 90, 245, 359.9} {
		right := newTestSimulator(scene.Pose{HeadingDeg: startHeading}, scene.RightPositive)
		_, err := right.Run([]scene.Instruction{{Op: scene.OpTurn, Value: 30}})
		require.NoError(t, err)

		left := newTestSimulator(scene.Pose{HeadingDeg: startHeading}, scene.LeftPositive)
		_, err = left.Run([]scene.Instruction{{Op: scene.OpTurn, Value: -30}})
		require.NoError(t, err)

		assert.Equal(t, right.FinalPose.HeadingDeg, left.FinalPose.HeadingDeg,
			"start heading %v", startHeading)
	}
}

func TestRun_SubSamplingResolution(t *testing.T) {
	s := NewSimulator(scene.Pose{}, scene.RightPositive, EngineConfig{SampleStepCM: 2})
	path, err := s.Run([]scene.Instruction{{Op: scene.OpMove, Value: 5}})
	require.NoError(t, err)

	// ceil(5/2) = 3 sub-segments plus the start sample.
	require.Len(t, path, 4)
	// No gap between consecutive samples exceeds the configured step.
	for i := 1; i < len(path); i++ {
		gap := math.Hypot(path[i].X-path[i-1].X, path[i].Y-path[i-1].Y)
		assert.LessOrEqual(t, gap, 2.0+1e-9, "gap before sample %d", i)
	}
	// The endpoint is exact.
	assert.InDelta(t, 5.0, path.Final().Y, 1e-12)
	assert.InDelta(t, 5.0, path.Final().CumulativeCM, 1e-12)
}

func TestRun_ZeroMoveEmitsEndpointSample(t *testing.T) {
	s := newTestSimulator(scene.Pose{}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{{Op: scene.OpMove, Value: 0}})
	require.NoError(t, err)
	assert.Len(t, path, 2)
	assert.Equal(t, 0.0, path.LengthCM())
}

func TestRun_TrailingTurnReflectedInFinalPose(t *testing.T) {
	s := newTestSimulator(scene.Pose{}, scene.RightPositive)
	path, err := s.Run([]scene.Instruction{
		{Op: scene.OpMove, Value: 10},
		{Op: scene.OpTurn, Value: 90},
	})
	require.NoError(t, err)
	// The last sample keeps the pre-turn heading; the final pose turns.
	assert.Equal(t, 0.0, path.Final().HeadingDeg)
	assert.InDelta(t, 90.0, s.FinalPose.HeadingDeg, 1e-9)
}

func TestRun_BadInstructionsAbortWithoutPath(t *testing.T) {
	tests := []struct {
		name  string
		instr []scene.Instruction
		index int
	}{
		{"unknown op", []scene.Instruction{{Op: "jump", Value: 1}}, 0},
		{"nan payload", []scene.Instruction{{Op: scene.OpMove, Value: math.NaN()}}, 0},
		{"inf payload after valid op", []scene.Instruction{
			{Op: scene.OpMove, Value: 10},
			{Op: scene.OpTurn, Value: math.Inf(1)},
		}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSimulator(scene.Pose{}, scene.RightPositive)
			path, err := s.Run(tc.instr)
			require.Error(t, err)
			assert.Nil(t, path, "no partial path on failure")
			var ierr *scene.InstructionError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tc.index, ierr.Index)
		})
	}
}
