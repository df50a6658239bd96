package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyPath(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Summary{}, s)
}

func TestSummarize_BoundsAndLength(t *testing.T) {
	p := Path{
		{X: 0, Y: 0, CumulativeCM: 0},
		{X: 10, Y: -5, CumulativeCM: 11.18},
		{X: 4, Y: 20, CumulativeCM: 40.0},
	}
	s := Summarize(p, nil)
	assert.Equal(t, 3, s.Samples)
	assert.Equal(t, 40.0, s.PathLengthCM)
	assert.Equal(t, 0.0, s.MinX)
	assert.Equal(t, 10.0, s.MaxX)
	assert.Equal(t, -5.0, s.MinY)
	assert.Equal(t, 20.0, s.MaxY)
	assert.False(t, s.HasClearance)
}

func TestSummarize_ClearanceStats(t *testing.T) {
	p := Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	s := Summarize(p, []float64{4, -2, 1})
	assert.True(t, s.HasClearance)
	assert.Equal(t, -2.0, s.MinClearance)
	assert.InDelta(t, 1.0, s.MeanClearance, 1e-12)
}

func TestPath_Final(t *testing.T) {
	assert.Equal(t, Sample{}, Path(nil).Final())
	p := Path{{X: 1}, {X: 2, CumulativeCM: 7}}
	assert.Equal(t, Sample{X: 2, CumulativeCM: 7}, p.Final())
	assert.Equal(t, 7.0, p.LengthCM())
}
