package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/robobench/robobench/sim/scene"
	"github.com/robobench/robobench/sim/trace"
)

// Simulator replays move/turn instructions into a continuous trajectory,
// sampled at the configured spatial resolution. It holds no state between
// runs: each Run starts from the configured start pose.
type Simulator struct {
	Start        scene.Pose
	Convention   scene.TurnConvention
	SampleStepCM float64

	// FinalPose is the terminal simulator state after Run. It can differ
	// from the final sample's heading when the last instruction is a turn,
	// since turns emit no sample.
	FinalPose scene.Pose
}

// NewSimulator creates a Simulator for one scene's start pose and turn
// convention. cfg must already be validated.
func NewSimulator(start scene.Pose, convention scene.TurnConvention, cfg EngineConfig) *Simulator {
	return &Simulator{
		Start:        start,
		Convention:   convention,
		SampleStepCM: cfg.SampleStepCM,
	}
}

// normalizeDeg maps a heading into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Run consumes the instruction list and returns the sampled path. The path
// always begins with a sample at the start pose, so an empty instruction
// list yields a one-sample path. Move segments are sub-sampled so that no
// gap between consecutive samples exceeds SampleStepCM, with the final
// sample exactly at the segment endpoint; turns change only the heading
// and emit no sample. A malformed instruction aborts the run with an
// InstructionError: no partial path is returned.
func (s *Simulator) Run(instructions []scene.Instruction) (trace.Path, error) {
	x, y := s.Start.X, s.Start.Y
	heading := normalizeDeg(s.Start.HeadingDeg)
	cumulative := 0.0

	path := trace.Path{{X: x, Y: y, HeadingDeg: heading, CumulativeCM: cumulative}}

	for idx, ins := range instructions {
		if math.IsNaN(ins.Value) || math.IsInf(ins.Value, 0) {
			return nil, &scene.InstructionError{Line: -1, Index: idx, Reason: "non-finite argument"}
		}
		switch ins.Op {
		case scene.OpMove:
			d := ins.Value
			logrus.Debugf("[instr %03d] move %.2f cm", idx, d)
			// Heading 0 points along +y; positive headings rotate clockwise.
			rad := heading * math.Pi / 180
			dirX, dirY := math.Sin(rad), math.Cos(rad)
			steps := int(math.Ceil(math.Abs(d) / s.SampleStepCM))
			if steps < 1 {
				steps = 1
			}
			// Interpolate from the segment start so the endpoint is exact.
			sx, sy, scum := x, y, cumulative
			for i := 1; i <= steps; i++ {
				frac := float64(i) / float64(steps)
				x = sx + d*frac*dirX
				y = sy + d*frac*dirY
				cumulative = scum + math.Abs(d)*frac
				path = append(path, trace.Sample{X: x, Y: y, HeadingDeg: heading, CumulativeCM: cumulative})
			}
		case scene.OpTurn:
			a := ins.Value
			logrus.Debugf("[instr %03d] turn %.2f deg", idx, a)
			if s.Convention == scene.RightPositive {
				heading = normalizeDeg(heading + a)
			} else {
				heading = normalizeDeg(heading - a)
			}
		default:
			return nil, &scene.InstructionError{Line: -1, Index: idx, Text: string(ins.Op), Reason: "unrecognized instruction"}
		}
	}

	s.FinalPose = scene.Pose{X: x, Y: y, HeadingDeg: heading}
	logrus.Debugf("simulation produced %d samples over %.2f cm", len(path), cumulative)
	return path, nil
}
