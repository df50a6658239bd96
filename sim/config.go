package sim

import "github.com/robobench/robobench/sim/scene"

// DefaultSampleStepCM is the default spatial resolution at which move
// segments are sub-sampled for collision testing.
const DefaultSampleStepCM = 2.0

// EngineConfig groups the engine's tunable parameters. SampleStepCM is the
// maximum gap between consecutive samples along a move segment: too coarse
// a step can miss thin obstacles, so it is an explicit, validated setting
// rather than a hidden constant.
type EngineConfig struct {
	SampleStepCM float64 `yaml:"sample_step_cm"`
}

// DefaultEngineConfig returns the engine defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{SampleStepCM: DefaultSampleStepCM}
}

// Validate checks parameter ranges.
func (c EngineConfig) Validate() error {
	if !(c.SampleStepCM > 0) {
		return &scene.ConfigurationError{Field: "sample_step_cm", Reason: "must be positive"}
	}
	return nil
}
