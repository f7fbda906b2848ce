// Package synth generates the oscillatory drive command. Frequency ramps
// slowly with heat, amplitude responds to the target/observed gap through a
// sigmoid drive force scaled by the damping factor, and both are low-pass
// filtered so the command respects actuator inertia.
package synth

import "math"

// #region synthesizer

// Synthesizer holds the smoothed amplitude and frequency.
type Synthesizer struct {
	config    Config
	amplitude float64
	frequency float64
}

// NewSynthesizer creates a silent synthesizer at the base frequency.
func NewSynthesizer(config Config) *Synthesizer {
	return &Synthesizer{config: config, frequency: config.BaseFrequency}
}

// Update retunes amplitude and frequency for one step. damping is etaMin/eta
// in (0, 1], heat is the accumulator in [0, 100], gap is target minus
// observed level.
func (s *Synthesizer) Update(damping, heat, gap float64) {
	targetFreq := s.config.BaseFrequency + (heat/100.0)*s.config.FrequencySpan
	s.frequency = ema(s.frequency, targetFreq, s.config.FrequencySmoothing)

	drive := s.config.DriveBase + s.config.DriveSpan*sigmoid(gap*s.config.SigmoidGain)
	s.amplitude = ema(s.amplitude, drive*damping, s.config.AmplitudeSmoothing)
}

// Sample evaluates the waveform at simulation time t.
func (s *Synthesizer) Sample(t float64) float64 {
	return s.amplitude * math.Sin(2*math.Pi*s.frequency*t)
}

// Amplitude returns the current smoothed amplitude.
func (s *Synthesizer) Amplitude() float64 {
	return s.amplitude
}

// Frequency returns the current smoothed frequency.
func (s *Synthesizer) Frequency() float64 {
	return s.frequency
}

// #endregion synthesizer

// #region helpers

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func ema(prev, x, alpha float64) float64 {
	return (1-alpha)*prev + alpha*x
}

// #endregion helpers
