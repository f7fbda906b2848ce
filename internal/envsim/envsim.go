// Package envsim simulates the environment on the far side of the sensor: the
// actuator's vibration couples back into the sensor through the chassis, and a
// slowly building physiological response adds resonance once engagement
// crosses its activation threshold. The controller must cancel the former and
// chase the latter. Randomness is seeded so simulated sessions replay exactly.
package envsim

import (
	"math"
	"math/rand"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/history"
)

// #region config

// Config shapes one simulated subject.
type Config struct {
	Label        string    `yaml:"label"`
	SampleRate   float64   `yaml:"sample_rate"`
	Sensitivity  float64   `yaml:"sensitivity"`   // how fast stimulus builds arousal
	Coupling     []float64 `yaml:"coupling"`      // FIR from command to sensor (structural echo)
	NoiseStd     float64   `yaml:"noise_std"`     // sensor noise
	ArtifactProb float64   `yaml:"artifact_prob"` // chance of a motion artifact per step
	ArtifactStd  float64   `yaml:"artifact_std"`  // artifact magnitude
	Seed         int64     `yaml:"seed"`
}

// DefaultConfig returns the standard simulated subject.
func DefaultConfig() Config {
	return Config{
		Label:        "standard subject",
		SampleRate:   100.0,
		Sensitivity:  1.0,
		Coupling:     []float64{0.5, 0.3, 0.1},
		NoiseStd:     0.01,
		ArtifactProb: 0.005,
		ArtifactStd:  0.5,
		Seed:         1,
	}
}

// #endregion config

// #region simulator

// Simulator holds the hidden environment state.
type Simulator struct {
	config   Config
	arousal  float64
	time     float64
	commands *history.Ring
	rng      *rand.Rand
}

// NewSimulator creates a simulator. Identical configs (including seed)
// produce identical response sequences.
func NewSimulator(config Config) *Simulator {
	return &Simulator{
		config:   config,
		commands: history.NewRing(len(config.Coupling)),
		rng:      rand.New(rand.NewSource(config.Seed)),
	}
}

// Respond consumes one actuator command and produces the next sensor reading.
func (s *Simulator) Respond(u float64) float64 {
	s.time += 1.0 / s.config.SampleRate
	s.commands.Push(u)

	var structural float64
	for i, g := range s.config.Coupling {
		structural += g * s.commands.At(i)
	}

	s.arousal += math.Abs(u) * s.config.Sensitivity * 0.05
	s.arousal *= 0.999

	breath := 0.1 * math.Sin(2*math.Pi*0.3*s.time)

	var muscle float64
	if s.arousal > 10.0 {
		muscle = 0.5 * math.Tanh(u*2.0) * (s.arousal / 50.0)
	}

	var artifact float64
	if s.rng.Float64() < s.config.ArtifactProb {
		artifact = s.rng.NormFloat64() * s.config.ArtifactStd
	}

	noise := s.rng.NormFloat64() * s.config.NoiseStd

	return structural + breath + muscle + artifact + noise
}

// Arousal exposes the hidden engagement state for reporting.
func (s *Simulator) Arousal() float64 {
	return s.arousal
}

// #endregion simulator
