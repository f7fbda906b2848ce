// Package config bundles every tuning constant of the controller into one
// YAML-loadable configuration set. Two divergent tunings of the same
// constants ship as named presets, and a file can override any field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/canceller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/rheology"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/synth"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region config

// Config is the full constructor-time parameter set for a controller session.
type Config struct {
	SampleRate float64 `yaml:"sample_rate"` // Hz, fixed for the session

	Canceller canceller.Config `yaml:"canceller"`
	Rheology  rheology.Config  `yaml:"rheology"`
	Thermo    thermo.Config    `yaml:"thermodynamics"`
	Synth     synth.Config     `yaml:"synthesizer"`

	// Calibration constants for the engagement heuristics.
	ArtifactThreshold float64 `yaml:"artifact_threshold"` // |residual| above this flags an artifact
	ResonanceGain     float64 `yaml:"resonance_gain"`     // scales |residual*amplitude| before saturation
}

// Default returns the strong-motor tuning at 100 Hz.
func Default() Config {
	return Config{
		SampleRate:        100.0,
		Canceller:         canceller.DefaultConfig(),
		Rheology:          rheology.DefaultConfig(),
		Thermo:            thermo.DefaultConfig(),
		Synth:             synth.DefaultConfig(),
		ArtifactThreshold: 0.8,
		ResonanceGain:     5.0,
	}
}

// Gentle returns the pre-tuning constants preserved in the reference source:
// thicker fluid and a far weaker drive floor.
func Gentle() Config {
	cfg := Default()
	cfg.Rheology.EtaMax = 12.0
	cfg.Synth.DriveBase = 0.2
	cfg.Synth.DriveSpan = 0.8
	return cfg
}

// #endregion config

// #region load

// Load reads a YAML file over the default tuning, so partial files only
// override what they name. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load

// #region validate

// Validate rejects parameter sets the controller cannot run stably with.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %v", c.SampleRate)
	}
	if c.Canceller.Taps <= 0 {
		return fmt.Errorf("canceller.taps must be positive, got %d", c.Canceller.Taps)
	}
	if c.Canceller.LearningRate <= 0 {
		return fmt.Errorf("canceller.learning_rate must be positive, got %v", c.Canceller.LearningRate)
	}
	if c.Canceller.ResidualWindow < 3 {
		return fmt.Errorf("canceller.residual_window must be at least 3, got %d", c.Canceller.ResidualWindow)
	}
	if c.Rheology.EtaMin <= 0 {
		return fmt.Errorf("rheology.eta_min must be positive, got %v", c.Rheology.EtaMin)
	}
	if c.Rheology.EtaMin >= c.Rheology.EtaMax {
		return fmt.Errorf("rheology.eta_min %v must be below eta_max %v", c.Rheology.EtaMin, c.Rheology.EtaMax)
	}
	for name, alpha := range map[string]float64{
		"rheology.smoothing":             c.Rheology.Smoothing,
		"rheology.shear_alpha":           c.Rheology.ShearAlpha,
		"synthesizer.frequency_smoothing": c.Synth.FrequencySmoothing,
		"synthesizer.amplitude_smoothing": c.Synth.AmplitudeSmoothing,
	} {
		if alpha <= 0 || alpha > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", name, alpha)
		}
	}
	if c.Thermo.Acceleration <= 0 {
		return fmt.Errorf("thermodynamics.acceleration must be positive, got %v", c.Thermo.Acceleration)
	}
	if c.Thermo.HeatingGain < 0 || c.Thermo.CoolingBase < 0 || c.Thermo.CoolingArtifact < 0 {
		return fmt.Errorf("thermodynamics rate constants must be non-negative")
	}
	if c.Synth.BaseFrequency <= 0 {
		return fmt.Errorf("synthesizer.base_frequency must be positive, got %v", c.Synth.BaseFrequency)
	}
	if c.Synth.FrequencySpan < 0 {
		return fmt.Errorf("synthesizer.frequency_span must be non-negative, got %v", c.Synth.FrequencySpan)
	}
	if c.Synth.DriveBase < 0 || c.Synth.DriveSpan < 0 {
		return fmt.Errorf("synthesizer drive constants must be non-negative")
	}
	if c.Synth.SigmoidGain <= 0 {
		return fmt.Errorf("synthesizer.sigmoid_gain must be positive, got %v", c.Synth.SigmoidGain)
	}
	if c.ArtifactThreshold <= 0 {
		return fmt.Errorf("artifact_threshold must be positive, got %v", c.ArtifactThreshold)
	}
	if c.ResonanceGain <= 0 {
		return fmt.Errorf("resonance_gain must be positive, got %v", c.ResonanceGain)
	}
	return nil
}

// #endregion validate

// #region interval

// SampleInterval returns the fixed step duration in seconds.
func (c Config) SampleInterval() float64 {
	return 1.0 / c.SampleRate
}

// #endregion interval
