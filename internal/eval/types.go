package eval

import "github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"

// #region config

// Config holds the bounds the harness checks a snapshot against.
type Config struct {
	EtaMin       float64
	EtaMax       float64
	MaxHeat      float64
	MaxAmplitude float64
	MinFrequency float64
	MaxFrequency float64
}

// ConfigFor derives check bounds from a controller configuration. The
// amplitude ceiling is the largest value the drive force can produce at full
// damping; the smoothing can never overshoot it.
func ConfigFor(cfg config.Config) Config {
	return Config{
		EtaMin:       cfg.Rheology.EtaMin,
		EtaMax:       cfg.Rheology.EtaMax,
		MaxHeat:      100,
		MaxAmplitude: cfg.Synth.DriveBase + cfg.Synth.DriveSpan,
		MinFrequency: cfg.Synth.BaseFrequency,
		MaxFrequency: cfg.Synth.BaseFrequency + cfg.Synth.FrequencySpan,
	}
}

// #endregion config

// #region result

// Metric is one named check with its observed value.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// Result is the outcome of checking one snapshot.
type Result struct {
	Passed  bool
	Reason  string // first failure, empty when passed
	Metrics []Metric
}

// #endregion result
