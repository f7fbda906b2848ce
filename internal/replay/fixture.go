package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/canceller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/rheology"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/synth"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a full
// configuration set, the raw observation sequence, and optional expectations
// about the final state.
type Fixture struct {
	Description  string         `json:"description"`
	Config       FixtureConfig  `json:"config"`
	Observations []float64      `json:"observations"`
	Expect       *Expectation   `json:"expect,omitempty"`
}

// Expectation captures assertions checked after a replay run.
type Expectation struct {
	Steps        int      `json:"steps"`
	MinFinalHeat *float64 `json:"min_final_heat,omitempty"`
	MaxFinalHeat *float64 `json:"max_final_heat,omitempty"`
	FinalPhase   string   `json:"final_phase,omitempty"`
}

// FixtureConfig mirrors config.Config with JSON tags.
type FixtureConfig struct {
	SampleRate        float64                `json:"sample_rate"`
	Canceller         FixtureCancellerConfig `json:"canceller"`
	Rheology          FixtureRheologyConfig  `json:"rheology"`
	Thermo            FixtureThermoConfig    `json:"thermodynamics"`
	Synth             FixtureSynthConfig     `json:"synthesizer"`
	ArtifactThreshold float64                `json:"artifact_threshold"`
	ResonanceGain     float64                `json:"resonance_gain"`
}

// FixtureCancellerConfig mirrors canceller.Config with JSON tags.
type FixtureCancellerConfig struct {
	Taps           int     `json:"taps"`
	LearningRate   float64 `json:"learning_rate"`
	ResidualWindow int     `json:"residual_window"`
}

// FixtureRheologyConfig mirrors rheology.Config with JSON tags.
type FixtureRheologyConfig struct {
	EtaMin     float64 `json:"eta_min"`
	EtaMax     float64 `json:"eta_max"`
	Smoothing  float64 `json:"smoothing"`
	ShearAlpha float64 `json:"shear_alpha"`
}

// FixtureThermoConfig mirrors thermo.Config with JSON tags.
type FixtureThermoConfig struct {
	HeatingGain     float64 `json:"heating_gain"`
	CoolingBase     float64 `json:"cooling_base"`
	CoolingArtifact float64 `json:"cooling_artifact"`
	Acceleration    float64 `json:"acceleration"`
}

// FixtureSynthConfig mirrors synth.Config with JSON tags.
type FixtureSynthConfig struct {
	BaseFrequency      float64 `json:"base_frequency"`
	FrequencySpan      float64 `json:"frequency_span"`
	FrequencySmoothing float64 `json:"frequency_smoothing"`
	AmplitudeSmoothing float64 `json:"amplitude_smoothing"`
	DriveBase          float64 `json:"drive_base"`
	DriveSpan          float64 `json:"drive_span"`
	SigmoidGain        float64 `json:"sigmoid_gain"`
}

// #endregion fixture-types

// #region converters

// FixtureConfigFrom mirrors a domain config into its JSON form.
func FixtureConfigFrom(cfg config.Config) FixtureConfig {
	return FixtureConfig{
		SampleRate: cfg.SampleRate,
		Canceller: FixtureCancellerConfig{
			Taps:           cfg.Canceller.Taps,
			LearningRate:   cfg.Canceller.LearningRate,
			ResidualWindow: cfg.Canceller.ResidualWindow,
		},
		Rheology: FixtureRheologyConfig{
			EtaMin:     cfg.Rheology.EtaMin,
			EtaMax:     cfg.Rheology.EtaMax,
			Smoothing:  cfg.Rheology.Smoothing,
			ShearAlpha: cfg.Rheology.ShearAlpha,
		},
		Thermo: FixtureThermoConfig{
			HeatingGain:     cfg.Thermo.HeatingGain,
			CoolingBase:     cfg.Thermo.CoolingBase,
			CoolingArtifact: cfg.Thermo.CoolingArtifact,
			Acceleration:    cfg.Thermo.Acceleration,
		},
		Synth: FixtureSynthConfig{
			BaseFrequency:      cfg.Synth.BaseFrequency,
			FrequencySpan:      cfg.Synth.FrequencySpan,
			FrequencySmoothing: cfg.Synth.FrequencySmoothing,
			AmplitudeSmoothing: cfg.Synth.AmplitudeSmoothing,
			DriveBase:          cfg.Synth.DriveBase,
			DriveSpan:          cfg.Synth.DriveSpan,
			SigmoidGain:        cfg.Synth.SigmoidGain,
		},
		ArtifactThreshold: cfg.ArtifactThreshold,
		ResonanceGain:     cfg.ResonanceGain,
	}
}

// ToConfig converts a fixture configuration back to the domain type.
func (fc FixtureConfig) ToConfig() config.Config {
	return config.Config{
		SampleRate: fc.SampleRate,
		Canceller: canceller.Config{
			Taps:           fc.Canceller.Taps,
			LearningRate:   fc.Canceller.LearningRate,
			ResidualWindow: fc.Canceller.ResidualWindow,
		},
		Rheology: rheology.Config{
			EtaMin:     fc.Rheology.EtaMin,
			EtaMax:     fc.Rheology.EtaMax,
			Smoothing:  fc.Rheology.Smoothing,
			ShearAlpha: fc.Rheology.ShearAlpha,
		},
		Thermo: thermo.Config{
			HeatingGain:     fc.Thermo.HeatingGain,
			CoolingBase:     fc.Thermo.CoolingBase,
			CoolingArtifact: fc.Thermo.CoolingArtifact,
			Acceleration:    fc.Thermo.Acceleration,
		},
		Synth: synth.Config{
			BaseFrequency:      fc.Synth.BaseFrequency,
			FrequencySpan:      fc.Synth.FrequencySpan,
			FrequencySmoothing: fc.Synth.FrequencySmoothing,
			AmplitudeSmoothing: fc.Synth.AmplitudeSmoothing,
			DriveBase:          fc.Synth.DriveBase,
			DriveSpan:          fc.Synth.DriveSpan,
			SigmoidGain:        fc.Synth.SigmoidGain,
		},
		ArtifactThreshold: fc.ArtifactThreshold,
		ResonanceGain:     fc.ResonanceGain,
	}
}

// #endregion converters

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io
