package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := Gentle().Validate(); err != nil {
		t.Fatalf("gentle config invalid: %v", err)
	}
}

func TestGentleTuning(t *testing.T) {
	cfg := Gentle()
	if cfg.Rheology.EtaMax != 12.0 {
		t.Fatalf("gentle eta_max = %v, want 12.0", cfg.Rheology.EtaMax)
	}
	if cfg.Synth.DriveBase != 0.2 || cfg.Synth.DriveSpan != 0.8 {
		t.Fatalf("gentle drive = %v + %v, want 0.2 + 0.8", cfg.Synth.DriveBase, cfg.Synth.DriveSpan)
	}
	// Everything not retuned stays at the defaults.
	if cfg.SampleRate != 100.0 || cfg.Canceller.Taps != 5 {
		t.Fatal("gentle preset must inherit unrelated defaults")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"zero taps", func(c *Config) { c.Canceller.Taps = 0 }},
		{"negative learning rate", func(c *Config) { c.Canceller.LearningRate = -0.01 }},
		{"tiny residual window", func(c *Config) { c.Canceller.ResidualWindow = 2 }},
		{"zero eta min", func(c *Config) { c.Rheology.EtaMin = 0 }},
		{"inverted eta bounds", func(c *Config) { c.Rheology.EtaMin = 7; c.Rheology.EtaMax = 6 }},
		{"smoothing above one", func(c *Config) { c.Rheology.Smoothing = 1.5 }},
		{"zero amplitude smoothing", func(c *Config) { c.Synth.AmplitudeSmoothing = 0 }},
		{"zero acceleration", func(c *Config) { c.Thermo.Acceleration = 0 }},
		{"negative cooling", func(c *Config) { c.Thermo.CoolingBase = -1 }},
		{"zero base frequency", func(c *Config) { c.Synth.BaseFrequency = 0 }},
		{"negative drive", func(c *Config) { c.Synth.DriveBase = -0.1 }},
		{"zero sigmoid gain", func(c *Config) { c.Synth.SigmoidGain = 0 }},
		{"zero artifact threshold", func(c *Config) { c.ArtifactThreshold = 0 }},
		{"zero resonance gain", func(c *Config) { c.ResonanceGain = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := `
sample_rate: 200
rheology:
  eta_min: 1.0
  eta_max: 8.0
  smoothing: 0.1
  shear_alpha: 0.05
synthesizer:
  base_frequency: 1.0
  frequency_span: 2.0
  frequency_smoothing: 0.01
  amplitude_smoothing: 0.02
  drive_base: 1.0
  drive_span: 2.0
  sigmoid_gain: 2.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SampleRate != 200 {
		t.Fatalf("sample_rate = %v, want 200", cfg.SampleRate)
	}
	if cfg.Rheology.EtaMax != 8.0 {
		t.Fatalf("eta_max = %v, want 8.0", cfg.Rheology.EtaMax)
	}
	// Sections the file does not mention keep their defaults.
	if cfg.Canceller.Taps != 5 || cfg.ResonanceGain != 5.0 {
		t.Fatal("unnamed sections must keep defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSampleInterval(t *testing.T) {
	cfg := Default()
	if got := cfg.SampleInterval(); got != 0.01 {
		t.Fatalf("SampleInterval = %v, want 0.01", got)
	}
}
