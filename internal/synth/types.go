package synth

// #region config

// Config holds the frequency ramp, drive-force shape, and slew constants.
type Config struct {
	BaseFrequency      float64 `yaml:"base_frequency"`      // Hz at zero heat
	FrequencySpan      float64 `yaml:"frequency_span"`      // Hz added over the full heat range
	FrequencySmoothing float64 `yaml:"frequency_smoothing"` // EMA factor for frequency
	AmplitudeSmoothing float64 `yaml:"amplitude_smoothing"` // EMA factor modeling actuator slew
	DriveBase          float64 `yaml:"drive_base"`          // floor of the drive force
	DriveSpan          float64 `yaml:"drive_span"`          // error-responsive drive range
	SigmoidGain        float64 `yaml:"sigmoid_gain"`        // steepness of the gap response
}

// DefaultConfig returns the strong-motor tuning from the reference controller.
func DefaultConfig() Config {
	return Config{
		BaseFrequency:      0.5,
		FrequencySpan:      3.0,
		FrequencySmoothing: 0.01,
		AmplitudeSmoothing: 0.02,
		DriveBase:          2.0,
		DriveSpan:          3.0,
		SigmoidGain:        2.0,
	}
}

// #endregion config
