package canceller

// #region config

// Config holds the echo-filter order, LMS step size, and residual window.
type Config struct {
	Taps           int     `yaml:"taps"`            // length of the structural echo model
	LearningRate   float64 `yaml:"learning_rate"`   // LMS step size (mu)
	ResidualWindow int     `yaml:"residual_window"` // residual history capacity, ~1s of samples
}

// DefaultConfig returns the tuning from the reference controller at 100 Hz.
func DefaultConfig() Config {
	return Config{
		Taps:           5,
		LearningRate:   0.01,
		ResidualWindow: 100,
	}
}

// #endregion config
