// Package rheology models the virtual damping coefficient as a shear-thinning
// fluid: sustained fluctuation in the residual lowers viscosity, letting the
// synthesizer drive harder, while an exponential shear memory keeps single
// noisy samples from chattering the coefficient.
package rheology

import "math"

// #region config

// Config bounds the viscosity and sets the two smoothing constants.
type Config struct {
	EtaMin     float64 `yaml:"eta_min"`     // thinnest state
	EtaMax     float64 `yaml:"eta_max"`     // thickest state, also the initial value
	Smoothing  float64 `yaml:"smoothing"`   // EMA factor pulling eta toward its target
	ShearAlpha float64 `yaml:"shear_alpha"` // EMA factor for the shear memory
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		EtaMin:     0.5,
		EtaMax:     6.0,
		Smoothing:  0.1,
		ShearAlpha: 0.05,
	}
}

// #endregion config

// #region model

// Model holds the live viscosity and its shear memory.
type Model struct {
	config      Config
	eta         float64
	shearMemory float64
}

// NewModel creates a model starting at maximum viscosity with no shear history.
func NewModel(config Config) *Model {
	return &Model{config: config, eta: config.EtaMax}
}

// Update folds the instantaneous shear proxy into the shear memory, derives
// the target viscosity, and slews eta toward it. Returns the new eta, which
// is always within [EtaMin, EtaMax].
func (m *Model) Update(shear float64) float64 {
	m.shearMemory = ema(m.shearMemory, shear, m.config.ShearAlpha)

	target := m.config.EtaMax / (1.0 + 2.0*math.Pow(m.shearMemory, 1.5))
	if target < m.config.EtaMin {
		target = m.config.EtaMin
	}
	if target > m.config.EtaMax {
		target = m.config.EtaMax
	}

	m.eta = ema(m.eta, target, m.config.Smoothing)
	return m.eta
}

// Eta returns the current viscosity.
func (m *Model) Eta() float64 {
	return m.eta
}

// ShearMemory returns the smoothed shear proxy.
func (m *Model) ShearMemory() float64 {
	return m.shearMemory
}

// #endregion model

func ema(prev, x, alpha float64) float64 {
	return (1-alpha)*prev + alpha*x
}
