// Package thermo integrates the resonance signal into an accumulated heat
// value in [0, 100] and derives the discrete phase and target operating point
// from it. Artifacts suppress heating and add cooling, so a saturated or
// motion-corrupted signal bleeds heat instead of building it.
package thermo

// #region model

// Model holds the heat accumulator and its derived phase.
type Model struct {
	config Config
	heat   float64
	phase  Phase
}

// NewModel creates a cold model in the warmup phase.
func NewModel(config Config) *Model {
	return &Model{config: config, phase: PhaseWarmup}
}

// Update integrates one step. resonance is the saturated engagement estimate
// in [0, 1], artifact flags a corrupted sample, dt is the sample interval.
// Returns the new heat; phase and target follow from it.
func (m *Model) Update(resonance float64, artifact bool, dt float64) float64 {
	a := 0.0
	if artifact {
		a = 1.0
	}
	heating := m.config.HeatingGain * resonance * (1.0 - a)
	cooling := m.config.CoolingBase + m.config.CoolingArtifact*a

	m.heat += (heating - cooling) * dt * m.config.Acceleration
	if m.heat < 0 {
		m.heat = 0
	}
	if m.heat > 100 {
		m.heat = 100
	}
	m.phase = PhaseFor(m.heat)
	return m.heat
}

// Heat returns the accumulated heat.
func (m *Model) Heat() float64 {
	return m.heat
}

// Phase returns the phase derived from the current heat.
func (m *Model) Phase() Phase {
	return m.phase
}

// Target returns the target operating point for the current phase.
func (m *Model) Target() float64 {
	return m.phase.TargetLevel()
}

// #endregion model
