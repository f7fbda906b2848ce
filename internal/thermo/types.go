package thermo

// #region phase

// Phase is the discrete engagement stage derived purely from heat.
type Phase string

const (
	PhaseWarmup Phase = "warmup"
	PhaseClimb  Phase = "climb"
	PhasePeak   Phase = "peak"
)

// Heat thresholds and the per-phase target operating point. Thresholds use
// strict less-than: heat of exactly 30 is already climb, 80 already peak.
const (
	climbThreshold = 30.0
	peakThreshold  = 80.0

	warmupTarget = 0.3
	climbTarget  = 0.6
	peakTarget   = 0.9
)

// PhaseFor maps heat to its phase.
func PhaseFor(heat float64) Phase {
	switch {
	case heat < climbThreshold:
		return PhaseWarmup
	case heat < peakThreshold:
		return PhaseClimb
	default:
		return PhasePeak
	}
}

// TargetLevel returns the target operating point for the phase.
func (p Phase) TargetLevel() float64 {
	switch p {
	case PhaseWarmup:
		return warmupTarget
	case PhaseClimb:
		return climbTarget
	default:
		return peakTarget
	}
}

// #endregion phase

// #region config

// Config holds the heating/cooling rate constants.
type Config struct {
	HeatingGain     float64 `yaml:"heating_gain"`     // heat gained per unit resonance
	CoolingBase     float64 `yaml:"cooling_base"`     // constant heat loss
	CoolingArtifact float64 `yaml:"cooling_artifact"` // extra loss while an artifact is flagged
	Acceleration    float64 `yaml:"acceleration"`     // scales the integration rate
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		HeatingGain:     0.3,
		CoolingBase:     0.05,
		CoolingArtifact: 0.2,
		Acceleration:    20.0,
	}
}

// #endregion config
