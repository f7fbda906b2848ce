package telemetry

import "github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"

// #region record

// Context is the internal state snapshot captured with each step.
type Context struct {
	Heat      float64      `json:"heat"`
	Viscosity float64      `json:"viscosity"`
	Phase     thermo.Phase `json:"phase"`
}

// Action is what the controller commanded on a step.
type Action struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Waveform  float64 `json:"waveform"`
}

// Record is one CIEU telemetry tuple: context, intervention, target/observed
// pair, and reward. Immutable once appended.
type Record struct {
	Step     int     `json:"step"`
	Context  Context `json:"context"`
	Action   Action  `json:"action"`
	Target   float64 `json:"target"`
	Observed float64 `json:"observed"`
	Reward   float64 `json:"reward"`
}

// #endregion record

// #region step-row

// StepRow pairs a CIEU record with the raw sensor sample that produced it,
// so a persisted session can be replayed bit-identically.
type StepRow struct {
	RawObservation float64
	Record         Record
}

// #endregion step-row

// #region session-info

// SessionInfo summarizes a stored session.
type SessionInfo struct {
	ID        string
	Label     string
	CreatedAt string
	Steps     int
}

// #endregion session-info
