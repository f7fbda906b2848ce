package controller

import (
	"errors"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region errors

// ErrInvalidObservation rejects non-finite sensor input before it can corrupt
// the learned filter weights or the viscosity state.
var ErrInvalidObservation = errors.New("invalid observation")

// #endregion errors

// #region snapshot

// Snapshot is a read-only view of the controller state after a step.
type Snapshot struct {
	Step        int
	Heat        float64
	Phase       thermo.Phase
	Viscosity   float64
	ShearMemory float64
	Amplitude   float64
	Frequency   float64
	Target      float64
	Observed    float64
	Residual    float64
}

// #endregion snapshot
