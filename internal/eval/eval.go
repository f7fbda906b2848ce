// Package eval runs lightweight invariant checks against live controller
// snapshots: every bound the design guarantees by construction is re-verified
// at runtime so a tuning or numeric regression is caught in replay runs and
// long sessions rather than silently drifting.
package eval

import (
	"fmt"
	"math"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/controller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region harness

// Harness checks controller snapshots against configured bounds.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given bounds.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Check validates one snapshot. The first failed bound becomes the reason.
func (h *Harness) Check(snap controller.Snapshot) Result {
	var metrics []Metric
	passed := true
	reason := ""

	record := func(name string, value float64, ok bool, detail string) {
		metrics = append(metrics, Metric{Name: name, Value: value, Pass: ok})
		if !ok && passed {
			passed = false
			reason = detail
		}
	}

	record("viscosity", snap.Viscosity,
		snap.Viscosity >= h.config.EtaMin && snap.Viscosity <= h.config.EtaMax,
		fmt.Sprintf("viscosity %.4f outside [%.4f, %.4f]", snap.Viscosity, h.config.EtaMin, h.config.EtaMax))

	record("heat", snap.Heat,
		snap.Heat >= 0 && snap.Heat <= h.config.MaxHeat,
		fmt.Sprintf("heat %.4f outside [0, %.4f]", snap.Heat, h.config.MaxHeat))

	record("phase_sync", snap.Heat,
		snap.Phase == thermo.PhaseFor(snap.Heat),
		fmt.Sprintf("phase %s out of sync with heat %.4f", snap.Phase, snap.Heat))

	record("amplitude", snap.Amplitude,
		!math.IsNaN(snap.Amplitude) && snap.Amplitude >= 0 && snap.Amplitude <= h.config.MaxAmplitude,
		fmt.Sprintf("amplitude %.4f outside [0, %.4f]", snap.Amplitude, h.config.MaxAmplitude))

	record("frequency", snap.Frequency,
		snap.Frequency >= h.config.MinFrequency && snap.Frequency <= h.config.MaxFrequency,
		fmt.Sprintf("frequency %.4f outside [%.4f, %.4f]", snap.Frequency, h.config.MinFrequency, h.config.MaxFrequency))

	record("observed", snap.Observed,
		snap.Observed >= 0 && snap.Observed <= 1,
		fmt.Sprintf("observed level %.4f outside [0, 1]", snap.Observed))

	return Result{Passed: passed, Reason: reason, Metrics: metrics}
}

// #endregion harness
