// Package replay re-runs a recorded or synthetic observation sequence through
// a fresh controller. Because the controller is deterministic, a fixture pins
// behavior exactly: same config, same observations, same telemetry.
package replay

import (
	"fmt"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/controller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/eval"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/telemetry"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region types

// StepResult captures one replayed step.
type StepResult struct {
	Step        int
	Command     float64
	Record      telemetry.Record
	CheckPassed bool
	CheckReason string
}

// Summary aggregates a replay run.
type Summary struct {
	Steps            int
	FinalHeat        float64
	FinalPhase       thermo.Phase
	FinalViscosity   float64
	FinalAmplitude   float64
	MeanReward       float64
	PhaseTransitions int
	ChecksFailed     int
}

// #endregion types

// #region run

// Run replays observations through a fresh controller built from cfg, running
// the invariant harness after every step.
func Run(cfg config.Config, observations []float64) ([]StepResult, Summary, error) {
	ctrl, err := controller.New(cfg)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("build controller: %w", err)
	}
	checker := eval.NewHarness(eval.ConfigFor(cfg))

	results := make([]StepResult, 0, len(observations))
	var rewardSum float64
	transitions := 0
	failed := 0
	lastPhase := thermo.PhaseWarmup

	for i, y := range observations {
		u, err := ctrl.Advance(y)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("step %d: %w", i, err)
		}
		rec, _ := ctrl.LastRecord()
		check := checker.Check(ctrl.Snapshot())
		if !check.Passed {
			failed++
		}
		if rec.Context.Phase != lastPhase {
			transitions++
			lastPhase = rec.Context.Phase
		}
		rewardSum += rec.Reward
		results = append(results, StepResult{
			Step:        i,
			Command:     u,
			Record:      rec,
			CheckPassed: check.Passed,
			CheckReason: check.Reason,
		})
	}

	snap := ctrl.Snapshot()
	summary := Summary{
		Steps:            len(results),
		FinalHeat:        snap.Heat,
		FinalPhase:       snap.Phase,
		FinalViscosity:   snap.Viscosity,
		FinalAmplitude:   snap.Amplitude,
		PhaseTransitions: transitions,
		ChecksFailed:     failed,
	}
	if len(results) > 0 {
		summary.MeanReward = rewardSum / float64(len(results))
	}
	return results, summary, nil
}

// #endregion run

// #region verify

// Verify replays a fixture and checks its expectations.
func Verify(f *Fixture) (Summary, error) {
	cfg := f.Config.ToConfig()
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("fixture config: %w", err)
	}

	_, summary, err := Run(cfg, f.Observations)
	if err != nil {
		return summary, err
	}
	if summary.ChecksFailed > 0 {
		return summary, fmt.Errorf("%d invariant checks failed", summary.ChecksFailed)
	}

	e := f.Expect
	if e == nil {
		return summary, nil
	}
	if e.Steps != 0 && summary.Steps != e.Steps {
		return summary, fmt.Errorf("steps = %d, fixture expects %d", summary.Steps, e.Steps)
	}
	if e.MinFinalHeat != nil && summary.FinalHeat < *e.MinFinalHeat {
		return summary, fmt.Errorf("final heat %.4f below expected minimum %.4f", summary.FinalHeat, *e.MinFinalHeat)
	}
	if e.MaxFinalHeat != nil && summary.FinalHeat > *e.MaxFinalHeat {
		return summary, fmt.Errorf("final heat %.4f above expected maximum %.4f", summary.FinalHeat, *e.MaxFinalHeat)
	}
	if e.FinalPhase != "" && summary.FinalPhase != thermo.Phase(e.FinalPhase) {
		return summary, fmt.Errorf("final phase %s, fixture expects %s", summary.FinalPhase, e.FinalPhase)
	}
	return summary, nil
}

// #endregion verify
