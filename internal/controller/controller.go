// Package controller implements the fixed-rate adaptive feedback loop: cancel
// the actuator's structural echo out of the sensor reading, track engagement
// through the thermodynamic phase model, adapt the virtual viscosity to the
// residual's volatility, and retune the drive waveform to close the gap
// between target and observed response. One call to Advance per sample
// interval; every call appends one CIEU telemetry record.
package controller

import (
	"math"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/canceller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/rheology"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/synth"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/telemetry"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region controller

// Controller owns all per-session state. It is not safe for concurrent use;
// callers serialize Advance, one observation in and one command out per
// sample interval.
type Controller struct {
	cfg config.Config
	dt  float64

	filter *canceller.Filter
	fluid  *rheology.Model
	heat   *thermo.Model
	wave   *synth.Synthesizer

	step int
	log  []telemetry.Record
}

// New constructs a controller for one session. The configuration is fixed for
// the controller's lifetime.
func New(cfg config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:    cfg,
		dt:     cfg.SampleInterval(),
		filter: canceller.NewFilter(cfg.Canceller),
		fluid:  rheology.NewModel(cfg.Rheology),
		heat:   thermo.NewModel(cfg.Thermo),
		wave:   synth.NewSynthesizer(cfg.Synth),
	}, nil
}

// #endregion controller

// #region advance

// Advance runs one control step on a raw sensor reading and returns the
// waveform sample to drive the actuator with. Non-finite input is rejected
// without touching any state.
func (c *Controller) Advance(observation float64) (float64, error) {
	if math.IsNaN(observation) || math.IsInf(observation, 0) {
		return 0, ErrInvalidObservation
	}

	// Decouple our own structural echo. prevAmp is the amplitude last
	// physically emitted; it feeds the echo history and the resonance
	// estimate below.
	prevAmp := c.wave.Amplitude()
	e := c.filter.Cancel(observation, prevAmp)

	artifact := math.Abs(e) > c.cfg.ArtifactThreshold
	c.fluid.Update(c.filter.Shear())

	resonance := math.Abs(e*prevAmp) * c.cfg.ResonanceGain
	if resonance > 1 {
		resonance = 1
	}
	c.heat.Update(resonance, artifact, c.dt)

	observed := resonance
	target := c.heat.Target()
	damping := c.cfg.Rheology.EtaMin / c.fluid.Eta()
	c.wave.Update(damping, c.heat.Heat(), target-observed)

	u := c.wave.Sample(float64(c.step) * c.dt)

	c.log = append(c.log, telemetry.Record{
		Step: c.step,
		Context: telemetry.Context{
			Heat:      c.heat.Heat(),
			Viscosity: c.fluid.Eta(),
			Phase:     c.heat.Phase(),
		},
		Action: telemetry.Action{
			Amplitude: c.wave.Amplitude(),
			Frequency: c.wave.Frequency(),
			Waveform:  u,
		},
		Target:   target,
		Observed: observed,
		Reward:   -math.Abs(target - observed),
	})
	c.step++
	return u, nil
}

// #endregion advance

// #region accessors

// Telemetry copies out the CIEU log accumulated so far.
func (c *Controller) Telemetry() []telemetry.Record {
	out := make([]telemetry.Record, len(c.log))
	copy(out, c.log)
	return out
}

// LastRecord returns the most recent CIEU record. ok is false before the
// first completed step.
func (c *Controller) LastRecord() (rec telemetry.Record, ok bool) {
	if len(c.log) == 0 {
		return telemetry.Record{}, false
	}
	return c.log[len(c.log)-1], true
}

// Steps reports how many steps have completed.
func (c *Controller) Steps() int {
	return c.step
}

// Config returns the session configuration.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// FilterWeights copies out the learned echo coefficients.
func (c *Controller) FilterWeights() []float64 {
	return c.filter.Weights()
}

// Snapshot captures the live state for inspection and invariant checks.
func (c *Controller) Snapshot() Snapshot {
	var target, observed float64
	if rec, ok := c.LastRecord(); ok {
		target = rec.Target
		observed = rec.Observed
	}
	return Snapshot{
		Step:        c.step,
		Heat:        c.heat.Heat(),
		Phase:       c.heat.Phase(),
		Viscosity:   c.fluid.Eta(),
		ShearMemory: c.fluid.ShearMemory(),
		Amplitude:   c.wave.Amplitude(),
		Frequency:   c.wave.Frequency(),
		Target:      target,
		Observed:    observed,
		Residual:    c.filter.LastResidual(),
	}
}

// #endregion accessors
