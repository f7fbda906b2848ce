package canceller

import (
	"math"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/history"
)

// #region filter

// Filter is an online LMS estimator of the structural echo path from the
// controller's own recent output amplitudes to the sensor reading. Subtracting
// its prediction leaves a residual treated as the true external signal.
type Filter struct {
	config    Config
	weights   []float64
	outputs   *history.Ring // emitted amplitudes, newest-first
	residuals *history.Ring // recent residuals, newest-first
	seen      int           // amplitudes pushed so far
}

// NewFilter creates a filter with zeroed weights and history.
func NewFilter(config Config) *Filter {
	return &Filter{
		config:    config,
		weights:   make([]float64, config.Taps),
		outputs:   history.NewRing(config.Taps),
		residuals: history.NewRing(config.ResidualWindow),
	}
}

// #endregion filter

// #region cancel

// Cancel subtracts the predicted echo from obs and returns the residual.
// It then runs one LMS weight update, records the residual, and pushes
// lastAmplitude (the amplitude emitted on the previous step) into the output
// history. Until Taps amplitudes have been pushed the prediction is held at 0
// and no weight update occurs.
func (f *Filter) Cancel(obs, lastAmplitude float64) float64 {
	warm := f.seen >= f.config.Taps

	var pred float64
	if warm {
		for i := 0; i < f.config.Taps; i++ {
			pred += f.weights[i] * f.outputs.At(i)
		}
	}
	e := obs - pred

	if warm {
		for i := 0; i < f.config.Taps; i++ {
			f.weights[i] += f.config.LearningRate * e * f.outputs.At(i)
		}
	}

	f.residuals.Push(e)
	f.outputs.Push(lastAmplitude)
	f.seen++
	return e
}

// #endregion cancel

// #region shear

// Shear returns the shear proxy |e_t - e_{t-2}|, or 0 until three residuals
// have been recorded.
func (f *Filter) Shear() float64 {
	if f.residuals.Len() < 3 {
		return 0
	}
	return math.Abs(f.residuals.At(0) - f.residuals.At(2))
}

// #endregion shear

// #region accessors

// Weights copies out the learned echo coefficients.
func (f *Filter) Weights() []float64 {
	out := make([]float64, len(f.weights))
	copy(out, f.weights)
	return out
}

// LastResidual returns the most recent residual, 0 before the first step.
func (f *Filter) LastResidual() float64 {
	return f.residuals.At(0)
}

// #endregion accessors
