package thermo

import (
	"math"
	"testing"
)

func TestPhaseThresholds(t *testing.T) {
	cases := []struct {
		heat float64
		want Phase
	}{
		{0, PhaseWarmup},
		{29.999, PhaseWarmup},
		{30, PhaseClimb}, // strict <, boundary belongs to climb
		{79.999, PhaseClimb},
		{80, PhasePeak}, // boundary belongs to peak
		{100, PhasePeak},
	}
	for _, c := range cases {
		if got := PhaseFor(c.heat); got != c.want {
			t.Fatalf("PhaseFor(%v) = %s, want %s", c.heat, got, c.want)
		}
	}
}

func TestTargetLookup(t *testing.T) {
	cases := []struct {
		phase Phase
		want  float64
	}{
		{PhaseWarmup, 0.3},
		{PhaseClimb, 0.6},
		{PhasePeak, 0.9},
	}
	for _, c := range cases {
		if got := c.phase.TargetLevel(); got != c.want {
			t.Fatalf("%s target = %v, want %v", c.phase, got, c.want)
		}
	}
}

func TestHeatClampsAtZero(t *testing.T) {
	m := NewModel(DefaultConfig())
	for i := 0; i < 1000; i++ {
		if heat := m.Update(0, false, 0.01); heat != 0 {
			t.Fatalf("step %d: heat = %v, cooling must clamp at 0", i, heat)
		}
	}
	if m.Phase() != PhaseWarmup {
		t.Fatalf("phase = %s, want warmup at zero heat", m.Phase())
	}
}

func TestHeatClampsAtHundred(t *testing.T) {
	m := NewModel(DefaultConfig())
	for i := 0; i < 100000; i++ {
		m.Update(1.0, false, 0.01)
	}
	if m.Heat() != 100 {
		t.Fatalf("heat = %v, want clamp at 100", m.Heat())
	}
	if m.Phase() != PhasePeak {
		t.Fatalf("phase = %s, want peak", m.Phase())
	}
}

func TestSingleStepDelta(t *testing.T) {
	cfg := DefaultConfig()
	m := NewModel(cfg)

	heat := m.Update(0.5, false, 0.01)
	want := (cfg.HeatingGain*0.5 - cfg.CoolingBase) * 0.01 * cfg.Acceleration
	if math.Abs(heat-want) > 1e-12 {
		t.Fatalf("heat = %v, want %v", heat, want)
	}
}

func TestArtifactSuppressesHeating(t *testing.T) {
	m := NewModel(DefaultConfig())
	// Warm it up first so cooling has room to act.
	for i := 0; i < 2000; i++ {
		m.Update(1.0, false, 0.01)
	}
	before := m.Heat()

	// Full resonance but flagged: heating term is zeroed, cooling is boosted.
	after := m.Update(1.0, true, 0.01)
	if after >= before {
		t.Fatalf("heat rose from %v to %v despite artifact", before, after)
	}
}

func TestPhaseTracksHeat(t *testing.T) {
	m := NewModel(DefaultConfig())
	for i := 0; i < 50000; i++ {
		heat := m.Update(1.0, false, 0.01)
		if m.Phase() != PhaseFor(heat) {
			t.Fatalf("step %d: phase %s out of sync with heat %v", i, m.Phase(), heat)
		}
	}
}
