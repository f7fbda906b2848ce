package eval

import (
	"testing"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/controller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

func validSnapshot() controller.Snapshot {
	return controller.Snapshot{
		Step:      10,
		Heat:      42,
		Phase:     thermo.PhaseClimb,
		Viscosity: 3.0,
		Amplitude: 0.4,
		Frequency: 1.5,
		Target:    0.6,
		Observed:  0.5,
	}
}

func TestCheckPasses(t *testing.T) {
	h := NewHarness(ConfigFor(config.Default()))
	res := h.Check(validSnapshot())
	if !res.Passed {
		t.Fatalf("valid snapshot failed: %s", res.Reason)
	}
	if res.Reason != "" {
		t.Fatalf("passing result carries reason %q", res.Reason)
	}
	if len(res.Metrics) == 0 {
		t.Fatal("expected metrics")
	}
	for _, m := range res.Metrics {
		if !m.Pass {
			t.Fatalf("metric %s failed on valid snapshot", m.Name)
		}
	}
}

func TestCheckFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*controller.Snapshot)
	}{
		{"viscosity below floor", func(s *controller.Snapshot) { s.Viscosity = 0.1 }},
		{"viscosity above ceiling", func(s *controller.Snapshot) { s.Viscosity = 7.0 }},
		{"negative heat", func(s *controller.Snapshot) { s.Heat = -1 }},
		{"heat overflow", func(s *controller.Snapshot) { s.Heat = 101 }},
		{"phase out of sync", func(s *controller.Snapshot) { s.Phase = thermo.PhasePeak }},
		{"amplitude overshoot", func(s *controller.Snapshot) { s.Amplitude = 9.0 }},
		{"frequency below base", func(s *controller.Snapshot) { s.Frequency = 0.1 }},
		{"observed above one", func(s *controller.Snapshot) { s.Observed = 1.2 }},
	}
	h := NewHarness(ConfigFor(config.Default()))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := validSnapshot()
			c.mutate(&snap)
			res := h.Check(snap)
			if res.Passed {
				t.Fatal("expected failure")
			}
			if res.Reason == "" {
				t.Fatal("failure must carry a reason")
			}
		})
	}
}

func TestLiveControllerAlwaysPasses(t *testing.T) {
	cfg := config.Default()
	c, err := controller.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := NewHarness(ConfigFor(cfg))

	obs := 0.6
	for i := 0; i < 2000; i++ {
		if _, err := c.Advance(obs); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		obs = -obs
		if res := h.Check(c.Snapshot()); !res.Passed {
			t.Fatalf("step %d: %s", i, res.Reason)
		}
	}
}
