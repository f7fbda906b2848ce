package replay

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
)

func TestRunDeterministic(t *testing.T) {
	cfg := config.Default()
	obs := make([]float64, 500)
	for i := range obs {
		obs[i] = 0.4
		if i%2 == 1 {
			obs[i] = -0.4
		}
	}

	r1, s1, err := Run(cfg, obs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, s2, err := Run(cfg, obs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("summaries diverged: %+v != %+v", s1, s2)
	}
	for i := range r1 {
		if r1[i].Command != r2[i].Command {
			t.Fatalf("step %d: commands diverged", i)
		}
	}
	if s1.Steps != len(obs) || s1.ChecksFailed != 0 {
		t.Fatalf("unexpected summary: %+v", s1)
	}
}

func TestRunRejectsNonFinite(t *testing.T) {
	obs := []float64{0.1, 0.2, math.NaN()}
	if _, _, err := Run(config.Default(), obs); err == nil {
		t.Fatal("expected error from non-finite observation")
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	maxHeat := 5.0
	f := &Fixture{
		Description:  "quiet sensor stays in warmup",
		Config:       FixtureConfigFrom(config.Default()),
		Observations: make([]float64, 200),
		Expect: &Expectation{
			Steps:        200,
			MaxFinalHeat: &maxHeat,
			FinalPhase:   "warmup",
		},
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := SaveFixture(path, f); err != nil {
		t.Fatalf("SaveFixture: %v", err)
	}
	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if loaded.Description != f.Description || len(loaded.Observations) != 200 {
		t.Fatalf("fixture round-trip mangled: %+v", loaded)
	}
	if loaded.Config.ToConfig() != config.Default() {
		t.Fatal("config did not survive the round trip")
	}

	if _, err := Verify(loaded); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyCatchesWrongExpectation(t *testing.T) {
	minHeat := 50.0
	f := &Fixture{
		Config:       FixtureConfigFrom(config.Default()),
		Observations: make([]float64, 100), // all zero, heat stays 0
		Expect:       &Expectation{MinFinalHeat: &minHeat},
	}
	if _, err := Verify(f); err == nil {
		t.Fatal("expected expectation failure")
	}
}

func TestVerifyRejectsInvalidConfig(t *testing.T) {
	f := &Fixture{
		Config:       FixtureConfigFrom(config.Default()),
		Observations: []float64{0},
	}
	f.Config.Rheology.EtaMin = 0
	if _, err := Verify(f); err == nil {
		t.Fatal("expected config validation failure")
	}
}
