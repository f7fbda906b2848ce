package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/controller"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/envsim"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/eval"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/replay"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/telemetry"
)

var (
	runSteps       int
	runSeed        int64
	runSensitivity float64
	runLabel       string
	runDB          string
	runCheck       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulated closed-loop session",
	Long: `Run the controller against the built-in environment simulator: each step
the previous sensor reading goes in, the next waveform sample comes out and
drives the simulator. With --db the full CIEU log is persisted for later
inspection and fixture export.`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runSteps, "steps", 3000, "number of control steps")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "simulator noise seed")
	runCmd.Flags().Float64Var(&runSensitivity, "sensitivity", 0.8, "simulated subject sensitivity")
	runCmd.Flags().StringVar(&runLabel, "label", "", "session label for the telemetry store")
	runCmd.Flags().StringVar(&runDB, "db", "", "persist the session to this SQLite file")
	runCmd.Flags().BoolVar(&runCheck, "check", false, "run invariant checks every step")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctrl, err := controller.New(cfg)
	if err != nil {
		return fmt.Errorf("build controller: %w", err)
	}

	simCfg := envsim.DefaultConfig()
	simCfg.SampleRate = cfg.SampleRate
	simCfg.Sensitivity = runSensitivity
	simCfg.Seed = runSeed
	sim := envsim.NewSimulator(simCfg)

	var checker *eval.Harness
	if runCheck {
		checker = eval.NewHarness(eval.ConfigFor(cfg))
	}

	rows := make([]telemetry.StepRow, 0, runSteps)
	statusEvery := runSteps / 10
	if statusEvery == 0 {
		statusEvery = 1
	}

	var y float64
	for i := 0; i < runSteps; i++ {
		u, err := ctrl.Advance(y)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		rec, _ := ctrl.LastRecord()
		rows = append(rows, telemetry.StepRow{RawObservation: y, Record: rec})

		if checker != nil {
			if res := checker.Check(ctrl.Snapshot()); !res.Passed {
				return fmt.Errorf("step %d: invariant check failed: %s", i, res.Reason)
			}
		}

		y = sim.Respond(u)

		if (i+1)%statusEvery == 0 {
			log.Printf("step %5d  heat=%6.2f phase=%-6s eta=%.3f amp=%.3f freq=%.3f reward=%+.3f",
				i+1, rec.Context.Heat, rec.Context.Phase, rec.Context.Viscosity,
				rec.Action.Amplitude, rec.Action.Frequency, rec.Reward)
		}
	}

	snap := ctrl.Snapshot()
	fmt.Printf("session complete: steps=%d heat=%.2f phase=%s arousal=%.1f\n",
		ctrl.Steps(), snap.Heat, snap.Phase, sim.Arousal())

	if runDB == "" {
		return nil
	}
	store, err := telemetry.NewStore(runDB)
	if err != nil {
		return err
	}
	defer store.Close()

	configJSON, err := json.Marshal(replay.FixtureConfigFrom(cfg))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	sessionID, err := store.CreateSession(runLabel, string(configJSON))
	if err != nil {
		return err
	}
	if err := store.AppendSteps(sessionID, rows); err != nil {
		return err
	}
	fmt.Printf("persisted session %s (%d steps) to %s\n", sessionID, len(rows), runDB)
	return nil
}
