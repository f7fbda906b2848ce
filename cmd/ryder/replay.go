package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/replay"
)

var replayFixture string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a fixture and verify its expectations",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := replay.LoadFixture(replayFixture)
		if err != nil {
			return err
		}
		summary, err := replay.Verify(f)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", replayFixture, err)
		}
		fmt.Printf("replay ok: %s\n", f.Description)
		fmt.Printf("  steps=%d heat=%.2f phase=%s eta=%.3f amp=%.3f mean_reward=%+.4f transitions=%d\n",
			summary.Steps, summary.FinalHeat, summary.FinalPhase, summary.FinalViscosity,
			summary.FinalAmplitude, summary.MeanReward, summary.PhaseTransitions)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayFixture, "fixture", "", "path to fixture JSON")
	replayCmd.MarkFlagRequired("fixture")
}
