package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/telemetry"
)

var (
	inspectDB      string
	inspectSession string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List or summarize persisted sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := telemetry.NewStore(inspectDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if inspectSession == "" {
			infos, err := store.ListSessions()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("no sessions")
				return nil
			}
			for _, info := range infos {
				fmt.Printf("%s  %-20s  %6d steps  %s\n", info.ID, info.Label, info.Steps, info.CreatedAt)
			}
			return nil
		}

		rows, err := store.LoadSession(inspectSession)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("session %s has no steps", inspectSession)
		}
		var rewardSum float64
		for _, row := range rows {
			rewardSum += row.Record.Reward
		}
		last := rows[len(rows)-1].Record
		fmt.Printf("session %s: %d steps\n", inspectSession, len(rows))
		fmt.Printf("  final: heat=%.2f phase=%s eta=%.3f amp=%.3f freq=%.3f\n",
			last.Context.Heat, last.Context.Phase, last.Context.Viscosity,
			last.Action.Amplitude, last.Action.Frequency)
		fmt.Printf("  mean reward: %+.4f\n", rewardSum/float64(len(rows)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectDB, "db", "", "path to telemetry SQLite file")
	inspectCmd.Flags().StringVar(&inspectSession, "session", "", "session ID to summarize")
	inspectCmd.MarkFlagRequired("db")
}
