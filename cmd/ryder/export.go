package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/replay"
	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/telemetry"
)

var (
	exportDB      string
	exportSession string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export-fixture",
	Short: "Export a persisted session as a replay fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := telemetry.NewStore(exportDB)
		if err != nil {
			return err
		}
		defer store.Close()

		configJSON, err := store.SessionConfig(exportSession)
		if err != nil {
			return err
		}
		var fc replay.FixtureConfig
		if err := json.Unmarshal([]byte(configJSON), &fc); err != nil {
			return fmt.Errorf("parse session config: %w", err)
		}

		rows, err := store.LoadSession(exportSession)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("session %s has no steps", exportSession)
		}
		observations := make([]float64, len(rows))
		for i, row := range rows {
			observations[i] = row.RawObservation
		}

		f := &replay.Fixture{
			Description:  fmt.Sprintf("exported from session %s", exportSession),
			Config:       fc,
			Observations: observations,
			Expect:       &replay.Expectation{Steps: len(rows)},
		}
		if err := replay.SaveFixture(exportOut, f); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d observations)\n", exportOut, len(observations))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDB, "db", "", "path to telemetry SQLite file")
	exportCmd.Flags().StringVar(&exportSession, "session", "", "session ID to export")
	exportCmd.Flags().StringVar(&exportOut, "out", "fixture.json", "output fixture path")
	exportCmd.MarkFlagRequired("db")
	exportCmd.MarkFlagRequired("session")
}
