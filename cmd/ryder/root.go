package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/config"
)

var (
	cfgFile string
	preset  string
)

// rootCmd is the base command for the ryder CLI.
var rootCmd = &cobra.Command{
	Use:   "ryder",
	Short: "Adaptive closed-loop waveform controller",
	Long: `ryder runs the adaptive feedback controller: an LMS filter cancels the
actuator's own structural echo out of the sensor channel, a thermodynamic
phase model tracks engagement and sets the target operating point, and the
waveform synthesizer retunes amplitude and frequency every sample to close
the gap.

Commands:
  run             Run a simulated closed-loop session
  replay          Replay a fixture and verify its expectations
  inspect         List or summarize persisted sessions
  export-fixture  Export a persisted session as a replay fixture`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to tuning YAML (defaults to built-in preset)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "default", "built-in tuning preset (default|gentle)")
}

// loadConfig resolves the session configuration: an explicit file wins,
// otherwise the named preset.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	switch preset {
	case "default":
		return config.Default(), nil
	case "gentle":
		return config.Gentle(), nil
	default:
		return config.Config{}, fmt.Errorf("unknown preset %q (want default or gentle)", preset)
	}
}
