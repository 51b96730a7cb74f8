package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/staking-sim/staking-sim/sim"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "staking-sim",
	Short: "Staking-dynamics simulator for tokenomics design",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadModel resolves the model for run/stress commands: a built-in preset
// when --preset is set, else the YAML file given by --config.
func loadModel(configPath, presetName string) (*sim.StakingModel, error) {
	var m *sim.StakingModel
	if presetName != "" {
		m = sim.PresetByName(presetName)
		if m == nil {
			logrus.Fatalf("Unknown preset %q; run 'staking-sim presets' to list them", presetName)
		}
	} else {
		if configPath == "" {
			logrus.Fatalf("No model provided; pass --config <file.yaml> or --preset <name>")
		}
		loaded, err := sim.LoadStakingModel(configPath)
		if err != nil {
			return nil, err
		}
		m = loaded
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(projectsCmd)
}
