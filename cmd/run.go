package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/staking-sim/staking-sim/sim"
	"github.com/staking-sim/staking-sim/sim/export"
)

var (
	runConfigPath string // YAML staking model path
	runPresetName string // built-in preset name (overrides --config)
	runOutputPath string // optional JSON output path
)

// runCmd executes one simulation and prints the summary tables.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the staking-dynamics simulation",
	Run: func(cmd *cobra.Command, args []string) {
		model, err := loadModel(runConfigPath, runPresetName)
		if err != nil {
			logrus.Fatalf("Loading model: %v", err)
		}

		logrus.Infof("Starting simulation: archetype=%s, horizon=%d %s steps",
			model.Archetype, model.Time.HorizonSteps, model.Time.StepUnit)
		startTime := time.Now()

		outputs := sim.ComputeStakingSeries(model)

		logrus.Infof("Simulation complete in %v (%d steps)", time.Since(startTime), len(outputs.Steps))

		if err := export.RenderSummaryTable(os.Stdout, outputs); err != nil {
			logrus.Fatalf("Rendering results: %v", err)
		}
		if runOutputPath != "" {
			if err := export.WriteOutputsJSON(runOutputPath, outputs); err != nil {
				logrus.Fatalf("Writing results: %v", err)
			}
			logrus.Infof("Results written to %s", runOutputPath)
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML staking model file")
	runCmd.Flags().StringVar(&runPresetName, "preset", "", "Built-in preset name (see 'staking-sim presets')")
	runCmd.Flags().StringVar(&runOutputPath, "out", "", "Write full step series as JSON to this path")
}
