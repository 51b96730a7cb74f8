package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/staking-sim/staking-sim/sim"
	"github.com/staking-sim/staking-sim/sim/export"
)

var (
	stressConfigPath string // YAML staking model path
	stressPresetName string // built-in preset name (overrides --config)
	stressShock      string // shock identifier
	stressOutputPath string // optional JSON output path
)

// stressCmd runs one shock against a baseline and prints the diff.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Stress-test a model against one shock and diff it with the baseline",
	Run: func(cmd *cobra.Command, args []string) {
		model, err := loadModel(stressConfigPath, stressPresetName)
		if err != nil {
			logrus.Fatalf("Loading model: %v", err)
		}

		logrus.Infof("Stress test: shock=%s archetype=%s", stressShock, model.Archetype)
		result := sim.RunStressTest(model, sim.ShockType(stressShock))

		if err := export.RenderStressTable(os.Stdout, result); err != nil {
			logrus.Fatalf("Rendering results: %v", err)
		}
		if stressOutputPath != "" {
			if err := export.WriteStressJSON(stressOutputPath, result); err != nil {
				logrus.Fatalf("Writing results: %v", err)
			}
			logrus.Infof("Results written to %s", stressOutputPath)
		}
	},
}

func init() {
	stressCmd.Flags().StringVar(&stressConfigPath, "config", "", "YAML staking model file")
	stressCmd.Flags().StringVar(&stressPresetName, "preset", "", "Built-in preset name (see 'staking-sim presets')")
	stressCmd.Flags().StringVar(&stressShock, "shock", string(sim.ShockRateHike),
		"Shock to apply (rate_hike, fee_drawdown, price_crash, slash_event)")
	stressCmd.Flags().StringVar(&stressOutputPath, "out", "", "Write stress result as JSON to this path")
}
