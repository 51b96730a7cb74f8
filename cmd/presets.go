package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/staking-sim/staking-sim/sim"
)

// presetsCmd lists the built-in archetype presets.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in archetype presets",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Archetype", "Horizon", "Step unit")
		for _, name := range sim.PresetNames() {
			m := sim.PresetByName(name)
			_ = table.Append([]string{
				name,
				string(m.Archetype),
				strconv.Itoa(m.Time.HorizonSteps),
				m.Time.StepUnit,
			})
		}
		if err := table.Render(); err != nil {
			logrus.Fatalf("Rendering presets: %v", err)
		}
	},
}
