// Package export renders simulation results for the CLI: JSON files for
// downstream tooling and terminal tables for humans. It holds no simulation
// logic — pure formatting over the sim result records.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/staking-sim/staking-sim/sim"
)

// WriteOutputsJSON writes the full simulation result to path as indented JSON.
func WriteOutputsJSON(path string, outputs *sim.StakingOutputs) error {
	return writeJSON(path, outputs)
}

// WriteStressJSON writes a stress-test result to path as indented JSON.
func WriteStressJSON(path string, result *sim.StressTestResult) error {
	return writeJSON(path, result)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// RenderSummaryTable prints the run's summary card: metadata figures plus one
// row per cohort.
func RenderSummaryTable(w io.Writer, outputs *sim.StakingOutputs) error {
	md := outputs.Metadata

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	_ = table.Append([]string{"Final staking ratio", fmt.Sprintf("%.2f%%", md.FinalStakingRatio*100)})
	_ = table.Append([]string{"Avg gross APR", fmt.Sprintf("%.2f%%", md.AvgGrossAPR*100)})
	_ = table.Append([]string{"Avg net APR", fmt.Sprintf("%.2f%%", md.AvgNetAPR*100)})
	_ = table.Append([]string{"Avg fee coverage", fmt.Sprintf("%.1f%%", md.AvgFeeCoveragePct)})
	_ = table.Append([]string{"Reward runway", fmt.Sprintf("%d steps", md.RewardRunwaySteps)})
	_ = table.Append([]string{"Float locked", fmt.Sprintf("%.2f%%", md.FloatLockedPct*100)})
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering summary table: %w", err)
	}

	if len(outputs.Cohorts) == 0 {
		return nil
	}
	cohorts := tablewriter.NewWriter(w)
	cohorts.Header("Cohort", "Net APR", "Participation")
	for _, c := range outputs.Cohorts {
		_ = cohorts.Append([]string{
			c.Name,
			fmt.Sprintf("%.2f%%", c.NetAPR*100),
			fmt.Sprintf("%.1f%%", c.ParticipationPct),
		})
	}
	if err := cohorts.Render(); err != nil {
		return fmt.Errorf("rendering cohort table: %w", err)
	}
	return nil
}

// RenderStressTable prints the four stress-test figures.
func RenderStressTable(w io.Writer, result *sim.StressTestResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	_ = table.Append([]string{"Shock", string(result.Shock)})
	_ = table.Append([]string{"Final ratio delta", fmt.Sprintf("%+.2f pp", result.FinalRatioDelta*100)})
	_ = table.Append([]string{"Min staking ratio", fmt.Sprintf("%.2f%%", result.MinStakingRatio*100)})
	_ = table.Append([]string{"Recovery", fmt.Sprintf("%d steps", result.RecoverySteps)})
	_ = table.Append([]string{"Security budget reduction", fmt.Sprintf("%.2f%%", result.SecurityBudgetReduction*100)})
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering stress table: %w", err)
	}
	return nil
}
