package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staking-sim/staking-sim/sim"
)

func TestWriteOutputsJSON_StableFieldNames(t *testing.T) {
	outputs := sim.ComputeStakingSeries(sim.PresetLiquidStakingGrowth())
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteOutputsJSON(path, outputs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "steps")
	assert.Contains(t, decoded, "cohorts")
	assert.Contains(t, decoded, "metadata")

	steps := decoded["steps"].([]any)
	require.NotEmpty(t, steps)
	first := steps[0].(map[string]any)
	for _, field := range []string{
		"t", "price", "circulating_supply", "stake_tokens", "staking_ratio",
		"target_ratio", "locked_tokens", "reward_flow_tokens", "gross_apr",
		"net_apr", "fee_coverage_pct", "stake_value_usd",
	} {
		assert.Contains(t, first, field)
	}
}

func TestWriteStressJSON_StableFieldNames(t *testing.T) {
	result := sim.RunStressTest(sim.PresetL1PoSConservative(), sim.ShockSlashEvent)
	path := filepath.Join(t.TempDir(), "stress.json")
	require.NoError(t, WriteStressJSON(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, field := range []string{
		"shock", "final_ratio_delta", "min_staking_ratio",
		"recovery_steps", "security_budget_reduction",
	} {
		assert.Contains(t, decoded, field)
	}
}

func TestRenderSummaryTable_IncludesCohorts(t *testing.T) {
	outputs := sim.ComputeStakingSeries(sim.PresetLiquidStakingGrowth())
	var buf bytes.Buffer
	require.NoError(t, RenderSummaryTable(&buf, outputs))
	assert.Contains(t, buf.String(), "Final staking ratio")
	assert.Contains(t, buf.String(), "liquid_staking")
}

func TestRenderStressTable(t *testing.T) {
	result := sim.RunStressTest(sim.PresetL1PoSConservative(), sim.ShockRateHike)
	var buf bytes.Buffer
	require.NoError(t, RenderStressTable(&buf, result))
	assert.Contains(t, buf.String(), "rate_hike")
	assert.Contains(t, buf.String(), "Security budget reduction")
}
