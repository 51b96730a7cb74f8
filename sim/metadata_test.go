package sim

import (
	"math"
	"testing"
)

func TestSummarizeMetadata_Aggregates(t *testing.T) {
	m := &StakingModel{Time: TimeConfig{HorizonSteps: 2}}
	steps := []StakingStep{
		{T: 0, GrossAPR: 0.10, NetAPR: 0.08, FeeCoveragePct: 20, RewardFlowTokens: 100,
			StakeTokens: 400, LockedTokens: 0, CirculatingSupply: 1000, StakingRatio: 0.40},
		{T: 1, GrossAPR: 0.12, NetAPR: 0.10, FeeCoveragePct: 30, RewardFlowTokens: 90,
			StakeTokens: 420, LockedTokens: 0, CirculatingSupply: 1000, StakingRatio: 0.43},
		{T: 2, GrossAPR: 0.14, NetAPR: 0.12, FeeCoveragePct: 40, RewardFlowTokens: 80,
			StakeTokens: 450, LockedTokens: 50, CirculatingSupply: 1000, StakingRatio: 0.45},
	}
	md := summarizeMetadata(m, steps)

	if md.FinalStakingRatio != 0.45 {
		t.Errorf("final ratio = %v, want 0.45", md.FinalStakingRatio)
	}
	if math.Abs(md.AvgGrossAPR-0.12) > 1e-12 {
		t.Errorf("avg gross = %v, want 0.12", md.AvgGrossAPR)
	}
	if math.Abs(md.AvgNetAPR-0.10) > 1e-12 {
		t.Errorf("avg net = %v, want 0.10", md.AvgNetAPR)
	}
	if math.Abs(md.AvgFeeCoveragePct-30) > 1e-12 {
		t.Errorf("avg fee coverage = %v, want 30", md.AvgFeeCoveragePct)
	}
	if math.Abs(md.FloatLockedPct-0.5) > 1e-12 { // (450+50)/1000
		t.Errorf("float locked = %v, want 0.5", md.FloatLockedPct)
	}
}

func TestSummarizeMetadata_RewardRunway(t *testing.T) {
	m := &StakingModel{Time: TimeConfig{HorizonSteps: 3}}
	steps := []StakingStep{
		{T: 0, RewardFlowTokens: 100},
		{T: 1, RewardFlowTokens: 60},
		{T: 2, RewardFlowTokens: 49}, // below half of the step-0 flow
		{T: 3, RewardFlowTokens: 10},
	}
	if got := summarizeMetadata(m, steps).RewardRunwaySteps; got != 2 {
		t.Errorf("runway = %d, want 2", got)
	}

	// Flow that never halves runs the full horizon.
	for i := range steps {
		steps[i].RewardFlowTokens = 100
	}
	if got := summarizeMetadata(m, steps).RewardRunwaySteps; got != 3 {
		t.Errorf("runway = %d, want full horizon 3", got)
	}

	// No rewards at all also reports the full horizon.
	for i := range steps {
		steps[i].RewardFlowTokens = 0
	}
	if got := summarizeMetadata(m, steps).RewardRunwaySteps; got != 3 {
		t.Errorf("runway = %d, want 3 when there is no flow", got)
	}
}

func TestSummarizeMetadata_EmptySteps(t *testing.T) {
	md := summarizeMetadata(&StakingModel{}, nil)
	if md != (StakingMetadata{}) {
		t.Errorf("metadata = %+v, want zero value", md)
	}
}
