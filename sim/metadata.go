package sim

import "gonum.org/v1/gonum/stat"

// summarizeMetadata aggregates the completed step sequence into the summary
// record consumed by the rendering layer. Empty sequences and zero divisors
// degrade to zero-valued fields.
func summarizeMetadata(m *StakingModel, steps []StakingStep) StakingMetadata {
	var md StakingMetadata
	if len(steps) == 0 {
		return md
	}

	gross := make([]float64, len(steps))
	net := make([]float64, len(steps))
	feeCov := make([]float64, len(steps))
	for i, s := range steps {
		gross[i] = s.GrossAPR
		net[i] = s.NetAPR
		feeCov[i] = s.FeeCoveragePct
	}

	final := steps[len(steps)-1]
	md.FinalStakingRatio = final.StakingRatio
	md.AvgGrossAPR = stat.Mean(gross, nil)
	md.AvgNetAPR = stat.Mean(net, nil)
	md.AvgFeeCoveragePct = stat.Mean(feeCov, nil)
	md.RewardRunwaySteps = rewardRunway(steps, m.Time.HorizonSteps)
	if final.CirculatingSupply > 0 {
		md.FloatLockedPct = (final.StakeTokens + final.LockedTokens) / final.CirculatingSupply
	}
	return md
}

// rewardRunway is the first step index at which reward flow falls below 50%
// of the step-0 flow, or the full horizon when it never does (including the
// no-rewards-at-all case).
func rewardRunway(steps []StakingStep, horizon int) int {
	initial := steps[0].RewardFlowTokens
	if initial <= 0 {
		return horizon
	}
	for _, s := range steps {
		if s.RewardFlowTokens < 0.5*initial {
			return s.T
		}
	}
	return horizon
}
