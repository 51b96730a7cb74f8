package sim

// grossAPR annualizes the step's reward flow against the stake that earned
// it. Empty stake degrades to zero rather than faulting.
func grossAPR(m *StakingModel, rewardFlow, stakeTokens float64) float64 {
	if stakeTokens <= 0 {
		return 0
	}
	return rewardFlow / stakeTokens * m.Time.StepsPerYear()
}

// netAPR converts gross APR into the yield a staker actually perceives:
// operator commission comes off the top, then annualized risk drag
// (expected slashing loss, smart-contract risk, flat risk penalty), then the
// lockup penalty when the linear model is configured. Floored at 0.
func netAPR(m *StakingModel, gross float64) float64 {
	net := gross * (1 - m.Mechanics.CommissionPct)

	net -= m.Risk.SlashProbAnnual*m.Risk.SlashSeverityPct +
		m.Risk.SmartContractRiskAnnual +
		m.Demand.RiskPenaltyAnnual

	if m.Demand.LockupPenalty.Kind == LockupPenaltyLinear {
		net -= m.Mechanics.AverageLockupSteps() *
			m.Demand.LockupPenalty.PenaltyPerStep *
			m.Time.StepsPerYear()
	}

	if net < 0 {
		return 0
	}
	return net
}
