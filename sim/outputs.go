package sim

// StakingStep is one record of the simulated series, appended per step.
//
// Note the lag contract: StakingRatio is the post-adjustment value carried
// into step t+1, while StakeTokens, GrossAPR, and NetAPR reflect the
// pre-adjustment ratio the step started from. Rewards paid "this step" are
// sized against last step's locked-in stake level.
type StakingStep struct {
	T                 int     `json:"t"`
	Price             float64 `json:"price"`
	CirculatingSupply float64 `json:"circulating_supply"`
	StakeTokens       float64 `json:"stake_tokens"`
	StakingRatio      float64 `json:"staking_ratio"`
	TargetRatio       float64 `json:"target_ratio"`
	LockedTokens      float64 `json:"locked_tokens"` // vote-escrow only, else 0
	RewardFlowTokens  float64 `json:"reward_flow_tokens"`
	GrossAPR          float64 `json:"gross_apr"`
	NetAPR            float64 `json:"net_apr"`
	FeeCoveragePct    float64 `json:"fee_coverage_pct"`
	StakeValueUSD     float64 `json:"stake_value_usd"`
}

// CohortYield is the derived yield picture for one optional sub-population.
type CohortYield struct {
	Name             string  `json:"name"`
	NetAPR           float64 `json:"net_apr"`
	ParticipationPct float64 `json:"participation_pct"`
}

// StakingMetadata aggregates the completed series into summary figures.
type StakingMetadata struct {
	FinalStakingRatio float64 `json:"final_staking_ratio"`
	AvgGrossAPR       float64 `json:"avg_gross_apr"`
	AvgNetAPR         float64 `json:"avg_net_apr"`
	AvgFeeCoveragePct float64 `json:"avg_fee_coverage_pct"`
	RewardRunwaySteps int     `json:"reward_runway_steps"` // first step reward flow drops below half of step 0's
	FloatLockedPct    float64 `json:"float_locked_pct"`    // (final stake + final locked) / final circulating supply
}

// StakingOutputs is the complete result of one simulation run:
// horizon+1 step records, zero or more cohort yields, and the summary.
type StakingOutputs struct {
	Steps    []StakingStep   `json:"steps"`
	Cohorts  []CohortYield   `json:"cohorts"`
	Metadata StakingMetadata `json:"metadata"`
}

// StressTestResult reports the diff between a shocked run and its baseline.
type StressTestResult struct {
	Shock ShockType `json:"shock"`
	// Change in final staking ratio versus the baseline run.
	FinalRatioDelta float64 `json:"final_ratio_delta"`
	// Minimum staking ratio observed anywhere in the shocked run.
	MinStakingRatio float64 `json:"min_staking_ratio"`
	// First step index at which the shocked ratio is within tolerance of the
	// baseline; the full horizon when it never re-converges.
	RecoverySteps int `json:"recovery_steps"`
	// Proportional reduction of total USD stake value: 1 - shocked/baseline.
	SecurityBudgetReduction float64 `json:"security_budget_reduction"`
}
