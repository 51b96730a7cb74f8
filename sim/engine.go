package sim

import "github.com/sirupsen/logrus"

// LoopState is the accumulator threaded through the step loop: the staking
// ratio plus the adoption-share scalars of the optional liquid-staking and
// vote-escrow blocks. It is an explicit value (returned alongside each step
// record) so that a single step can be unit-tested in isolation.
type LoopState struct {
	Ratio       float64 // staking ratio carried into the next step
	LSAdoption  float64 // liquid-staking adoption share (0 when block absent)
	VeLockShare float64 // vote-escrow locked share of supply (0 when block absent)
}

// initialLoopState seeds the accumulator from the model: the staking ratio
// starts at base participation, the adoption scalars at their configured
// initial values.
func initialLoopState(m *StakingModel) LoopState {
	st := LoopState{Ratio: m.Demand.BaseParticipation}
	if m.LiquidStaking != nil {
		st.LSAdoption = m.LiquidStaking.InitialAdoption
	}
	if m.VeGovernance != nil {
		st.VeLockShare = m.VeGovernance.InitialLockShare
	}
	return st
}

// AdvanceStakingStep executes one step of the feedback loop and returns the
// step record together with the state to carry into step t+1.
//
// The step's economics (reward flow, stake, APRs) are computed against the
// ratio inherited from the previous step; the ratio is then advanced toward
// its sigmoid target, and the advanced value is what the record logs. Rewards
// paid this step are sized against last step's locked-in stake level, so a
// step's logged ratio intentionally leads its logged stake by one adjustment.
func AdvanceStakingStep(st LoopState, t int, price, supply float64, m *StakingModel) (StakingStep, LoopState) {
	ratioPre := st.Ratio

	rb := rewardsToStakers(m, t, price, supply, ratioPre)
	rewardFlow := rb.Total()

	stakeTokens := ratioPre * supply
	gross := grossAPR(m, rewardFlow, stakeTokens)
	net := netAPR(m, gross)

	target := targetStakingRatio(m.Demand, net)
	next := st
	next.Ratio = advanceStakingRatio(m, ratioPre, target)

	var lockedTokens float64
	if m.VeGovernance != nil {
		lockedTokens = st.VeLockShare * supply
		next.VeLockShare = approach(st.VeLockShare, m.VeGovernance.LockShareCeiling, m.VeGovernance.AdoptionSpeed)
	}
	if m.LiquidStaking != nil {
		next.LSAdoption = approach(st.LSAdoption, m.LiquidStaking.AdoptionCeiling, m.LiquidStaking.AdoptionSpeed)
	}

	step := StakingStep{
		T:                 t,
		Price:             price,
		CirculatingSupply: supply,
		StakeTokens:       stakeTokens,
		StakingRatio:      next.Ratio,
		TargetRatio:       target,
		LockedTokens:      lockedTokens,
		RewardFlowTokens:  rewardFlow,
		GrossAPR:          gross,
		NetAPR:            net,
		FeeCoveragePct:    rb.FeeCoveragePct(),
		StakeValueUSD:     stakeTokens * price,
	}
	return step, next
}

// approach advances a scalar toward a ceiling by closing a fixed fraction of
// the remaining gap each step.
func approach(share, ceiling, speed float64) float64 {
	return share + speed*(ceiling-share)
}

// ComputeStakingSeries runs the full pipeline on one model: price and supply
// series up front, the sequential step loop over 0..=HorizonSteps, then the
// cohort and metadata passes. Total over any structurally valid model — it
// never fails, and malformed optional blocks just mean the feature is
// disabled.
func ComputeStakingSeries(m *StakingModel) *StakingOutputs {
	logrus.Debugf("staking series: archetype=%s horizon=%d unit=%s",
		m.Archetype, m.Time.HorizonSteps, m.Time.StepUnit)

	prices := GeneratePriceSeries(m)
	supplies := GenerateSupplySeries(m)

	steps := make([]StakingStep, 0, len(prices))
	st := initialLoopState(m)
	for t := 0; t <= m.Time.HorizonSteps; t++ {
		var step StakingStep
		step, st = AdvanceStakingStep(st, t, prices[t], supplies[t], m)
		steps = append(steps, step)
	}

	return &StakingOutputs{
		Steps:    steps,
		Cohorts:  computeCohorts(m, steps, st),
		Metadata: summarizeMetadata(m, steps),
	}
}
