package sim

import (
	"math"
	"testing"
)

func TestGrossAPR_Annualizes(t *testing.T) {
	m := &StakingModel{Time: TimeConfig{StepUnit: StepUnitMonthly}}
	// 1,000 tokens per step against 120,000 staked = 10% APR.
	if got := grossAPR(m, 1_000, 120_000); math.Abs(got-0.10) > 1e-12 {
		t.Errorf("gross APR = %v, want 0.10", got)
	}
}

func TestGrossAPR_EmptyStakeDegradesToZero(t *testing.T) {
	m := &StakingModel{Time: TimeConfig{StepUnit: StepUnitWeekly}}
	if got := grossAPR(m, 1_000, 0); got != 0 {
		t.Errorf("gross APR = %v, want 0 on empty stake", got)
	}
}

func TestNetAPR_CommissionAndRisk(t *testing.T) {
	m := &StakingModel{
		Time:      TimeConfig{StepUnit: StepUnitMonthly},
		Mechanics: StakingMechanics{CommissionPct: 0.10},
		Risk: RiskAssumptions{
			SlashProbAnnual:         0.02,
			SlashSeverityPct:        0.5,
			SmartContractRiskAnnual: 0.005,
		},
		Demand: DemandModel{RiskPenaltyAnnual: 0.01},
	}
	// 0.10*0.9 - (0.02*0.5 + 0.005 + 0.01) = 0.065
	if got := netAPR(m, 0.10); math.Abs(got-0.065) > 1e-12 {
		t.Errorf("net APR = %v, want 0.065", got)
	}
}

func TestNetAPR_LinearLockupPenalty(t *testing.T) {
	m := &StakingModel{
		Time: TimeConfig{StepUnit: StepUnitMonthly},
		Mechanics: StakingMechanics{
			Lockups: []LockupOption{{DurationSteps: 6}, {DurationSteps: 2}},
		},
		Demand: DemandModel{
			LockupPenalty: LockupPenaltyModel{Kind: LockupPenaltyLinear, PenaltyPerStep: 0.0005},
		},
	}
	// avg 4 lock steps * 0.0005 * 12 = 0.024 drag
	if got := netAPR(m, 0.10); math.Abs(got-0.076) > 1e-12 {
		t.Errorf("net APR = %v, want 0.076", got)
	}

	// Penalty model "none" leaves the lockups out of the yield entirely.
	m.Demand.LockupPenalty.Kind = LockupPenaltyNone
	if got := netAPR(m, 0.10); math.Abs(got-0.10) > 1e-12 {
		t.Errorf("net APR = %v, want 0.10 without penalty model", got)
	}
}

func TestNetAPR_FlooredAtZero(t *testing.T) {
	m := &StakingModel{
		Time: TimeConfig{StepUnit: StepUnitMonthly},
		Risk: RiskAssumptions{SlashProbAnnual: 1.0, SlashSeverityPct: 0.5},
	}
	if got := netAPR(m, 0.02); got != 0 {
		t.Errorf("net APR = %v, want 0 floor", got)
	}
}
