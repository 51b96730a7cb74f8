package sim

import (
	"reflect"
	"testing"
)

func TestRunStressTest_SlashEvent(t *testing.T) {
	m := PresetL1PoSConservative()
	baseline := ComputeStakingSeries(m)
	res := RunStressTest(m, ShockSlashEvent)

	if res.Shock != ShockSlashEvent {
		t.Errorf("shock = %q, want slash_event", res.Shock)
	}
	if res.MinStakingRatio > baseline.Metadata.FinalStakingRatio {
		t.Errorf("min shocked ratio %v exceeds baseline final %v",
			res.MinStakingRatio, baseline.Metadata.FinalStakingRatio)
	}
	if res.SecurityBudgetReduction < 0 {
		t.Errorf("security budget reduction %v, want >= 0 for a value-destroying shock",
			res.SecurityBudgetReduction)
	}
	if res.FinalRatioDelta >= 0 {
		t.Errorf("final ratio delta %v, want < 0 under forced slashing", res.FinalRatioDelta)
	}
}

func TestRunStressTest_RateHikeLowersParticipation(t *testing.T) {
	res := RunStressTest(PresetL1PoSConservative(), ShockRateHike)
	if res.FinalRatioDelta >= 0 {
		t.Errorf("final ratio delta %v, want < 0 when opportunity cost rises", res.FinalRatioDelta)
	}
}

func TestRunStressTest_UnknownShockIsBaseline(t *testing.T) {
	m := PresetRestakingAggressive()
	res := RunStressTest(m, ShockType("asteroid"))
	if res.FinalRatioDelta != 0 {
		t.Errorf("final ratio delta %v, want 0", res.FinalRatioDelta)
	}
	if res.SecurityBudgetReduction != 0 {
		t.Errorf("security budget reduction %v, want 0", res.SecurityBudgetReduction)
	}
	if res.RecoverySteps != 0 {
		t.Errorf("recovery steps %d, want 0 for identical runs", res.RecoverySteps)
	}
}

func TestRunStressTest_NegativeHorizonStaysTotal(t *testing.T) {
	m := PresetL1PoSConservative()
	m.Time.HorizonSteps = -3
	res := RunStressTest(m, ShockSlashEvent)
	if res.MinStakingRatio != 0 || res.RecoverySteps != 0 || res.SecurityBudgetReduction != 0 {
		t.Errorf("result = %+v, want zeroed figures for an empty run", res)
	}
}

func TestRunStressTest_DoesNotMutateCaller(t *testing.T) {
	m := PresetL1PoSConservative()
	snapshot := m.Clone()
	for _, shock := range []ShockType{ShockRateHike, ShockFeeDrawdown, ShockPriceCrash, ShockSlashEvent} {
		RunStressTest(m, shock)
	}
	if !reflect.DeepEqual(m, snapshot) {
		t.Error("stress run mutated the caller's model")
	}
}

func TestApplyShock_Mutations(t *testing.T) {
	m := PresetL1PoSConservative()

	hiked := applyShock(m, ShockRateHike)
	if got, want := hiked.Demand.OpportunityCostAnnual, m.Demand.OpportunityCostAnnual+0.03; got != want {
		t.Errorf("opportunity cost = %v, want %v", got, want)
	}

	drawn := applyShock(m, ShockFeeDrawdown)
	if got, want := drawn.Rewards.Fees.BasePerStep, m.Rewards.Fees.BasePerStep*0.5; got != want {
		t.Errorf("fee base = %v, want %v", got, want)
	}

	crashed := applyShock(m, ShockPriceCrash)
	if got, want := crashed.Price.Flat, m.InitialPrice*0.4; got != want {
		t.Errorf("flat price = %v, want %v", got, want)
	}

	slashed := applyShock(m, ShockSlashEvent)
	if slashed.Risk.SlashProbAnnual != 1.0 || slashed.Risk.SlashSeverityPct != 0.10 {
		t.Errorf("slash params = %+v", slashed.Risk)
	}
}

func TestApplyShock_PriceCrashIgnoresNonFlatScenarios(t *testing.T) {
	m := PresetDeFiBonding() // triphase price path
	crashed := applyShock(m, ShockPriceCrash)
	if !reflect.DeepEqual(crashed.Price, m.Price) {
		t.Errorf("price scenario changed: %+v", crashed.Price)
	}
}

func TestModelClone_Independent(t *testing.T) {
	m := PresetL1PoSConservative()
	c := m.Clone()

	c.UnlockSchedule[0].Amount = 1
	c.Rewards.Inflation.AnnualRate = 99
	c.Rewards.Fees.BasePerStep = 0

	if m.UnlockSchedule[0].Amount == 1 {
		t.Error("unlock schedule shared with clone")
	}
	if m.Rewards.Inflation.AnnualRate == 99 {
		t.Error("inflation block shared with clone")
	}
	if m.Rewards.Fees.BasePerStep == 0 {
		t.Error("fee block shared with clone")
	}
}
