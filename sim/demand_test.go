package sim

import (
	"math"
	"testing"
)

func TestSigmoid_Bounds(t *testing.T) {
	if got := sigmoid(0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("sigmoid(0) = %v, want 0.5", got)
	}
	if got := sigmoid(50); got <= 0.999 {
		t.Errorf("sigmoid(50) = %v, want near 1", got)
	}
	if got := sigmoid(-50); got >= 0.001 {
		t.Errorf("sigmoid(-50) = %v, want near 0", got)
	}
}

func TestSigmoidK_Presets(t *testing.T) {
	cases := []struct {
		elasticity string
		customK    float64
		want       float64
	}{
		{ElasticityLow, 0, 3},
		{ElasticityMedium, 0, 6},
		{ElasticityHigh, 0, 10},
		{ElasticityCustom, 4.5, 4.5},
		{"", 0, 6}, // unset defaults to medium
	}
	for _, c := range cases {
		d := DemandModel{Elasticity: c.elasticity, CustomK: c.customK}
		if got := d.SigmoidK(); got != c.want {
			t.Errorf("SigmoidK(%q) = %v, want %v", c.elasticity, got, c.want)
		}
	}
}

func TestTargetStakingRatio_ZeroSpreadIsMidpoint(t *testing.T) {
	d := DemandModel{
		OpportunityCostAnnual: 0.05,
		Elasticity:            ElasticityMedium,
		BaseParticipation:     0.2,
		MaxParticipation:      0.8,
	}
	// netAPR equal to opportunity cost lands exactly between base and max.
	if got := targetStakingRatio(d, 0.05); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("target = %v, want 0.5", got)
	}
}

func TestTargetStakingRatio_StaysWithinBand(t *testing.T) {
	d := DemandModel{
		OpportunityCostAnnual: 0.05,
		Elasticity:            ElasticityHigh,
		BaseParticipation:     0.3,
		MaxParticipation:      0.7,
	}
	for _, net := range []float64{0, 0.01, 0.05, 0.2, 5.0} {
		got := targetStakingRatio(d, net)
		if got < 0.3 || got > 0.7 {
			t.Errorf("target(%v) = %v, outside [0.3, 0.7]", net, got)
		}
	}
}

func TestAdvanceStakingRatio_PartialAdjustment(t *testing.T) {
	m := &StakingModel{
		Demand: DemandModel{MaxParticipation: 1.0, AdjustmentSpeed: 0.25},
	}
	if got := advanceStakingRatio(m, 0.4, 0.8); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("advanced ratio = %v, want 0.5 (quarter of the gap)", got)
	}
}

func TestAdvanceStakingRatio_CapClamps(t *testing.T) {
	cap := 0.45
	m := &StakingModel{
		Demand:    DemandModel{MaxParticipation: 0.9, AdjustmentSpeed: 1.0},
		Mechanics: StakingMechanics{MaxStakePct: &cap},
	}
	if got := advanceStakingRatio(m, 0.4, 0.8); got != 0.45 {
		t.Errorf("advanced ratio = %v, want supply cap 0.45", got)
	}

	m.Mechanics.MaxStakePct = nil
	if got := advanceStakingRatio(m, 0.4, 2.0); got != 0.9 {
		t.Errorf("advanced ratio = %v, want max participation 0.9", got)
	}
}
