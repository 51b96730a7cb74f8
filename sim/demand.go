package sim

import "math"

// sigmoid is the bounded response curve mapping yield spread to demand:
// 1/(1+e^-x), so a zero spread lands exactly between base and max
// participation.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// targetStakingRatio maps the net-APR-vs-opportunity-cost spread to the
// participation level demand would settle at if it adjusted instantly.
func targetStakingRatio(d DemandModel, netAPR float64) float64 {
	spread := netAPR - d.OpportunityCostAnnual
	return d.BaseParticipation +
		(d.MaxParticipation-d.BaseParticipation)*sigmoid(d.SigmoidK()*spread)
}

// advanceStakingRatio moves the actual ratio a fraction of the way toward the
// target, then applies the hard caps: max participation always, and the
// optional stake-as-fraction-of-supply cap when configured.
func advanceStakingRatio(m *StakingModel, ratio, target float64) float64 {
	next := ratio + m.Demand.AdjustmentSpeed*(target-ratio)
	next = clamp(next, 0, m.Demand.MaxParticipation)
	if pct := m.Mechanics.MaxStakePct; pct != nil && next > *pct {
		next = *pct
	}
	return next
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
