package sim

import "math"

// RewardBreakdown is the per-step reward flow to stakers, in tokens, split by
// source. Fees is tracked separately so the step record can report fee
// coverage.
type RewardBreakdown struct {
	Inflation float64
	Fees      float64
	Other     float64
}

// Total sums the three sources.
func (rb RewardBreakdown) Total() float64 {
	return rb.Inflation + rb.Fees + rb.Other
}

// FeeCoveragePct is the share of total reward flow attributable to the fee
// source, in percent (0 when there is no flow at all).
func (rb RewardBreakdown) FeeCoveragePct() float64 {
	total := rb.Total()
	if total <= 0 {
		return 0
	}
	return rb.Fees / total * 100
}

// rewardsToStakers sums the per-step reward flow paid to stakers across the
// enabled sources, given the step's price and circulating supply and the
// staking ratio inherited from the previous step. Disabled or nil blocks
// contribute nothing; negative configured amounts degrade to zero flow.
func rewardsToStakers(m *StakingModel, t int, price, supply, ratio float64) RewardBreakdown {
	var rb RewardBreakdown

	if infl := m.Rewards.Inflation; infl != nil && infl.Enabled {
		rate := inflationRateAt(infl, t)
		rb.Inflation = math.Max(0, rate*supply/m.Time.StepsPerYear()*infl.StakerShare)
	}

	if fees := m.Rewards.Fees; fees != nil && fees.Enabled {
		rb.Fees = math.Max(0, feeFlowAt(fees, t)*fees.StakerShare)
	}

	for _, o := range m.Rewards.Other {
		amount := o.AmountPer
		if o.Denom == DenomUSD {
			if price <= 0 {
				continue
			}
			amount /= price
		}
		rb.Other += math.Max(0, amount*o.StakerShare)
	}

	return rb
}

// inflationRateAt resolves the annual inflation rate at step t: the override
// schedule entry with the greatest step <= t wins, else the flat annual rate.
func inflationRateAt(infl *InflationRewards, t int) float64 {
	rate := infl.AnnualRate
	best := -1
	for _, ov := range infl.Schedule {
		if ov.Step <= t && ov.Step > best {
			best = ov.Step
			rate = ov.AnnualRate
		}
	}
	return rate
}

// feeFlowAt evaluates the fee model at step t, in tokens per step.
func feeFlowAt(fees *FeeRewards, t int) float64 {
	switch fees.Model {
	case FeeModelGrowth:
		return fees.BasePerStep * math.Pow(1+fees.GrowthRate, float64(t))
	case FeeModelCustom:
		return interpolateSeries(fees.Series, t)
	default:
		return fees.BasePerStep
	}
}

// interpolateSeries evaluates a custom fee series at step t: linear between
// the two bracketing points, clamped to the nearest endpoint outside the
// range. An empty series is zero flow.
func interpolateSeries(series []SeriesPoint, t int) float64 {
	if len(series) == 0 {
		return 0
	}
	if t <= series[0].Step {
		return series[0].Value
	}
	last := series[len(series)-1]
	if t >= last.Step {
		return last.Value
	}
	for i := 1; i < len(series); i++ {
		if t <= series[i].Step {
			lo, hi := series[i-1], series[i]
			if hi.Step == lo.Step {
				return hi.Value
			}
			frac := float64(t-lo.Step) / float64(hi.Step-lo.Step)
			return lo.Value + frac*(hi.Value-lo.Value)
		}
	}
	return last.Value
}
