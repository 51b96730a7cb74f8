package sim

import "sort"

// GeneratePriceSeries materializes the exogenous price path for the whole
// horizon: exactly HorizonSteps+1 entries, price[t] for t in 0..=HorizonSteps.
// Unknown scenario kinds degrade to flat at the initial price.
func GeneratePriceSeries(m *StakingModel) []float64 {
	n := m.Time.HorizonSteps + 1
	if n < 0 {
		n = 0
	}
	prices := make([]float64, n)

	switch m.Price.Kind {
	case PriceKindTriphase:
		third := n / 3
		bull := phaseMult(m.Price.BullMult)
		base := phaseMult(m.Price.BaseMult)
		bear := phaseMult(m.Price.BearMult)
		for t := 0; t < n; t++ {
			switch {
			case t < third:
				prices[t] = m.InitialPrice * bull
			case t < 2*third:
				prices[t] = m.InitialPrice * base
			default:
				prices[t] = m.InitialPrice * bear
			}
		}
	case PriceKindCustom:
		if len(m.Price.Knots) == 0 {
			fill(prices, m.InitialPrice)
			break
		}
		knots := append([]PriceKnot(nil), m.Price.Knots...)
		sort.Slice(knots, func(i, j int) bool { return knots[i].Step < knots[j].Step })
		for t := 0; t < n; t++ {
			prices[t] = interpolateKnots(knots, t)
		}
	default:
		flat := m.Price.Flat
		if flat == 0 {
			flat = m.InitialPrice
		}
		fill(prices, flat)
	}
	return prices
}

// phaseMult treats an unset (zero) triphase multiplier as 1.0.
func phaseMult(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}

func fill(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// interpolateKnots evaluates a sorted knot series at step t: linear between
// the two bracketing knots, clamped to the nearest endpoint outside the range.
func interpolateKnots(knots []PriceKnot, t int) float64 {
	if t <= knots[0].Step {
		return knots[0].Price
	}
	last := knots[len(knots)-1]
	if t >= last.Step {
		return last.Price
	}
	for i := 1; i < len(knots); i++ {
		if t <= knots[i].Step {
			lo, hi := knots[i-1], knots[i]
			if hi.Step == lo.Step {
				return hi.Price
			}
			frac := float64(t-lo.Step) / float64(hi.Step-lo.Step)
			return lo.Price + frac*(hi.Price-lo.Price)
		}
	}
	return last.Price
}
