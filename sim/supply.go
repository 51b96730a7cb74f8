package sim

import "sort"

// GenerateSupplySeries materializes circulating supply for the whole horizon:
// initial circulating plus the cumulative sum of unlock amounts whose event
// step is <= t. Exactly HorizonSteps+1 entries. Amounts are additive, so the
// series is non-decreasing; no burn or decay is modeled.
func GenerateSupplySeries(m *StakingModel) []float64 {
	n := m.Time.HorizonSteps + 1
	if n < 0 {
		n = 0
	}
	supply := make([]float64, n)

	events := append([]UnlockEvent(nil), m.UnlockSchedule...)
	sort.Slice(events, func(i, j int) bool { return events[i].Step < events[j].Step })

	next := 0
	cum := m.InitialCirculating
	for t := 0; t < n; t++ {
		for next < len(events) && events[next].Step <= t {
			cum += events[next].Amount
			next++
		}
		supply[t] = cum
	}
	return supply
}
