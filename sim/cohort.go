package sim

import "gonum.org/v1/gonum/stat"

// Cohort names as reported in StakingOutputs.Cohorts.
const (
	CohortLiquidStaking = "liquid_staking"
	CohortRestaking     = "restaking"
	CohortVeGovernance  = "ve_governance"
)

// computeCohorts derives the auxiliary yield figures for the optional
// sub-populations, layered on top of the realized average net APR. Runs once
// after the loop; an absent block means that cohort is skipped entirely.
func computeCohorts(m *StakingModel, steps []StakingStep, final LoopState) []CohortYield {
	var cohorts []CohortYield
	if len(steps) == 0 {
		return cohorts
	}

	avgNet := stat.Mean(netAPRs(steps), nil)

	if ls := m.LiquidStaking; ls != nil {
		cohorts = append(cohorts, CohortYield{
			Name:             CohortLiquidStaking,
			NetAPR:           avgNet + ls.ExtraDeFiYieldAnnual - m.Risk.LiquidityDiscountPct,
			ParticipationPct: final.LSAdoption * 100,
		})
	}
	if rs := m.Restaking; rs != nil {
		cohorts = append(cohorts, CohortYield{
			Name:             CohortRestaking,
			NetAPR:           avgNet + rs.IncrementalYieldAnnual - rs.CorrelatedSlashProbAnnual*rs.CorrelatedSlashSeverityPct,
			ParticipationPct: rs.RestakeShare * 100,
		})
	}
	if ve := m.VeGovernance; ve != nil {
		cohorts = append(cohorts, CohortYield{
			Name:             CohortVeGovernance,
			NetAPR:           avgNet + ve.BribeYieldAnnual + ve.ControlValueAnnual,
			ParticipationPct: final.VeLockShare * 100,
		})
	}
	return cohorts
}

func netAPRs(steps []StakingStep) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = s.NetAPR
	}
	return out
}
