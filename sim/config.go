package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var validArchetypes = map[Archetype]bool{
	ArchetypeConsensus:     true,
	ArchetypeDeFi:          true,
	ArchetypeLiquidStaking: true,
	ArchetypeRestaking:     true,
	ArchetypeVeGovernance:  true,
}

var validStepUnits = map[string]bool{
	StepUnitWeekly:  true,
	StepUnitMonthly: true,
}

// LoadStakingModel reads and parses a YAML staking model file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadStakingModel(path string) (*StakingModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading staking model: %w", err)
	}
	return ParseStakingModel(data)
}

// ParseStakingModel decodes a YAML staking model from memory with the same
// strict-key rules as LoadStakingModel.
func ParseStakingModel(data []byte) (*StakingModel, error) {
	var m StakingModel
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing staking model: %w", err)
	}
	return &m, nil
}

// Validate checks the structural shape of the model: known enum tags and a
// sensible horizon. It deliberately does not police value ranges — the engine
// is total over any structurally valid model and degrades divide-by-zero
// patterns to zero.
func (m *StakingModel) Validate() error {
	if !validArchetypes[m.Archetype] {
		return fmt.Errorf("unknown archetype %q; valid: consensus, defi, liquid_staking, restaking, ve_governance", m.Archetype)
	}
	if m.Time.StepUnit != "" && !validStepUnits[m.Time.StepUnit] {
		return fmt.Errorf("unknown step unit %q; valid: weekly, monthly", m.Time.StepUnit)
	}
	if m.Time.HorizonSteps < 0 {
		return fmt.Errorf("horizon_steps must be >= 0, got %d", m.Time.HorizonSteps)
	}
	switch m.Price.Kind {
	case "", PriceKindFlat, PriceKindTriphase, PriceKindCustom:
	default:
		return fmt.Errorf("unknown price scenario kind %q; valid: flat, triphase, custom", m.Price.Kind)
	}
	if fees := m.Rewards.Fees; fees != nil {
		switch fees.Model {
		case "", FeeModelFlat, FeeModelGrowth, FeeModelCustom:
		default:
			return fmt.Errorf("unknown fee model %q; valid: flat, growth, custom", fees.Model)
		}
	}
	switch m.Demand.Elasticity {
	case "", ElasticityLow, ElasticityMedium, ElasticityHigh, ElasticityCustom:
	default:
		return fmt.Errorf("unknown elasticity %q; valid: low, medium, high, custom", m.Demand.Elasticity)
	}
	return nil
}
