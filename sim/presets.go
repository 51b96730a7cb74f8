package sim

// Built-in archetype presets for common token designs.
// Each returns a valid StakingModel ready for ComputeStakingSeries.

// PresetL1PoSConservative models a mature proof-of-stake base layer:
// steady moderate inflation, fee flow growing slowly, and a participation
// band of 40-75% with medium elasticity, so the staking ratio climbs toward
// its ceiling without ever pulling back.
func PresetL1PoSConservative() *StakingModel {
	return &StakingModel{
		ID: "l1-pos-conservative", Version: "1", Archetype: ArchetypeConsensus,
		TotalSupply: 1_000_000_000, InitialCirculating: 400_000_000, InitialPrice: 2.50,
		Price: PriceScenario{Kind: PriceKindFlat},
		UnlockSchedule: []UnlockEvent{
			{Step: 12, Amount: 50_000_000},
			{Step: 24, Amount: 50_000_000},
		},
		Time: TimeConfig{StepUnit: StepUnitMonthly, HorizonSteps: 48},
		Rewards: RewardsSources{
			Inflation: &InflationRewards{
				Enabled: true, AnnualRate: 0.05, StakerShare: 1.0,
			},
			Fees: &FeeRewards{
				Enabled: true, Model: FeeModelGrowth,
				BasePerStep: 100_000, GrowthRate: 0.01, StakerShare: 0.8,
			},
		},
		Mechanics: StakingMechanics{
			UnbondingSteps: 1, Compounding: CompoundingAutomatic, CommissionPct: 0.10,
		},
		Demand: DemandModel{
			OpportunityCostAnnual: 0.04, Elasticity: ElasticityMedium,
			BaseParticipation: 0.40, MaxParticipation: 0.75, AdjustmentSpeed: 0.15,
		},
		Risk: RiskAssumptions{
			SlashProbAnnual: 0.01, SlashSeverityPct: 0.05, SmartContractRiskAnnual: 0.002,
			ValidatorConcentration: "distributed",
		},
		Consensus: &ConsensusBlock{RewardCurve: "flat", TargetStakeRatio: 0.60},
	}
}

// PresetDeFiBonding models a DeFi protocol paying stakers out of fee flow
// with lockup tiers and no base inflation.
func PresetDeFiBonding() *StakingModel {
	return &StakingModel{
		ID: "defi-bonding", Version: "1", Archetype: ArchetypeDeFi,
		TotalSupply: 100_000_000, InitialCirculating: 30_000_000, InitialPrice: 8.00,
		Price: PriceScenario{Kind: PriceKindTriphase, BullMult: 1.4, BaseMult: 1.0, BearMult: 0.6},
		Time:  TimeConfig{StepUnit: StepUnitWeekly, HorizonSteps: 104},
		Rewards: RewardsSources{
			Fees: &FeeRewards{
				Enabled: true, Model: FeeModelFlat, BasePerStep: 40_000, StakerShare: 0.9,
			},
			Other: []OtherRewards{
				{Name: "partner-incentives", AmountPer: 25_000, Denom: DenomUSD, StakerShare: 1.0},
			},
		},
		Mechanics: StakingMechanics{
			Lockups: []LockupOption{
				{DurationSteps: 4, RewardBoost: 1.1},
				{DurationSteps: 26, RewardBoost: 1.5},
			},
			CommissionPct: 0.05,
		},
		Demand: DemandModel{
			OpportunityCostAnnual: 0.08, Elasticity: ElasticityHigh,
			BaseParticipation: 0.10, MaxParticipation: 0.60, AdjustmentSpeed: 0.25,
			LockupPenalty: LockupPenaltyModel{Kind: LockupPenaltyLinear, PenaltyPerStep: 0.00002},
		},
		Risk: RiskAssumptions{
			SlashProbAnnual: 0, SlashSeverityPct: 0, SmartContractRiskAnnual: 0.02,
			ValidatorConcentration: "n/a",
		},
		DeFi: &DeFiBlock{BondingMode: "fixed_term", BondDiscount: 0.05},
	}
}

// PresetLiquidStakingGrowth models an LST protocol in its adoption phase,
// stacked on consensus-style inflation (hybrid mode).
func PresetLiquidStakingGrowth() *StakingModel {
	maxStake := 0.70
	return &StakingModel{
		ID: "liquid-staking-growth", Version: "1", Archetype: ArchetypeLiquidStaking,
		HybridMode:  true,
		TotalSupply: 500_000_000, InitialCirculating: 200_000_000, InitialPrice: 4.00,
		Price: PriceScenario{Kind: PriceKindFlat},
		Time:  TimeConfig{StepUnit: StepUnitMonthly, HorizonSteps: 36},
		Rewards: RewardsSources{
			Inflation: &InflationRewards{Enabled: true, AnnualRate: 0.07, StakerShare: 1.0},
		},
		Mechanics: StakingMechanics{CommissionPct: 0.10, MaxStakePct: &maxStake},
		Demand: DemandModel{
			OpportunityCostAnnual: 0.05, Elasticity: ElasticityMedium,
			BaseParticipation: 0.25, MaxParticipation: 0.80, AdjustmentSpeed: 0.20,
		},
		Risk: RiskAssumptions{
			SlashProbAnnual: 0.01, SlashSeverityPct: 0.05, SmartContractRiskAnnual: 0.01,
			LiquidityDiscountPct: 0.005, ValidatorConcentration: "moderate",
		},
		LiquidStaking: &LiquidStakingBlock{
			InitialAdoption: 0.10, AdoptionCeiling: 0.55, AdoptionSpeed: 0.08,
			ExtraDeFiYieldAnnual: 0.03,
		},
	}
}

// PresetRestakingAggressive models a restaking layer buying extra yield with
// correlated slashing exposure.
func PresetRestakingAggressive() *StakingModel {
	return &StakingModel{
		ID: "restaking-aggressive", Version: "1", Archetype: ArchetypeRestaking,
		TotalSupply: 200_000_000, InitialCirculating: 120_000_000, InitialPrice: 12.00,
		Price: PriceScenario{Kind: PriceKindFlat},
		Time:  TimeConfig{StepUnit: StepUnitMonthly, HorizonSteps: 24},
		Rewards: RewardsSources{
			Inflation: &InflationRewards{Enabled: true, AnnualRate: 0.06, StakerShare: 1.0},
			Other: []OtherRewards{
				{Name: "avs-payments", AmountPer: 150_000, Denom: DenomToken, StakerShare: 1.0},
			},
		},
		Mechanics: StakingMechanics{CommissionPct: 0.08},
		Demand: DemandModel{
			OpportunityCostAnnual: 0.06, Elasticity: ElasticityHigh,
			BaseParticipation: 0.30, MaxParticipation: 0.85, AdjustmentSpeed: 0.30,
			RiskPenaltyAnnual: 0.01,
		},
		Risk: RiskAssumptions{
			SlashProbAnnual: 0.03, SlashSeverityPct: 0.10, SmartContractRiskAnnual: 0.015,
			ValidatorConcentration: "concentrated",
		},
		Restaking: &RestakingBlock{
			RestakeShare: 0.40, IncrementalYieldAnnual: 0.04,
			CorrelatedSlashProbAnnual: 0.02, CorrelatedSlashSeverityPct: 0.30,
		},
	}
}

// PresetVeGovernance models a vote-escrow design where locked supply earns
// bribes and governance power on top of fee flow.
func PresetVeGovernance() *StakingModel {
	return &StakingModel{
		ID: "ve-governance", Version: "1", Archetype: ArchetypeVeGovernance,
		TotalSupply: 50_000_000, InitialCirculating: 20_000_000, InitialPrice: 15.00,
		Price: PriceScenario{
			Kind: PriceKindCustom,
			Knots: []PriceKnot{
				{Step: 0, Price: 15.00}, {Step: 26, Price: 22.00}, {Step: 52, Price: 18.00},
			},
		},
		Time: TimeConfig{StepUnit: StepUnitWeekly, HorizonSteps: 52},
		Rewards: RewardsSources{
			Fees: &FeeRewards{
				Enabled: true, Model: FeeModelCustom, StakerShare: 1.0,
				Series: []SeriesPoint{
					{Step: 0, Value: 10_000}, {Step: 26, Value: 30_000}, {Step: 52, Value: 25_000},
				},
			},
		},
		Mechanics: StakingMechanics{
			Lockups:       []LockupOption{{DurationSteps: 52, RewardBoost: 2.0}},
			CommissionPct: 0,
		},
		Demand: DemandModel{
			OpportunityCostAnnual: 0.07, Elasticity: ElasticityLow,
			BaseParticipation: 0.15, MaxParticipation: 0.50, AdjustmentSpeed: 0.10,
			LockupPenalty: LockupPenaltyModel{Kind: LockupPenaltyLinear, PenaltyPerStep: 0.00001},
		},
		Risk: RiskAssumptions{
			SmartContractRiskAnnual: 0.01, ValidatorConcentration: "n/a",
		},
		VeGovernance: &VeGovernanceBlock{
			InitialLockShare: 0.05, LockShareCeiling: 0.35, AdoptionSpeed: 0.06,
			BribeYieldAnnual: 0.05, ControlValueAnnual: 0.02,
		},
	}
}

// presetConstructors maps preset names to their constructors, in listing order.
var presetNames = []string{
	"l1-pos-conservative",
	"defi-bonding",
	"liquid-staking-growth",
	"restaking-aggressive",
	"ve-governance",
}

var presetConstructors = map[string]func() *StakingModel{
	"l1-pos-conservative":   PresetL1PoSConservative,
	"defi-bonding":          PresetDeFiBonding,
	"liquid-staking-growth": PresetLiquidStakingGrowth,
	"restaking-aggressive":  PresetRestakingAggressive,
	"ve-governance":         PresetVeGovernance,
}

// PresetNames lists the built-in presets in stable order.
func PresetNames() []string {
	return append([]string(nil), presetNames...)
}

// PresetByName returns a fresh model for a built-in preset name, or nil when
// the name is unknown.
func PresetByName(name string) *StakingModel {
	if ctor, ok := presetConstructors[name]; ok {
		return ctor()
	}
	return nil
}
