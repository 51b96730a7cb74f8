package sim

// Archetype selects the economic template governing which reward and cohort
// rules apply to a model.
type Archetype string

// All archetype tags.
const (
	ArchetypeConsensus     Archetype = "consensus"
	ArchetypeDeFi          Archetype = "defi"
	ArchetypeLiquidStaking Archetype = "liquid_staking"
	ArchetypeRestaking     Archetype = "restaking"
	ArchetypeVeGovernance  Archetype = "ve_governance"
)

// Step units and their steps-per-year.
const (
	StepUnitWeekly  = "weekly"
	StepUnitMonthly = "monthly"
)

// StakingModel is the top-level input configuration for one simulation run.
// It is owned by the caller and read-only to the engine. Loaded from YAML via
// LoadStakingModel(path) or built programmatically (see presets.go).
//
// The five archetype blocks are optional capability records attached to one
// configuration rather than a type hierarchy; each is consumed only by its own
// cohort/metadata logic, and HybridMode permits several to coexist. An absent
// block means that cohort is skipped.
type StakingModel struct {
	ID         string    `yaml:"id,omitempty"`
	Version    string    `yaml:"version,omitempty"`
	Archetype  Archetype `yaml:"archetype"`
	HybridMode bool      `yaml:"hybrid_mode,omitempty"` // allow archetype blocks outside the primary tag

	TotalSupply        float64       `yaml:"total_supply"`
	InitialCirculating float64       `yaml:"initial_circulating"`
	InitialPrice       float64       `yaml:"initial_price"`
	Price              PriceScenario `yaml:"price,omitempty"`
	UnlockSchedule     []UnlockEvent `yaml:"unlock_schedule,omitempty"`

	Time      TimeConfig       `yaml:"time"`
	Rewards   RewardsSources   `yaml:"rewards"`
	Mechanics StakingMechanics `yaml:"mechanics"`
	Demand    DemandModel      `yaml:"demand"`
	Risk      RiskAssumptions  `yaml:"risk"`

	Consensus     *ConsensusBlock     `yaml:"consensus,omitempty"`
	DeFi          *DeFiBlock          `yaml:"defi,omitempty"`
	LiquidStaking *LiquidStakingBlock `yaml:"liquid_staking,omitempty"`
	Restaking     *RestakingBlock     `yaml:"restaking,omitempty"`
	VeGovernance  *VeGovernanceBlock  `yaml:"ve_governance,omitempty"`
}

// TimeConfig fixes the discretization of the horizon.
type TimeConfig struct {
	StepUnit     string `yaml:"step_unit"`     // "weekly" or "monthly"
	HorizonSteps int    `yaml:"horizon_steps"` // simulation covers steps 0..=HorizonSteps inclusive
}

// StepsPerYear returns the annualization factor for the configured step unit.
// Unrecognized units fall back to monthly.
func (tc TimeConfig) StepsPerYear() float64 {
	if tc.StepUnit == StepUnitWeekly {
		return 52
	}
	return 12
}

// Price scenario kinds.
const (
	PriceKindFlat     = "flat"
	PriceKindTriphase = "triphase"
	PriceKindCustom   = "custom"
)

// PriceScenario describes the exogenous price path. Price is an input series,
// never simulated: flat holds a constant, triphase splits the horizon into
// three equal integer-floor thirds each scaling the initial price by a phase
// multiplier, and custom linearly interpolates between user-supplied knots.
type PriceScenario struct {
	Kind string  `yaml:"kind,omitempty"` // "flat" (default), "triphase", "custom"
	Flat float64 `yaml:"flat,omitempty"` // constant price; 0 means use InitialPrice

	// Triphase multipliers applied to InitialPrice; 0 means 1.0.
	BullMult float64 `yaml:"bull_mult,omitempty"`
	BaseMult float64 `yaml:"base_mult,omitempty"`
	BearMult float64 `yaml:"bear_mult,omitempty"`

	Knots []PriceKnot `yaml:"knots,omitempty"` // custom series, ordered by step
}

// PriceKnot is one point of a custom price series.
type PriceKnot struct {
	Step  int     `yaml:"step"`
	Price float64 `yaml:"price"`
}

// UnlockEvent is a scheduled one-time increase to circulating supply.
// Amounts are additive; circulating supply never decreases.
type UnlockEvent struct {
	Step   int     `yaml:"step"`
	Amount float64 `yaml:"amount"`
}

// RewardsSources groups the up to three independently-enabled reward flows
// summed by the accountant each step. A nil block is a disabled source.
type RewardsSources struct {
	Inflation *InflationRewards `yaml:"inflation,omitempty"`
	Fees      *FeeRewards       `yaml:"fees,omitempty"`
	Other     []OtherRewards    `yaml:"other,omitempty"`
}

// InflationRewards issues new tokens against circulating supply.
type InflationRewards struct {
	Enabled     bool           `yaml:"enabled"`
	AnnualRate  float64        `yaml:"annual_rate"`        // fraction of circulating supply issued per year
	Schedule    []RateOverride `yaml:"schedule,omitempty"` // sparse time-keyed overrides of AnnualRate
	StakerShare float64        `yaml:"staker_share"`       // fraction of issuance routed to stakers
}

// RateOverride replaces the inflation annual rate from Step onward
// (the entry with the greatest step <= t wins).
type RateOverride struct {
	Step       int     `yaml:"step"`
	AnnualRate float64 `yaml:"annual_rate"`
}

// Fee flow models.
const (
	FeeModelFlat   = "flat"
	FeeModelGrowth = "growth"
	FeeModelCustom = "custom"
)

// FeeRewards routes a share of protocol fee flow (token-denominated, per step)
// to stakers. The flow is either a flat value, an exponential growth model
// base*(1+growth)^t, or a piecewise-linear interpolation over a custom series.
type FeeRewards struct {
	Enabled     bool          `yaml:"enabled"`
	Model       string        `yaml:"model"`                 // "flat" (default), "growth", "custom"
	BasePerStep float64       `yaml:"base_per_step"`         // tokens per step (flat value / growth base)
	GrowthRate  float64       `yaml:"growth_rate,omitempty"` // per-step growth for the growth model
	Series      []SeriesPoint `yaml:"series,omitempty"`      // custom series, ordered by step
	StakerShare float64       `yaml:"staker_share"`
}

// SeriesPoint is one knot of a custom fee series.
type SeriesPoint struct {
	Step  int     `yaml:"step"`
	Value float64 `yaml:"value"`
}

// Reward stream denominations.
const (
	DenomToken = "token"
	DenomUSD   = "usd"
)

// OtherRewards is an arbitrary named reward stream (e.g. partner incentives).
// USD-denominated streams are converted to tokens at the step's price.
type OtherRewards struct {
	Name        string  `yaml:"name"`
	AmountPer   float64 `yaml:"amount_per_step"`
	Denom       string  `yaml:"denom"` // "token" (default) or "usd"
	StakerShare float64 `yaml:"staker_share"`
}

// Compounding modes (informational; reward flow is reported per step either way).
const (
	CompoundingNone      = "none"
	CompoundingAutomatic = "automatic"
)

// StakingMechanics captures protocol-side staking rules.
type StakingMechanics struct {
	UnbondingSteps int            `yaml:"unbonding_steps,omitempty"` // informational; does not gate flows
	Lockups        []LockupOption `yaml:"lockups,omitempty"`
	Compounding    string         `yaml:"compounding,omitempty"`
	CommissionPct  float64        `yaml:"commission_pct"`                 // operator commission on gross rewards
	MaxStakePct    *float64       `yaml:"max_stake_pct_supply,omitempty"` // optional hard cap on stake as fraction of supply
}

// LockupOption is one discrete lockup tier. Only the average duration across
// tiers feeds the lockup penalty; boosts are informational.
type LockupOption struct {
	DurationSteps int     `yaml:"duration_steps"`
	RewardBoost   float64 `yaml:"reward_boost,omitempty"`
}

// AverageLockupSteps returns the mean lockup duration across tiers, 0 when no
// tiers are configured.
func (m StakingMechanics) AverageLockupSteps() float64 {
	if len(m.Lockups) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range m.Lockups {
		sum += float64(l.DurationSteps)
	}
	return sum / float64(len(m.Lockups))
}

// Elasticity presets mapping to the sigmoid steepness K.
const (
	ElasticityLow    = "low"    // K=3
	ElasticityMedium = "medium" // K=6
	ElasticityHigh   = "high"   // K=10
	ElasticityCustom = "custom"
)

// Lockup penalty model kinds.
const (
	LockupPenaltyNone   = "none"
	LockupPenaltyLinear = "linear"
)

// LockupPenaltyModel converts average lockup duration into a net-APR drag.
type LockupPenaltyModel struct {
	Kind           string  `yaml:"kind,omitempty"` // "none" (default) or "linear"
	PenaltyPerStep float64 `yaml:"penalty_per_step,omitempty"`
}

// DemandModel governs how participation chases yield.
type DemandModel struct {
	OpportunityCostAnnual float64            `yaml:"opportunity_cost_annual"` // competing yield stakers compare against
	Elasticity            string             `yaml:"elasticity"`              // "low", "medium", "high", "custom"
	CustomK               float64            `yaml:"custom_k,omitempty"`      // sigmoid steepness when elasticity is "custom"
	BaseParticipation     float64            `yaml:"base_participation"`      // staking ratio floor (and initial ratio)
	MaxParticipation      float64            `yaml:"max_participation"`       // staking ratio ceiling
	AdjustmentSpeed       float64            `yaml:"adjustment_speed"`        // per-step fraction of the gap closed toward target
	LockupPenalty         LockupPenaltyModel `yaml:"lockup_penalty,omitempty"`
	RiskPenaltyAnnual     float64            `yaml:"risk_penalty_annual,omitempty"` // flat annual addend to perceived risk
}

// SigmoidK resolves the elasticity preset to the sigmoid steepness.
func (d DemandModel) SigmoidK() float64 {
	switch d.Elasticity {
	case ElasticityLow:
		return 3
	case ElasticityHigh:
		return 10
	case ElasticityCustom:
		return d.CustomK
	default:
		return 6
	}
}

// RiskAssumptions parameterize the annualized risk drag on net APR.
type RiskAssumptions struct {
	SlashProbAnnual         float64 `yaml:"slash_prob_annual"`
	SlashSeverityPct        float64 `yaml:"slash_severity_pct"` // fraction of stake lost per slash
	SmartContractRiskAnnual float64 `yaml:"smart_contract_risk_annual"`
	LiquidityDiscountPct    float64 `yaml:"liquidity_discount_pct,omitempty"`  // applied to the liquid-staking cohort
	ValidatorConcentration  string  `yaml:"validator_concentration,omitempty"` // informational descriptor
}

// ConsensusBlock carries base-layer PoS parameters. Informational in the core
// engine; no cohort derives from it.
type ConsensusBlock struct {
	RewardCurve      string  `yaml:"reward_curve,omitempty"` // e.g. "flat", "inverse_sqrt"
	TargetStakeRatio float64 `yaml:"target_stake_ratio,omitempty"`
}

// DeFiBlock carries DeFi bonding parameters. Informational in the core engine.
type DeFiBlock struct {
	BondingMode  string  `yaml:"bonding_mode,omitempty"` // e.g. "rebase", "fixed_term"
	BondDiscount float64 `yaml:"bond_discount,omitempty"`
}

// LiquidStakingBlock enables the liquid-staking cohort: an adoption share that
// approaches a ceiling exponentially, and a yield addendum from deploying the
// liquid token in DeFi.
type LiquidStakingBlock struct {
	InitialAdoption      float64 `yaml:"initial_adoption"`
	AdoptionCeiling      float64 `yaml:"adoption_ceiling"`
	AdoptionSpeed        float64 `yaml:"adoption_speed"` // per-step fraction of the remaining gap closed
	ExtraDeFiYieldAnnual float64 `yaml:"extra_defi_yield_annual"`
}

// RestakingBlock enables the restaking cohort: incremental yield bought with
// exposure to correlated slashing.
type RestakingBlock struct {
	RestakeShare               float64 `yaml:"restake_share"` // fraction of stakers who restake
	IncrementalYieldAnnual     float64 `yaml:"incremental_yield_annual"`
	CorrelatedSlashProbAnnual  float64 `yaml:"correlated_slash_prob_annual"`
	CorrelatedSlashSeverityPct float64 `yaml:"correlated_slash_severity_pct"`
}

// VeGovernanceBlock enables the vote-escrow cohort: a locked share of supply
// advanced by its own exponential-approach rule, plus bribe and governance
// yield addenda.
type VeGovernanceBlock struct {
	InitialLockShare   float64 `yaml:"initial_lock_share"`
	LockShareCeiling   float64 `yaml:"lock_share_ceiling"`
	AdoptionSpeed      float64 `yaml:"adoption_speed"`
	BribeYieldAnnual   float64 `yaml:"bribe_yield_annual"`
	ControlValueAnnual float64 `yaml:"control_value_annual"` // imputed value of governance power
}

// Clone returns an independent deep copy of the model. Slices and optional
// blocks are copied so that a stress-test mutation can never write through to
// the caller's configuration.
func (m *StakingModel) Clone() *StakingModel {
	c := *m
	c.UnlockSchedule = append([]UnlockEvent(nil), m.UnlockSchedule...)
	c.Price.Knots = append([]PriceKnot(nil), m.Price.Knots...)
	if m.Rewards.Inflation != nil {
		infl := *m.Rewards.Inflation
		infl.Schedule = append([]RateOverride(nil), m.Rewards.Inflation.Schedule...)
		c.Rewards.Inflation = &infl
	}
	if m.Rewards.Fees != nil {
		fees := *m.Rewards.Fees
		fees.Series = append([]SeriesPoint(nil), m.Rewards.Fees.Series...)
		c.Rewards.Fees = &fees
	}
	c.Rewards.Other = append([]OtherRewards(nil), m.Rewards.Other...)
	c.Mechanics.Lockups = append([]LockupOption(nil), m.Mechanics.Lockups...)
	if m.Mechanics.MaxStakePct != nil {
		pct := *m.Mechanics.MaxStakePct
		c.Mechanics.MaxStakePct = &pct
	}
	if m.Consensus != nil {
		b := *m.Consensus
		c.Consensus = &b
	}
	if m.DeFi != nil {
		b := *m.DeFi
		c.DeFi = &b
	}
	if m.LiquidStaking != nil {
		b := *m.LiquidStaking
		c.LiquidStaking = &b
	}
	if m.Restaking != nil {
		b := *m.Restaking
		c.Restaking = &b
	}
	if m.VeGovernance != nil {
		b := *m.VeGovernance
		c.VeGovernance = &b
	}
	return &c
}
