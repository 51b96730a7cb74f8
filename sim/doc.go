// Package sim provides the staking-dynamics simulation engine for staking-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - model.go: StakingModel configuration record and all of its sub-blocks
//   - engine.go: the step loop, the explicit LoopState accumulator, and StakingStep records
//   - stress.go: the shock harness that diffs a perturbed run against a baseline
//
// # Architecture
//
// The engine is a discrete-time feedback simulator: staking participation
// responds to yield, and yield responds to participation through inflation
// dilution and reward sharing, so the two are advanced together across the
// horizon by a smoothing rule. Price and circulating supply are precomputed
// series (price.go, supply.go); per-step economics live in rewards.go,
// yield.go, and demand.go; the post-loop cohort and summary passes live in
// cohort.go and metadata.go.
//
// The engine is total over any structurally valid StakingModel: it returns no
// errors, and division-by-zero patterns (empty stake, empty reward pool)
// degrade to zero rather than faulting. Determinism is likewise total — no
// randomness is consumed, so identical inputs yield identical outputs.
//
// Sub-packages:
//   - sim/export/: pure output rendering (JSON files, terminal tables)
package sim
