// Package scenario provides maneuver models that generate per-tick
// contact state for the simulation runner.
//
// Each model implements the [sim.Scenario] interface, producing slip,
// vertical load and a synthetic contact patch for a given time:
//
//   - [Cruise]: steady rolling, near-zero slip
//   - [Launch]: standing start with decaying longitudinal slip
//   - [Corner]: sinusoidal slip angle with lateral load transfer
//   - [Sweep]: linear slip-ratio ramp for wear characterization
//
// All models are deterministic: the same (t, dt) always yields the
// same tick, which the replay guarantees downstream depend on.
package scenario
