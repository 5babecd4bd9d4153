// Package tire computes the per-tick mechanical and thermal state of a
// tire contact patch.
//
// Every function in this package is pure and total: any valid-shaped
// input, including degenerate ones (empty sample lists, zero counts,
// nil buffers), maps to a defined zero-value output rather than an
// error. All numeric fields are float32 and all records use a flat
// fixed-field layout so the boundary stays stable across callers.
//
//   - [AggregatePatch]: statistical summary of weighted contact samples
//   - [AggregateContacts]: force/torque summary of discrete contact points
//   - [EffectiveRadius]: compressed rolling radius under vertical load
//   - [StepWearAndTemperature]: explicit wear and two-node thermal step
//
// The package owns no state; callers persist wear and temperatures by
// feeding each tick's output back into the next tick's input.
//
// # Thread Safety
//
// All functions are safe to call concurrently from any number of
// simulation instances as long as each supplies its own inputs.
package tire
