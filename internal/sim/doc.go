// Package sim drives the tire core through a tick loop.
//
// The core in [github.com/san-kum/tiresim/internal/tire] is stateless;
// this package owns what it deliberately does not: the wear fraction
// and the two temperature nodes carried from tick to tick. Each tick a
// [Scenario] supplies slip, load and contact geometry, the core
// aggregates and steps them, and the [Runner] feeds the output state
// back into the next tick's input.
//
//	runner := sim.New(scenario.NewCruise())
//	result, err := runner.Run(ctx, sim.ColdTire(cfg), cfg)
//
// # Thread Safety
//
// Runner instances are NOT thread-safe. Run one Runner per simulated
// tire; separate runners never share state.
package sim
