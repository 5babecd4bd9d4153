// Package viz renders a live terminal dashboard for a running tire
// simulation: wear and temperature gauges, slip readouts and a
// temperature history sparkline.
//
// The dashboard steps the same tick pipeline as the batch runner via
// [sim.StepTick], so what it shows is exactly what a stored run would
// contain.
package viz
