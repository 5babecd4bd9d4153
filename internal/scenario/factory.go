package scenario

import (
	"fmt"

	"github.com/san-kum/tiresim/internal/sim"
)

// Names lists the available scenario models.
func Names() []string {
	return []string{"cruise", "launch", "corner", "sweep"}
}

// ByName constructs a scenario with its default parameters.
func ByName(name string) (sim.Scenario, error) {
	switch name {
	case "cruise":
		return NewCruise(), nil
	case "launch":
		return NewLaunch(), nil
	case "corner":
		return NewCorner(), nil
	case "sweep":
		return NewSweep(), nil
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
}
