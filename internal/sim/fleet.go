package sim

import (
	"context"
	"sync"
)

// Fleet runs several tires concurrently, one runner per axle corner.
// Runners share nothing, so each run is independent.
type Fleet struct {
	runners []*Runner
}

func NewFleet(runners ...*Runner) *Fleet {
	return &Fleet{runners: runners}
}

func (f *Fleet) Run(ctx context.Context, initial TireState, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(f.runners))
	errs := make([]error, len(f.runners))

	var wg sync.WaitGroup
	for i, r := range f.runners {
		wg.Add(1)
		go func(idx int, runner *Runner) {
			defer wg.Done()
			results[idx], errs[idx] = runner.Run(ctx, initial, cfg)
		}(i, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
