package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/linesim/internal/lines"
)

// Ensemble runs independent scenes, one per seed. Each run gets its own
// store and policy so stateful policies never share counters.
type Ensemble struct {
	gen       lines.GenConfig
	newPolicy func() (lines.Policy, error)
	numRuns   int
	seedStart int64
}

func NewEnsemble(gen lines.GenConfig, newPolicy func() (lines.Policy, error), numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{gen: gen, newPolicy: newPolicy, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			pol, err := e.newPolicy()
			if err != nil {
				errs[idx] = err
				return
			}
			st := lines.NewStore()
			if err := st.Generate(rand.New(rand.NewSource(e.seedStart+int64(idx))), e.gen); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = New(st, pol).Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
