package catalog

import (
	"context"
	"sync"

	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/trace"
)

// Comparison is the outcome of one sort in a Compare batch.
type Comparison struct {
	Name    string
	Steps   int
	Final   []float64
	Metrics map[string]float64
}

// Compare records every named sort over the same input, one goroutine per algorithm.
// Each run works on its own copy of values. Results keep the order of names.
func (r *Registry) Compare(ctx context.Context, names []string, values []float64) ([]Comparison, error) {
	for _, name := range names {
		if _, ok := r.sorts[name]; !ok {
			return nil, trace.InvalidArgument("compare: %q is not a sort", name)
		}
	}

	results := make([]Comparison, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			tr, err := r.Sort(name, values)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = Comparison{
				Name:    name,
				Steps:   tr.Len(),
				Final:   tr.Final(),
				Metrics: metrics.Summarize(tr),
			}
		}(i, name)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
