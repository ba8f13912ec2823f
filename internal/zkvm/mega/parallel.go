package mega

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

// SubstituteParallel evaluates terms concurrently and folds the results in
// list order: intermediate accumulator lengths, and therefore the output,
// match Substitute exactly. Term evaluation is independent per term; only the
// final summation is ordered.
func SubstituteParallel(ctx context.Context, in *Inputs) (core.BPoly, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	results := make([]core.BPoly, len(in.Terms))
	for ti := range in.Terms {
		term := &in.Terms[ti]
		if term.Coeff == 0 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := evalTerm(in, term)
			if err != nil {
				return err
			}
			results[ti] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := core.ZeroBPoly()
	for _, res := range results {
		if res == nil {
			continue
		}
		acc = acc.Add(res)
	}
	return acc, nil
}
