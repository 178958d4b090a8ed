package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map transforms a successful value using fn. Failures pass through
// unmodified and fn is never called for them.
func Map[A, B any](p *Pipeline[A], fn func(ctx context.Context, a A) (B, error)) *Pipeline[B] {
	return &Pipeline[B]{
		name: p.name,
		fn: func(ctx context.Context) (B, error) {
			a, err := p.run(ctx)
			if err != nil {
				var zero B
				return zero, err
			}
			return fn(ctx, a)
		},
	}
}

// Chain feeds a successful value from p into fn to construct a dependent
// pipeline, and runs it. The composite's outcome is the dependent pipeline's
// outcome. If p fails, fn is never called and the composite fails with p's
// error, unchanged. fn does not run before p's result is known.
func Chain[A, B any](p *Pipeline[A], fn func(a A) *Pipeline[B]) *Pipeline[B] {
	return &Pipeline[B]{
		name: p.name,
		fn: func(ctx context.Context) (B, error) {
			a, err := p.run(ctx)
			if err != nil {
				var zero B
				return zero, err
			}
			return fn(a).run(ctx)
		},
	}
}

// All runs independent pipelines concurrently and collects their values in
// input order. The first failure wins and cancels the remaining runs.
func All[T any](name string, ps ...*Pipeline[T]) *Pipeline[[]T] {
	return &Pipeline[[]T]{
		name: name,
		fn: func(ctx context.Context) ([]T, error) {
			g, gctx := errgroup.WithContext(ctx)
			results := make([]T, len(ps))
			for i, p := range ps {
				g.Go(func() error {
					v, err := p.run(gctx)
					if err != nil {
						return err
					}
					results[i] = v
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return results, nil
		},
	}
}
