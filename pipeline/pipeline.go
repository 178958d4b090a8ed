package pipeline

import "context"

// Pipeline represents a lazy, single-value asynchronous computation.
// Nothing runs until Start is called; each Start produces an independent
// Run with its own outcome channel and cancellation handle.
type Pipeline[T any] struct {
	name string
	fn   func(ctx context.Context) (T, error)
}

// New creates a pipeline from a function. The name is used for logging and
// tracing only.
func New[T any](name string, fn func(ctx context.Context) (T, error)) *Pipeline[T] {
	return &Pipeline[T]{name: name, fn: fn}
}

// Resolve lifts a value into an already-successful pipeline.
func Resolve[T any](v T) *Pipeline[T] {
	return &Pipeline[T]{
		name: "resolve",
		fn: func(_ context.Context) (T, error) {
			return v, nil
		},
	}
}

// Fail lifts an error into an already-failed pipeline.
func Fail[T any](err error) *Pipeline[T] {
	return &Pipeline[T]{
		name: "fail",
		fn: func(_ context.Context) (T, error) {
			var zero T
			return zero, err
		},
	}
}

// Name returns the pipeline's name.
func (p *Pipeline[T]) Name() string {
	return p.name
}

// run executes the pipeline body synchronously. Used by Start and by
// combinators that embed one pipeline inside another.
func (p *Pipeline[T]) run(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return p.fn(ctx)
}
