// Package pipeline provides composable single-value asynchronous
// computations with explicit cancellation and exactly-once outcome delivery.
//
// A Pipeline[T] is a lazy description of work; Start launches it and returns
// a Run[T] handle the consumer subscribes to:
//
//	run := p.Start(ctx, pipeline.WithRunLogger(log))
//	v, err := run.Wait(ctx)
//
// # Combinators
//
//   - Map: transform a successful value; failures pass through unmodified
//   - Chain: feed one pipeline's success into building a dependent pipeline;
//     if the first fails the second is never constructed or run
//   - All: run independent pipelines concurrently, first error wins
//   - Resolve/Fail: unit constructors
//
// # Cancellation
//
// Run.Cancel is idempotent and authoritative for the outcome channel: once
// cancelled, no outcome is ever delivered, though work already submitted to
// the transport may still complete silently in the background. Cancellation
// racing natural completion yields zero or one outcome, never two.
package pipeline
