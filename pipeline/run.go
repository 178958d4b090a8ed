package pipeline

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/restpipe/restpipe/logger"
)

// Outcome is the terminal result of a run: a value or an error, never both.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Run states. Transitions are pending→done or pending→cancelled, decided by
// a single compare-and-swap, so at most one outcome is ever delivered.
const (
	statePending int32 = iota
	stateDone
	stateCancelled
)

// RunOptions configures a single run.
type RunOptions struct {
	Logger *logger.Logger
	RunID  string
	Tracer trace.Tracer
}

// RunOption is a functional option for Start.
type RunOption func(*RunOptions)

// WithRunLogger attaches a logger; each run logs start, finish, and dropped
// outcomes with its run id.
func WithRunLogger(log *logger.Logger) RunOption {
	return func(o *RunOptions) { o.Logger = log.WithComponent("pipeline") }
}

// WithRunID sets an explicit run id. A UUID is generated when empty.
func WithRunID(id string) RunOption {
	return func(o *RunOptions) { o.RunID = id }
}

// WithTracer overrides the tracer used for run spans.
func WithTracer(tracer trace.Tracer) RunOption {
	return func(o *RunOptions) { o.Tracer = tracer }
}

// Run is a handle to one in-flight execution of a pipeline. The consumer
// owns the handle; the engine only references it.
type Run[T any] struct {
	id     string
	ch     chan Outcome[T]
	cancel context.CancelFunc
	state  atomic.Int32
	log    *logger.Logger
}

// Start executes the pipeline asynchronously and returns a run handle.
// Exactly one Outcome is delivered on the handle's channel unless the run is
// cancelled first, in which case none ever is.
func (p *Pipeline[T]) Start(ctx context.Context, opts ...RunOption) *Run[T] {
	o := RunOptions{Logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.RunID == "" {
		o.RunID = uuid.New().String()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer("github.com/restpipe/restpipe/pipeline")
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &Run[T]{
		id:     o.RunID,
		ch:     make(chan Outcome[T], 1),
		cancel: cancel,
		log:    o.Logger,
	}

	go func() {
		spanCtx, span := o.Tracer.Start(runCtx, p.name,
			trace.WithAttributes(attribute.String("pipeline.run_id", o.RunID)))
		start := time.Now()
		v, err := p.run(spanCtx)
		elapsed := time.Since(start)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		if !r.state.CompareAndSwap(statePending, stateDone) {
			// Cancellation won the race; the result is dropped silently.
			r.log.Debug("outcome dropped after cancel", logger.Fields(
				logger.FieldRunID, r.id,
				logger.FieldPipeline, p.name,
			))
			return
		}
		cancel()

		fields := logger.Fields(
			logger.FieldRunID, r.id,
			logger.FieldPipeline, p.name,
			logger.FieldDuration, elapsed.Milliseconds(),
		)
		if err != nil {
			fields[logger.FieldError] = err.Error()
			r.log.Error("run failed", fields)
		} else {
			r.log.Debug("run finished", fields)
		}

		r.ch <- Outcome[T]{Value: v, Err: err}
		close(r.ch)
	}()

	return r
}

// ID returns the run id.
func (r *Run[T]) ID() string {
	return r.id
}

// Outcome returns the channel on which the terminal outcome is delivered.
// The channel receives at most one value and is then closed. After Cancel
// it is closed without ever receiving a value.
func (r *Run[T]) Outcome() <-chan Outcome[T] {
	return r.ch
}

// Wait blocks until the run completes, the run is cancelled, or ctx is done.
// A cancelled run reports context.Canceled.
func (r *Run[T]) Wait(ctx context.Context) (T, error) {
	select {
	case o, ok := <-r.ch:
		if !ok {
			var zero T
			return zero, context.Canceled
		}
		return o.Value, o.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel abandons the run. The underlying transport call is asked to stop
// via context cancellation; whether or not it does, no outcome is ever
// delivered once Cancel wins the race with natural completion. Cancelling
// twice is a no-op.
func (r *Run[T]) Cancel() {
	if r.state.CompareAndSwap(statePending, stateCancelled) {
		close(r.ch)
		r.log.Debug("run cancelled", logger.Fields(logger.FieldRunID, r.id))
	}
	r.cancel()
}
