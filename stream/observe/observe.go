// Package observe provides OpenTelemetry metric instrumentation for
// stream pipelines. The stream core is synchronous and dependency-free;
// instrumentation is therefore applied from the outside, by tapping a
// stage as it passes by and by timing terminal operations.
package observe

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-stream/stream/core"
)

// Recorder holds the instruments a pipeline reports into.
type Recorder struct {
	items     metric.Int64Counter
	stages    metric.Int64Counter
	terminals metric.Int64Histogram
}

// NewRecorder creates a Recorder on the given meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	items, err := meter.Int64Counter("stream.items",
		metric.WithDescription("count of elements observed passing a tapped stage"))
	if err != nil {
		return nil, fmt.Errorf("create items counter: %w", err)
	}
	stages, err := meter.Int64Counter("stream.stages",
		metric.WithDescription("count of stages tapped"))
	if err != nil {
		return nil, fmt.Errorf("create stages counter: %w", err)
	}
	terminals, err := meter.Int64Histogram("stream.terminal_us",
		metric.WithDescription("duration of timed terminal operations"),
		metric.WithUnit("us"))
	if err != nil {
		return nil, fmt.Errorf("create terminal histogram: %w", err)
	}
	return &Recorder{items: items, stages: stages, terminals: terminals}, nil
}

// Tap records the stage's element count and returns the stage
// unchanged, so it can be dropped into the middle of a chain. A nil
// Recorder is a no-op.
func Tap[T any](ctx context.Context, r *Recorder, s core.Stage[T]) core.Stage[T] {
	if r != nil {
		r.stages.Add(ctx, 1)
		r.items.Add(ctx, int64(s.Len()))
	}
	return s
}

// Timed runs a terminal operation and records its wall-clock duration.
// A nil Recorder runs the operation without recording.
func Timed[R any](ctx context.Context, r *Recorder, terminal func() R) R {
	if r == nil {
		return terminal()
	}
	start := time.Now()
	out := terminal()
	r.terminals.Record(ctx, time.Since(start).Microseconds())
	return out
}

// Run is Timed for terminal operations with no result, such as
// ForEach.
func Run(ctx context.Context, r *Recorder, terminal func()) {
	if r == nil {
		terminal()
		return
	}
	start := time.Now()
	terminal()
	r.terminals.Record(ctx, time.Since(start).Microseconds())
}
