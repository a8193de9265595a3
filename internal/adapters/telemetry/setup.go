package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/transit/internal/core/ports"
)

// SlowFetchThreshold marks a service request as worth surfacing. A fetch
// slower than this is long enough to be felt while scrubbing.
const SlowFetchThreshold = 750 * time.Millisecond

// Setup installs a global TracerProvider that reports slow spans to the
// logger. The returned shutdown function flushes and stops the provider.
func Setup(log ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewSlowSpanProcessor(log, SlowFetchThreshold)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
