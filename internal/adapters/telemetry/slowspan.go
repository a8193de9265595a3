// Package telemetry wires the OpenTelemetry SDK so slow service requests
// surface in the log without a metrics backend.
package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/transit/internal/core/ports"
)

// SlowSpanProcessor implements sdktrace.SpanProcessor and warns about
// spans whose duration exceeds the configured threshold. Fast spans cost
// one duration comparison and are otherwise ignored.
type SlowSpanProcessor struct {
	log       ports.Logger
	threshold time.Duration
}

// NewSlowSpanProcessor returns a processor warning about spans slower
// than threshold.
func NewSlowSpanProcessor(log ports.Logger, threshold time.Duration) *SlowSpanProcessor {
	return &SlowSpanProcessor{
		log:       log,
		threshold: threshold,
	}
}

// OnStart is called when a span starts.
func (p *SlowSpanProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (p *SlowSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.log == nil {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime())
	if elapsed < p.threshold {
		return
	}
	p.log.Warn(fmt.Sprintf("%s took %s", s.Name(), elapsed.Round(time.Millisecond)))
}

// ForceFlush does nothing.
func (p *SlowSpanProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *SlowSpanProcessor) Shutdown(_ context.Context) error {
	return nil
}
