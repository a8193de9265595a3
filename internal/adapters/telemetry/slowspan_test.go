package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/transit/internal/adapters/telemetry"
	"go.trai.ch/transit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// endSpan starts and ends a span on a provider wired to the processor,
// sleeping to control the measured duration.
func endSpan(t *testing.T, p sdktrace.SpanProcessor, name string, d time.Duration) {
	t.Helper()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(p))
	defer func() { require.NoError(t, tp.Shutdown(context.Background())) }()

	_, span := tp.Tracer("test").Start(context.Background(), name)
	time.Sleep(d)
	span.End()
}

func TestSlowSpanProcessor_WarnsAboutSlowSpans(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Regex(`^ephemeris\.fetch_snapshot took `)).Times(1)

	p := telemetry.NewSlowSpanProcessor(log, 10*time.Millisecond)
	endSpan(t, p, "ephemeris.fetch_snapshot", 30*time.Millisecond)
}

func TestSlowSpanProcessor_IgnoresFastSpans(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	// No Warn expectation: a fast span must not log.

	p := telemetry.NewSlowSpanProcessor(log, time.Second)
	endSpan(t, p, "ephemeris.fetch_positions", 0)
}

func TestSlowSpanProcessor_NilLogger(t *testing.T) {
	p := telemetry.NewSlowSpanProcessor(nil, 0)
	require.NotPanics(t, func() {
		endSpan(t, p, "span", 0)
	})
}
