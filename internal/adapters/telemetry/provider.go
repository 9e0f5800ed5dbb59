package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/reqs/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)

// LogProcessor reports every finished span to a logger at debug level,
// so verbose runs show how long each analysis stage took.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor creates a span processor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))

	for _, attr := range s.Attributes() {
		fmt.Fprintf(&b, " %s=%s", attr.Key, attr.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		fmt.Fprintf(&b, " error=%q", s.Status().Description)
	}

	p.logger.Debug(b.String())
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error { return nil }

// NewProvider creates a tracer provider that reports spans to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
}
