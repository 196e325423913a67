package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("achilles-backend")

// EndSpanWithErrCheck marks the span as failed when err is not nil, and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// HoneycombSetup configures the otel SDK to export to honeycomb. The API key and
// the rest of the exporter settings are taken from the OTEL_* / HONEYCOMB_* env vars.
func HoneycombSetup(serviceName string) (func(), error) {
	// propagates baggage entries to the child spans
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugf("honeycomb tracing set up for %s", serviceName)
	return otelShutdown, nil
}
