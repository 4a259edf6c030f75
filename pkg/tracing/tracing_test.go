package tracing

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/skybook/skybook-web/config"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	previous := tracer
	tracer = tp.Tracer(instrumentationName)
	t.Cleanup(func() { tracer = previous })
	return rec
}

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(config.ObservabilityConfig{ServiceName: "skybook-web"}, "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_NoTracer(t *testing.T) {
	previous := tracer
	tracer = nil
	t.Cleanup(func() { tracer = previous })

	ctx := context.Background()
	got, span := StartSpan(ctx, "noop")
	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestStartClientSpan_RecordsError(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartClientSpan(context.Background(), "bookings.create", http.MethodPost, "/bookings")
	RecordError(span, errors.New("HTTP 500"))
	RecordError(span, nil)
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "skyapi.bookings.create", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "HTTP 500", ended[0].Status().Description)
}

func TestInjectHeaders_WritesTraceparent(t *testing.T) {
	withRecorder(t)
	previous := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(previous) })

	ctx, span := StartSpan(context.Background(), "page")
	defer span.End()

	header := http.Header{}
	InjectHeaders(ctx, header)
	assert.NotEmpty(t, header.Get("traceparent"))
}
