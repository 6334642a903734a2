package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpanOnlyForHandlersUnderParent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := startSpan(context.Background(), "httpapi.Handler.GetHome")
	assert.Equal(t, noopSpan, span, "no parent means no span")

	ctx, parent := provider.Tracer("test").Start(context.Background(), "request")
	_, helper := startSpan(ctx, "httpapi.writeError")
	assert.Equal(t, noopSpan, helper)

	_, handler := startSpan(ctx, "httpapi.Handler.GetTeam")
	require.True(t, handler.SpanContext().IsValid())
	assert.Equal(t, parent.SpanContext().TraceID(), handler.SpanContext().TraceID())
	handler.End()
	parent.End()
}

func TestSpanAttrKey(t *testing.T) {
	tests := map[string]string{
		"teamID":    "pl.team_id",
		"fixture":   "pl.fixture",
		"fixtureId": "pl.fixture_id",
		"XMLFeed":   "pl.xmlfeed",
	}
	for in, want := range tests {
		assert.Equal(t, want, spanAttrKey(in), in)
	}
}
