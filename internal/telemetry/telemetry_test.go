package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"tradehall/internal/config"
)

func TestSetup_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{
		Env:       "test",
		Telemetry: config.TelemetryConfig{ServiceName: "tradehall-test", SampleRatio: 1},
	}

	shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.IsRecording())
}
