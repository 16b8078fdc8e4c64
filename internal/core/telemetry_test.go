// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/config"
)

func TestNewTelemetry_DisabledReturnsNoop(t *testing.T) {
	tel, err := NewTelemetry(context.Background(),
		config.OtelConfig{Enabled: false, ServiceName: "inventory-api"},
		config.AppConfig{Version: "test", Environment: "test"},
	)

	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)
	require.NotNil(t, tel.Tracer)

	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNewTelemetry_EnabledWithoutEndpointReturnsNoop(t *testing.T) {
	tel, err := NewTelemetry(context.Background(),
		config.OtelConfig{Enabled: true, Endpoint: "", ServiceName: "inventory-api"},
		config.AppConfig{Version: "test", Environment: "test"},
	)

	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)
}

func TestNewExporter_ConstructsWithoutDialing(t *testing.T) {
	// otlptracegrpc.New connects lazily, so construction alone must succeed
	// for both TLS and insecure endpoints.
	for _, insecureConn := range []bool{true, false} {
		exporter, err := newExporter(context.Background(), config.OtelConfig{
			Endpoint: "localhost:4317",
			Insecure: insecureConn,
		})

		require.NoError(t, err)
		require.NotNil(t, exporter)
	}
}

func TestClampSampleRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{name: "zero falls back to default", rate: 0, want: defaultSampleRate},
		{name: "negative falls back to default", rate: -0.5, want: defaultSampleRate},
		{name: "above one falls back to default", rate: 1.5, want: defaultSampleRate},
		{name: "valid rate passes through", rate: 0.25, want: 0.25},
		{name: "full sampling allowed", rate: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampSampleRate(tt.rate))
		})
	}
}

func TestTraceIDFromContext_EmptyWithoutSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
