package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func resetProvider(t *testing.T) {
	t.Helper()
	providerOnce = sync.Once{}
	providerErr = nil
	provider = nil
	output = nil
}

func TestSpans(t *testing.T) {
	resetProvider(t)
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("cpu-scheduler", "test", exporter))

	ctx, parent := StartSpan(context.Background(), "request")
	_, child := StartSpan(ctx, "schedule RR")
	child.SetString("algorithm", "RR").SetInt("processes", 3)
	child.SetStatus(errors.New("boom"))
	child.End()
	parent.SetStatus(nil)
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	scheduled := spans[0]
	assert.Equal(t, "schedule RR", scheduled.Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), scheduled.Parent.SpanID())
	assert.Equal(t, codes.Error, scheduled.Status.Code)
	assert.Contains(t, scheduled.Attributes, attribute.String("algorithm", "RR"))
	assert.Contains(t, scheduled.Attributes, attribute.Int("processes", 3))
	assert.Equal(t, codes.Ok, spans[1].Status.Code)

	require.NoError(t, Shutdown(context.Background()))
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.NotPanics(t, func() {
		span.SetString("k", "v").SetInt("n", 1)
		span.SetStatus(nil)
		span.End()
	})
}

func TestInitFileOutputClosedOnShutdown(t *testing.T) {
	resetProvider(t)
	path := filepath.Join(t.TempDir(), "traces.json")

	require.NoError(t, Init("cpu-scheduler", "test", path))
	f := output
	require.NotNil(t, f)

	_, span := StartSpan(context.Background(), "schedule FCFS")
	span.End()
	require.NoError(t, Shutdown(context.Background()))

	assert.Nil(t, output)
	_, err := f.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "schedule FCFS")
}

func TestInitAfterProviderInstalledClosesFile(t *testing.T) {
	resetProvider(t)
	require.NoError(t, InitWithExporter("cpu-scheduler", "test", tracetest.NewInMemoryExporter()))

	require.NoError(t, Init("cpu-scheduler", "test", filepath.Join(t.TempDir(), "unused.json")))
	assert.Nil(t, output)
	require.NoError(t, Shutdown(context.Background()))
}
