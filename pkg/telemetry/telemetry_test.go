package telemetry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Mouryagna/ML-Project/pkg/pipeline"
)

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(core))

	sink.Emit(pipeline.Event{RunID: "r", Stage: "load", Status: pipeline.Started, Rows: -1})
	sink.Emit(pipeline.Event{RunID: "r", Stage: "load", Status: pipeline.Succeeded, Rows: 10, Path: "/tmp/x.csv", Duration: time.Second})
	sink.Emit(pipeline.Event{RunID: "r", Stage: "write_raw", Status: pipeline.Failed, Rows: -1, Err: errors.New("disk full")})

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "stage started", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.NotContains(t, entries[0].ContextMap(), "rows")

	assert.Equal(t, "stage succeeded", entries[1].Message)
	fields := entries[1].ContextMap()
	assert.Equal(t, "r", fields["run_id"])
	assert.Equal(t, int64(10), fields["rows"])
	assert.Equal(t, "/tmp/x.csv", fields["path"])

	assert.Equal(t, "stage failed", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "disk full", entries[2].ContextMap()["error"])
}

func TestMetricsSink(t *testing.T) {
	m := NewMetricsSink()
	Multi{m, pipeline.Nop{}}.Emit(pipeline.Event{Stage: "load", Status: pipeline.Succeeded, Rows: 100, Duration: 2 * time.Second})
	m.Emit(pipeline.Event{Stage: "write_raw", Status: pipeline.Failed, Rows: -1})

	assert.Equal(t, 100.0, testutil.ToFloat64(m.rows.WithLabelValues("load")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.duration.WithLabelValues("load")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("write_raw")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.lastSuccess))

	path := filepath.Join(t.TempDir(), "ingestion.prom")
	require.NoError(t, m.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `ingest_stage_rows{stage="load"} 100`))
}
