package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rc := NewRequestContextWithID(logger, "req-1", "resolve_batch")
	rc.Info("batch done", slog.Int(LogFieldSpans, 3))
	rc.Error("violation", errors.New("bad value"), slog.String(LogFieldKind, "date"))

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "operation=resolve_batch")
	assert.Contains(t, out, "spans=3")
	assert.Contains(t, out, `error="bad value"`)
	assert.Contains(t, out, "kind=date")
}

func TestRequestContextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	rc := NewRequestContext(logger, "resolve")
	rc.Debug("dropped span")
	rc.Info("done")
	assert.Empty(t, buf.String())
	assert.NotEmpty(t, rc.RequestID)
}

func TestRequestContextInContext(t *testing.T) {
	rc := NewRequestContext(nil, "resolve")
	ctx := WithRequestContext(context.Background(), rc)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, rc, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(name))
		})
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.RecordResolve("date", i%5 != 0, time.Millisecond)
		}(i)
	}
	wg.Wait()
	m.RecordViolation()
	m.RecordCacheHit()

	s := m.Snapshot()
	assert.Equal(t, int64(10), s.RequestTotal)
	assert.Equal(t, int64(2), s.NoMatch)
	assert.Equal(t, int64(1), s.Violations)
	assert.Equal(t, int64(1), s.CacheHits)
	assert.Equal(t, int64(8), s.Kinds["date"].Resolved)
	assert.Equal(t, time.Millisecond, s.Kinds["date"].AverageDuration)
	assert.InDelta(t, 80.0, s.MatchRate(), 0.001)

	m.Reset()
	assert.Equal(t, int64(0), m.Snapshot().RequestTotal)
	assert.InDelta(t, 100.0, m.Snapshot().MatchRate(), 0.001)
}
