package diagnostics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep299/insight-agent/internal/analyzer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingSink) Record(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestMulti_FansOut(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}

	Multi{first, Nop{}, second}.Record(context.Background(), Event{Type: EventReceived, TextLength: 3})

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, 3, second.events[0].TextLength)
}

func TestLogSink_Record(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	sink.Record(context.Background(), Event{
		Type:       EventRejected,
		Kind:       analyzer.KindSizeLimit,
		TextLength: 10001,
		Err:        errors.New(analyzer.TooLongMessage),
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "analysis_rejected", line["event"])
	assert.Equal(t, "size_limit", line["reason"])
	assert.Equal(t, float64(10001), line["text_length"])
	assert.Equal(t, analyzer.TooLongMessage, line["detail"])
}

func TestLogSink_Failed(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	sink.Record(context.Background(), Event{
		Type: EventFailed,
		Kind: analyzer.KindInternal,
		Err:  errors.New("boom"),
	})

	assert.True(t, strings.Contains(buf.String(), `"level":"error"`))
	assert.True(t, strings.Contains(buf.String(), `"error":"boom"`))
}

func TestMetricsSink_Record(t *testing.T) {
	registry := prometheus.NewRegistry()
	sink := NewMetricsSink(registry)
	ctx := context.Background()

	sink.Record(ctx, Event{Type: EventReceived, TextLength: 12})
	sink.Record(ctx, Event{Type: EventCompleted, Kind: analyzer.KindNone, Duration: time.Millisecond})
	sink.Record(ctx, Event{Type: EventReceived, TextLength: 0})
	sink.Record(ctx, Event{Type: EventRejected, Kind: analyzer.KindValidation})

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.requests))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.outcomes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.outcomes.WithLabelValues("validation")))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNewMetricsSink_NilRegisterer(t *testing.T) {
	sink := NewMetricsSink(nil)
	sink.Record(context.Background(), Event{Type: EventReceived})

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.requests))
}
