package diagnostics

import (
	"context"
	"time"

	"github.com/pep299/insight-agent/internal/analyzer"
)

// EventType identifies a point in the life of an analysis request
type EventType string

const (
	EventReceived  EventType = "analysis_received"
	EventCompleted EventType = "analysis_completed"
	EventRejected  EventType = "analysis_rejected"
	EventFailed    EventType = "analysis_failed"
)

// Event describes something that happened while handling a request
type Event struct {
	Type       EventType
	TextLength int
	Kind       analyzer.ErrorKind
	Duration   time.Duration
	Err        error
}

// Sink records diagnostic events. Implementations must be safe for concurrent use.
type Sink interface {
	Record(ctx context.Context, event Event)
}

// Nop discards every event
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// Multi fans an event out to every sink in order
type Multi []Sink

func (m Multi) Record(ctx context.Context, event Event) {
	for _, sink := range m {
		sink.Record(ctx, event)
	}
}
