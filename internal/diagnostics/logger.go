package diagnostics

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes events as structured log lines
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink backed by logger
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, event Event) {
	var e *zerolog.Event

	switch event.Type {
	case EventReceived:
		e = s.logger.Info().Int("text_length", event.TextLength)
	case EventCompleted:
		e = s.logger.Info().Dur("duration", event.Duration)
	case EventRejected:
		e = s.logger.Warn().Str("reason", event.Kind.String()).Int("text_length", event.TextLength)
		if event.Err != nil {
			e = e.Str("detail", event.Err.Error())
		}
	case EventFailed:
		e = s.logger.Error().Err(event.Err)
	default:
		e = s.logger.Debug()
	}

	e.Str("event", string(event.Type)).Msg("analysis")
}
