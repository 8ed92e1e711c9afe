package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/pep299/insight-agent/internal/analyzer"
	"github.com/pep299/insight-agent/internal/config"
	"github.com/pep299/insight-agent/internal/diagnostics"
	"github.com/pep299/insight-agent/internal/response"
)

// AnalysisRequest is the body accepted by /analyze
type AnalysisRequest struct {
	Text *string `json:"text"`
}

type rootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// rootHandler is the liveness probe
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteOK(w, rootResponse{
		Message: "Insight-Agent is running!",
		Status:  "healthy",
	})
}

// healthHandler is the readiness probe
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteOK(w, healthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
		Version: config.Version,
	})
}

// analyzeHandler validates the submitted text and returns its analysis
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalysisRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeOutcome(ctx, w, analyzer.Outcome{Kind: analyzer.KindSizeLimit, Message: analyzer.TooLongMessage}, 0, time.Now())
			return
		}
		response.WriteUnprocessable(w, "Invalid request body")
		return
	}

	if req.Text == nil {
		response.WriteUnprocessable(w, "text field is required")
		return
	}

	text := *req.Text
	length := utf8.RuneCountInString(text)
	start := time.Now()

	s.sink.Record(ctx, diagnostics.Event{Type: diagnostics.EventReceived, TextLength: length})

	if outcome := analyzer.CheckLength(text, s.config.MaxTextLength); !outcome.OK() {
		s.writeOutcome(ctx, w, outcome, length, start)
		return
	}

	s.writeOutcome(ctx, w, s.safeAnalyze(text), length, start)
}

// safeAnalyze runs the analysis function, reporting a panic as an internal failure
func (s *Server) safeAnalyze(text string) (outcome analyzer.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = analyzer.Internal(fmt.Errorf("panic: %v", r))
		}
	}()
	return s.analyze(text)
}

// writeOutcome records the outcome and maps it to an HTTP response
func (s *Server) writeOutcome(ctx context.Context, w http.ResponseWriter, outcome analyzer.Outcome, length int, start time.Time) {
	event := diagnostics.Event{
		Kind:       outcome.Kind,
		TextLength: length,
		Duration:   time.Since(start),
		Err:        outcome.Err(),
	}

	switch outcome.Kind {
	case analyzer.KindNone:
		event.Type = diagnostics.EventCompleted
		s.sink.Record(ctx, event)
		response.WriteOK(w, outcome.Result)
	case analyzer.KindValidation, analyzer.KindSizeLimit:
		event.Type = diagnostics.EventRejected
		s.sink.Record(ctx, event)
		response.WriteBadRequest(w, outcome.Message)
	default:
		event.Type = diagnostics.EventFailed
		s.sink.Record(ctx, event)
		response.WriteInternalError(w, analyzer.InternalMessage)
	}
}
