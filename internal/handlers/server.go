package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pep299/insight-agent/internal/analyzer"
	"github.com/pep299/insight-agent/internal/config"
	"github.com/pep299/insight-agent/internal/diagnostics"
)

// maxBodyBytes bounds the request body. Ten thousand characters fit with
// room for JSON escaping.
const maxBodyBytes = 1 << 20

// AnalyzeFunc turns a text into an Outcome
type AnalyzeFunc func(text string) analyzer.Outcome

// Server holds the HTTP server and its dependencies
type Server struct {
	config   *config.Config
	logger   zerolog.Logger
	sink     diagnostics.Sink
	gatherer prometheus.Gatherer
	analyze  AnalyzeFunc
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger used for request logs
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSink sets the diagnostics sink analysis events are recorded on
func WithSink(sink diagnostics.Sink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithGatherer sets the registry served on /metrics
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithAnalyzer replaces the analysis function
func WithAnalyzer(fn AnalyzeFunc) Option {
	return func(s *Server) {
		s.analyze = fn
	}
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		config:   cfg,
		logger:   zerolog.Nop(),
		sink:     diagnostics.Nop{},
		gatherer: prometheus.DefaultGatherer,
		analyze:  analyzer.Evaluate,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/", s.rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/analyze", s.analyzeHandler).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

// Middleware functions

// corsMiddleware adds CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the ResponseWriter to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
