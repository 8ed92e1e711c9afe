package cloudfunctions

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pep299/insight-agent/internal/config"
	"github.com/pep299/insight-agent/internal/diagnostics"
	"github.com/pep299/insight-agent/internal/handlers"
	"github.com/pep299/insight-agent/internal/response"
)

var metrics = newRegistry()

func init() {
	// Register HTTP function for the Cloud Functions runtime
	functions.HTTP("AnalyzeText", AnalyzeText)
}

type registry struct {
	gatherer *prometheus.Registry
	sink     *diagnostics.MetricsSink
}

func newRegistry() registry {
	r := prometheus.NewRegistry()
	return registry{gatherer: r, sink: diagnostics.NewMetricsSink(r)}
}

// AnalyzeText is the HTTP function serving the same routes as cmd/server
func AnalyzeText(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.New(funcframework.LogWriter(r.Context())).With().Str("service", config.ServiceName).Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		response.WriteInternalError(w, "Internal server error")
		return
	}

	server := handlers.NewServer(cfg,
		handlers.WithLogger(logger),
		handlers.WithSink(diagnostics.Multi{diagnostics.NewLogSink(logger), metrics.sink}),
		handlers.WithGatherer(metrics.gatherer),
	)

	server.SetupRoutes().ServeHTTP(w, r)
}
