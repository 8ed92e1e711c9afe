package main

import (
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog"

	// Registers the AnalyzeText function
	_ "github.com/pep299/insight-agent"
)

// Runs the Cloud Function locally: FUNCTION_TARGET=AnalyzeText go run ./cmd/function
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	logger.Info().Str("port", port).Msg("Starting function framework")
	if err := funcframework.Start(port); err != nil {
		logger.Fatal().Err(err).Msg("funcframework.Start")
	}
}
