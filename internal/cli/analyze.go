package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pep299/insight-agent/internal/analyzer"
	"github.com/pep299/insight-agent/internal/diagnostics"
)

// analysisError carries a rejected outcome out of RunE
type analysisError struct {
	outcome analyzer.Outcome
}

func (e *analysisError) Error() string {
	return e.outcome.Message
}

func newAnalyzeCommand(opts *options) *cobra.Command {
	var enforceLimit bool

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze text from arguments or stdin",
		Example: `  insight analyze "This is a great product!"
  echo "Hello world!" | insight analyze
  insight analyze --output yaml < review.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			sink := diagnostics.NewLogSink(opts.logger)
			ctx := cmd.Context()
			length := utf8.RuneCountInString(text)
			start := time.Now()

			sink.Record(ctx, diagnostics.Event{Type: diagnostics.EventReceived, TextLength: length})

			outcome := analyzer.Outcome{}
			if enforceLimit {
				outcome = analyzer.CheckLength(text, analyzer.MaxTextLength)
			}
			if outcome.OK() {
				outcome = analyzer.Evaluate(text)
			}

			if !outcome.OK() {
				sink.Record(ctx, diagnostics.Event{
					Type:       diagnostics.EventRejected,
					Kind:       outcome.Kind,
					TextLength: length,
					Err:        outcome.Err(),
				})
				return &analysisError{outcome: outcome}
			}

			sink.Record(ctx, diagnostics.Event{Type: diagnostics.EventCompleted, Duration: time.Since(start)})

			return writeValue(cmd.OutOrStdout(), opts.output, outcome.Result)
		},
	}

	cmd.Flags().BoolVar(&enforceLimit, "limit", false, "reject text longer than the service's 10,000 character cap")

	return cmd
}

// readText joins args with spaces, or reads all of stdin when no args are given
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// writeValue prints v as indented JSON or YAML
func writeValue(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}
