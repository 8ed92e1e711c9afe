package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pep299/insight-agent/internal/config"
)

// options holds the global flags shared by every subcommand
type options struct {
	output  string
	verbose bool
	logger  zerolog.Logger
}

// NewRootCommand builds the insight command tree
func NewRootCommand() *cobra.Command {
	opts := &options{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Insight-Agent - text statistics and keyword sentiment",
		Long: `insight analyzes a block of text and prints word, character, sentence and
paragraph counts, the average word length and a keyword-based sentiment label.

It runs the same analysis the Insight-Agent HTTP service exposes on /analyze.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "json", "yaml":
			default:
				return fmt.Errorf("unsupported output format %q (want json or yaml)", opts.output)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format (json, yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(newAnalyzeCommand(opts), newVersionCommand(opts))

	return cmd
}

// Execute runs the command tree against os.Args
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}

// exitCode maps an error returned by Execute to a process exit status
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var analysisErr *analysisError
	if errors.As(err, &analysisErr) {
		return 2
	}
	return 1
}

// Main runs the CLI and exits the process
func Main() {
	err := Execute(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
