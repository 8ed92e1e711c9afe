package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pep299/insight-agent/internal/config"
)

// Build-time variables
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// VersionInfo represents version information
type VersionInfo struct {
	Service   string `json:"service" yaml:"service"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Service:   config.ServiceName,
				Version:   config.Version,
				Commit:    Commit,
				BuildTime: BuildTime,
				GoVersion: runtime.Version(),
				Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}
			return writeValue(cmd.OutOrStdout(), opts.output, info)
		},
	}
}
