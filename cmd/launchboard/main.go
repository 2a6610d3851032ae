package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/launchapi"
	"github.com/tinytelemetry/launchboard/internal/logging"
	"github.com/tinytelemetry/launchboard/internal/metrics"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

const metricsNamespace = "launchboard"

var (
	configPath  string
	apiURL      string
	showVersion bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "launchboard",
		Short: "Browse SpaceX launches in the terminal",
		Long: `launchboard shows launch records from the launches API with status
filtering, mission search, pagination, summary statistics and a detail view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd)
				return nil
			}
			cfg, err := loadConfig(configPath, apiURL)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/launchboard/config.yml)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "launches API base URL (overrides config and environment)")
	root.Flags().BoolVar(&showVersion, "version", false, "print version information")

	root.AddCommand(newServeCmd(), newShowCmd(), newHealthCmd())
	return root
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Launchboard - SpaceX Launch Dashboard\n")
	fmt.Fprintf(out, "  Version:    %s\n", version)
	fmt.Fprintf(out, "  Commit:     %s\n", commit)
	fmt.Fprintf(out, "  Built:      %s\n", buildTime)
	fmt.Fprintf(out, "  Go version: %s\n", goVersion)
}

// newLogger builds the runtime logger. fallback is used when log-file is
// unset: a file for the TUI, stderr for the server.
func newLogger(cfg appConfig, fallback string) (*zap.Logger, func(), error) {
	path := cfg.LogFile
	if path == "" {
		path = fallback
	}
	return logging.New(logging.Config{Level: cfg.LogLevel, Path: path})
}

// newClient resolves the API host once and builds the client for it.
func newClient(cfg appConfig, logger *zap.Logger, reg prometheus.Registerer) (*launchapi.Client, error) {
	baseURL, err := launchapi.ResolveBaseURL(cfg.APIURL, cfg.Origin, cfg.Production)
	if err != nil {
		return nil, err
	}
	return launchapi.NewClient(launchapi.Options{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger,
		Metrics: metrics.New(metricsNamespace, reg),
	}), nil
}
