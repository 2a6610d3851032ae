package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/webview"
)

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, apiURL)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default "+defaultListenAddr+")")
	return cmd
}

func runServer(cfg appConfig) error {
	logger, cleanup, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer cleanup()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client, err := newClient(withServeOrigin(cfg), logger, reg)
	if err != nil {
		return err
	}

	srv := webview.NewServer(webview.Options{
		Addr:       cfg.ListenAddr,
		Source:     client,
		FetchLimit: cfg.FetchLimit,
		PageSize:   cfg.PageSize,
		Gatherer:   reg,
		Logger:     logger,
	})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting http server on %s: %w", cfg.ListenAddr, err)
	}
	printStartupBanner(srv.Addr(), client.BaseURL())
	logger.Info("serving dashboard", zap.String("addr", srv.Addr()), zap.String("api", client.BaseURL()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh

	fmt.Println("\nShutting down gracefully...")
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("stopping http server: %w", err)
	}
	return nil
}

// withServeOrigin makes a production server without an origin talk to its own
// listen address.
func withServeOrigin(cfg appConfig) appConfig {
	if cfg.Production && cfg.Origin == "" {
		cfg.Origin = "http://" + cfg.ListenAddr
	}
	return cfg
}

func printStartupBanner(addr, api string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	fmt.Println()
	fmt.Println(bold.Render("    Launchboard") + " " + dim.Render("v"+version))
	fmt.Println(dim.Render("    ─────────────────────────────────"))
	fmt.Printf("    %s  Dashboard      %s\n", check, cyan.Render("http://"+addr+"/"))
	fmt.Printf("    %s  Metrics        %s\n", check, cyan.Render("http://"+addr+"/metrics"))
	fmt.Printf("    %s  Launches API   %s\n", check, cyan.Render(api))
	fmt.Println()
}
