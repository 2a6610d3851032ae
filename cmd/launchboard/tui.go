package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/logging"
	"github.com/tinytelemetry/launchboard/internal/tui"
)

func runTUI(ctx context.Context, cfg appConfig) error {
	// The terminal belongs to Bubble Tea, so logs go to a file.
	logger, cleanup, err := newLogger(cfg, logging.DefaultLogPath())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	// The TUI has no /metrics endpoint; collectors stay unregistered.
	client, err := newClient(cfg, logger, nil)
	if err != nil {
		return err
	}
	logger.Info("starting dashboard",
		zap.String("version", version),
		zap.String("api", client.BaseURL()),
		zap.String("config", cfg.ConfigPath))

	dashboard := tui.NewDashboardModel(ctx, tui.Options{
		Source:             client,
		FetchLimit:         cfg.FetchLimit,
		PageSize:           cfg.PageSize,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		APIBaseURL:         client.BaseURL(),
		Logger:             logger,
	})
	app := tui.NewApp(tui.NewDashboardPage(dashboard))
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
