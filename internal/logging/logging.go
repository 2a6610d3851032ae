// Package logging builds the zap logger shared by the dashboard, the web view
// and the API client.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how verbosely to log.
type Config struct {
	Level string // debug | info | warn | error
	// Path is the log file. "stderr" and "stdout" are passed through to zap;
	// empty disables logging.
	Path string
}

// DefaultLogPath returns $HOME/.local/state/launchboard/launchboard.log, or
// stderr when the home directory is unknown.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "stderr"
	}
	return filepath.Join(home, ".local", "state", "launchboard", "launchboard.log")
}

// New builds a production zap logger with ISO8601 timestamps. The returned
// cleanup flushes buffered entries.
func New(cfg Config) (*zap.Logger, func(), error) {
	if cfg.Path == "" {
		return zap.NewNop(), func() {}, nil
	}

	if cfg.Path != "stderr" && cfg.Path != "stdout" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.NewProductionConfig()
	config.EncoderConfig = encoderConfig
	config.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	config.OutputPaths = []string{cfg.Path}
	config.ErrorOutputPaths = []string{cfg.Path}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// Component returns a child logger tagged with a component name.
func Component(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("component", name))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
