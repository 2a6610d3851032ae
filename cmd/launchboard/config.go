package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/launchboard/internal/model"
	"github.com/tinytelemetry/launchboard/internal/webview"
)

const (
	defaultFetchLimit     = model.DefaultLaunchLimit
	defaultPageSize       = model.DefaultPageSize
	defaultRequestTimeout = model.DefaultRequestTimeout
	defaultSkin           = model.DefaultSkin
	defaultListenAddr     = webview.DefaultAddr
	defaultLogLevel       = "info"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	APIURL             string        `mapstructure:"api-url"`
	Origin             string        `mapstructure:"origin"`
	Production         bool          `mapstructure:"production"`
	FetchLimit         int           `mapstructure:"fetch-limit"`
	PageSize           int           `mapstructure:"page-size"`
	RequestTimeout     time.Duration `mapstructure:"request-timeout"`
	ListenAddr         string        `mapstructure:"listen-addr"`
	LogFile            string        `mapstructure:"log-file"`
	LogLevel           string        `mapstructure:"log-level"`
	Skin               string        `mapstructure:"skin"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	ConfigDir          string        `mapstructure:"-"` // not from config file
	ConfigPath         string        `mapstructure:"-"`
}

// loadConfig layers defaults, the config file, .env and the environment.
// apiURL, when set, overrides every other source for api-url.
func loadConfig(configPath, apiURL string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "launchboard")

	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LAUNCHBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-url", "")
	v.SetDefault("origin", "")
	v.SetDefault("production", false)
	v.SetDefault("fetch-limit", defaultFetchLimit)
	v.SetDefault("page-size", defaultPageSize)
	v.SetDefault("request-timeout", defaultRequestTimeout)
	v.SetDefault("listen-addr", defaultListenAddr)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigDir = configDir
	cfg.ConfigPath = v.ConfigFileUsed()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if !model.ValidPageSize(cfg.PageSize) {
		return cfg, fmt.Errorf("invalid page-size: %d (want one of %v)", cfg.PageSize, model.PageSizes)
	}
	if cfg.RequestTimeout <= 0 {
		return cfg, fmt.Errorf("invalid request-timeout: %s", cfg.RequestTimeout)
	}
	if cfg.FetchLimit <= 0 {
		return cfg, fmt.Errorf("invalid fetch-limit: %d", cfg.FetchLimit)
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}
