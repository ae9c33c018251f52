package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the client settings. Values are layered: defaults, then the
// YAML file, then environment variables (a .env file is loaded first).
type Config struct {
	AppName        string        `envconfig:"SURF_APP_NAME" yaml:"app_name"`
	ServerURL      string        `envconfig:"SURF_SERVER_URL" yaml:"server_url"`
	RequestTimeout time.Duration `envconfig:"SURF_REQUEST_TIMEOUT" yaml:"request_timeout"`
	UserAgent      string        `envconfig:"SURF_USER_AGENT" yaml:"user_agent"`
	Log            LogConfig     `envconfig:"LOG" yaml:"log"`
}

// LogConfig controls where the logger writes; the TUI owns stdout so this is a file
type LogConfig struct {
	File  string `envconfig:"FILE" yaml:"file"`
	Level string `envconfig:"LEVEL" yaml:"level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		AppName:        "surf-terminal",
		ServerURL:      "http://localhost:8000",
		RequestTimeout: 30 * time.Second,
		UserAgent:      "SurfTerminal/1.0 (github.com/ngmaloney/surf-terminal)",
		Log: LogConfig{
			File:  "surf-terminal.log",
			Level: "info",
		},
	}
}

// Load builds the configuration. yamlPath may be empty or point at a file
// that does not exist; both are treated as "no file".
func Load(yamlPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", yamlPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file %s: %w", yamlPath, err)
		}
	}

	// No default tags: envconfig leaves a field alone unless its variable is set
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the client cannot work without
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server url %q: %w", c.ServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server url %q: scheme must be http or https", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server url %q: missing host", c.ServerURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}
