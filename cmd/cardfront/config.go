package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/cardfront/pkg/httpserver"
	"github.com/dmitrymomot/cardfront/pkg/logger"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"cardfront"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// Empty values keep the environment defaults.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	CardAPIURL        string        `env:"CARD_API_URL" envDefault:"https://sii-test-api.onrender.com/api"`
	CardAPITimeout    time.Duration `env:"CARD_API_TIMEOUT" envDefault:"10s"`
	CardAPIMaxRetries int           `env:"CARD_API_MAX_RETRIES" envDefault:"2"`

	HTTP httpserver.Config
}

// logOptions turns the LOG_* overrides into logger options. They are meant to
// be applied after logger.WithEnvironment.
func (c appConfig) logOptions() ([]logger.Option, error) {
	var opts []logger.Option
	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if c.LogFormat != "" {
		f := logger.Format(strings.ToLower(c.LogFormat))
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return opts, nil
}
