package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/cardfront/locales"
	"github.com/dmitrymomot/cardfront/pkg/config"
	"github.com/dmitrymomot/cardfront/pkg/environment"
	"github.com/dmitrymomot/cardfront/pkg/httpserver"
	"github.com/dmitrymomot/cardfront/pkg/i18n"
	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/svc/cardapi"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "cardfront: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ENV_FILE names dotenv files read before the default .env, comma separated.
	if files := os.Getenv("ENV_FILE"); files != "" {
		if err := config.LoadEnv(strings.Split(files, ",")...); err != nil {
			return err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	overrides, err := cfg.logOptions()
	if err != nil {
		return err
	}
	log := logger.New(append([]logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}, overrides...)...)
	logger.SetAsDefault(log)

	tr, err := locales.NewTranslator(ctx,
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!env.IsProduction()),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	api, err := cardapi.New(cfg.CardAPIURL,
		cardapi.WithTimeout(cfg.CardAPITimeout),
		cardapi.WithMaxRetries(cfg.CardAPIMaxRetries),
		cardapi.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("card api client: %w", err)
	}

	log.InfoContext(ctx, "starting",
		logger.Group("card_api",
			slog.String("url", cfg.CardAPIURL),
			slog.Duration("timeout", cfg.CardAPITimeout),
			slog.Int("max_retries", cfg.CardAPIMaxRetries),
		),
		slog.Any("languages", tr.SupportedLanguages()),
	)

	router := newRouter(routerDeps{env: env, log: log, translator: tr, api: api})
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
