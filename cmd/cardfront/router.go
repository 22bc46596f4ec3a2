package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cardfront/handler"
	"github.com/dmitrymomot/cardfront/modules/cards"
	"github.com/dmitrymomot/cardfront/pkg/environment"
	"github.com/dmitrymomot/cardfront/pkg/httpserver"
	"github.com/dmitrymomot/cardfront/pkg/i18n"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/views"
)

// cardAPI is what the router needs from the card API client.
type cardAPI interface {
	cards.API
	Ping(ctx context.Context) error
}

type routerDeps struct {
	env        environment.Environment
	log        *slog.Logger
	translator *i18n.Translator
	api        cardAPI
}

func newRouter(d routerDeps) http.Handler {
	renderer := views.MustNew(d.translator)

	errorHandler := handler.NewErrorHandler(d.log, handler.ErrorHandlerConfig{
		ErrorPage:  renderer.ErrorPage,
		ErrorToast: renderer.ErrorToast,
		Translate: func(ctx context.Context, key, fallback string) string {
			return d.translator.Tdc(ctx, key, fallback)
		},
	})

	svc := cards.NewService(d.api, renderer.Cards(), errorHandler,
		cards.WithTranslator(d.translator),
		cards.WithLogger(d.log),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(d.env),
		i18n.Middleware(i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(d.translator.SupportedLanguages()...),
			i18n.WithFallbackLanguage(d.translator.DefaultLanguage()),
		)),
		middleware.Recoverer,
	)

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler(errorHandler)))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.api.Ping))

	r.Mount("/", svc.Handle())

	return r
}
