package cards

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardfront/handler"
	"github.com/dmitrymomot/cardfront/pkg/binder"
	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/svc/card"
)

// API is the subset of the card API client the module needs.
type API interface {
	List(ctx context.Context) ([]card.Card, error)
	Get(ctx context.Context, id int) (card.Card, error)
	Create(ctx context.Context, p card.Payload) (card.Card, error)
	Update(ctx context.Context, id int, p card.Payload) (card.Card, error)
	Delete(ctx context.Context, id int) error
}

// Translator resolves a key in the request locale, using fallback when the
// key is missing. *i18n.Translator satisfies it.
type Translator interface {
	Tdc(ctx context.Context, key, fallback string, args ...string) string
}

// Translation keys for failures that are not field validation errors.
const (
	KeyCreateFailed = "card.errors.create_failed"
	KeyUpdateFailed = "card.errors.update_failed"
	KeyDeleteFailed = "card.errors.delete_failed"
)

type Service struct {
	api          API
	views        *Views
	errorHandler handler.ErrorHandler
	tr           Translator
	log          *slog.Logger
	now          func() time.Time
}

type Option func(*Service)

func WithTranslator(tr Translator) Option {
	return func(s *Service) {
		if tr != nil {
			s.tr = tr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for expiry validation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(api API, views *Views, errorHandler handler.ErrorHandler, opts ...Option) *Service {
	s := &Service{
		api:          api,
		views:        views,
		errorHandler: errorHandler,
		tr:           fallbackTranslator{},
		log:          slog.New(slog.DiscardHandler),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("cards"))
	return s
}

// Handle returns the module router, meant to be mounted at "/".
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	path := handler.WithBinders(binder.Path(chi.URLParam))
	form := handler.WithBinders(binder.Form())
	onError := handler.WithErrorHandler(s.errorHandler)

	r.Get("/", handler.Wrap(s.list, onError))

	r.Get("/card/new", handler.Wrap(s.newForm, onError))
	r.Post("/card/new", handler.Wrap(s.submitNew, form, onError))
	r.Post("/card/new/confirm", handler.Wrap(s.confirmNew, form, onError))

	// DataStar formatting
	signals := handler.WithBinders(binder.Signals())
	r.Post("/card/preview", handler.Wrap(s.preview, signals, onError))
	r.Post("/card/format", handler.Wrap(s.format, signals, onError))

	r.Get("/card/{id:[0-9]+}", handler.Wrap(s.show, path, onError))
	r.Get("/card/edit/{id:[0-9]+}", handler.Wrap(s.editForm, path, onError))
	r.Post("/card/edit/{id:[0-9]+}", handler.Wrap(s.submitEdit, path, form, onError))
	r.Get("/card/delete/{id:[0-9]+}", handler.Wrap(s.deleteForm, path, onError))
	r.Post("/card/delete/{id:[0-9]+}", handler.Wrap(s.deleteCard, path, onError))

	return r
}

type fallbackTranslator struct{}

func (fallbackTranslator) Tdc(_ context.Context, _, fallback string, _ ...string) string {
	return fallback
}
