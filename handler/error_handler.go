package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/cardfront/pkg/environment"
	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/pkg/validator"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
	// Detail is the underlying error text, set only in development.
	Detail string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for regular requests. Without it a plain-text
	// error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders the notification patched in for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// Translate resolves HTTPError keys in the request locale. Without it the
	// key's built-in English text is used.
	Translate func(ctx context.Context, key, fallback string) string

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

var defaultMessages = map[string]string{
	ErrBadRequest.Key:          "The request could not be processed.",
	ErrNotFound.Key:            "Card not found.",
	ErrInternalServerError.Key: "An error occurred processing your request.",
	ErrBadGateway.Key:          "The card service returned an unexpected answer.",
	ErrServiceUnavailable.Key:  "The card service is not reachable. Please try again later.",
}

// ClassifyError maps err to a status, message and log level. HTTPError keeps
// its status; validation failures become 400 with their messages; anything
// else is a 500.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Key:        ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}
	info.Message = defaultMessages[info.Key]
	if info.Message == "" {
		info.Message = http.StatusText(info.StatusCode)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		info.StatusCode = http.StatusBadRequest
		info.Key = ErrBadRequest.Key
		info.Message = validationMessage(verrs)
	}

	info.Type = "error"
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func validationMessage(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return defaultMessages[ErrBadRequest.Key]
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, " ")
}

// NewErrorHandler returns the ErrorHandler shared by all routes: it logs the
// error at a level matching its status, then renders an error page, or a
// toast for DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)
		if cfg.Translate != nil && !errors.As(err, new(validator.ValidationErrors)) {
			info.Message = cfg.Translate(r.Context(), info.Key, info.Message)
		}
		id := requestid.FromContext(r.Context())

		log.LogAttrs(r.Context(), info.LogLevel, "request failed",
			logger.Error(err),
			logger.Status(info.StatusCode),
			logger.Method(r.Method),
			logger.URL(r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			renderToast(ctx, log, cfg, info, id)
			return
		}
		var detail string
		if environment.IsDevelopment(r.Context()) {
			detail = err.Error()
		}
		renderPage(ctx, log, cfg, info, id, detail)
	}
}

func renderToast(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, info ErrorInfo, id string) {
	if cfg.ErrorToast == nil {
		log.WarnContext(ctx, "no error toast configured for datastar request")
		return
	}
	resp := Templ(
		cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: id}),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "render error toast", logger.Error(err))
	}
}

func renderPage(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, info ErrorInfo, id, detail string) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}
	resp := Templ(
		cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  id,
			RetryURL:   ctx.Request().URL.Path,
			Detail:     detail,
		}),
		WithStatus(info.StatusCode),
	)
	if err := resp.Render(w, ctx.Request()); err != nil {
		log.ErrorContext(ctx, "render error page", logger.Error(err))
	}
}
