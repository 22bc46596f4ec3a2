package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardfront/handler"
	"github.com/dmitrymomot/cardfront/pkg/environment"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/pkg/validator"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "page: "+p.Error+" id="+p.RequestID+" retry="+p.RetryURL)
		return err
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toast">`+p.Type+": "+p.Message+`</div>`)
		return err
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantLevel  slog.Level
		wantMsg    string
	}{
		{"generic", errors.New("boom"), 500, "error", slog.LevelError, "An error occurred processing your request."},
		{"not found", handler.ErrNotFound, 404, "warning", slog.LevelWarn, "Card not found."},
		{"wrapped unavailable", errors.Join(errors.New("dial"), handler.ErrServiceUnavailable), 503, "error", slog.LevelError, "The card service is not reachable. Please try again later."},
		{"custom key", handler.NewHTTPError(http.StatusConflict, "errors.conflict"), 409, "warning", slog.LevelWarn, "Conflict"},
		{
			"validation",
			validator.ValidationErrors{{Field: "cvv", Message: "CVV required."}, {Field: "exp_date", Message: "card expired."}},
			400, "warning", slog.LevelWarn, "CVV required. card expired.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.wantStatus, info.StatusCode)
			assert.Equal(t, tt.wantType, info.Type)
			assert.Equal(t, tt.wantLevel, info.LogLevel)
			assert.Equal(t, tt.wantMsg, info.Message)
		})
	}
}

func TestErrorHandler_Page(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&logs, nil)), handler.ErrorHandlerConfig{
		ErrorPage: errorPage,
		Translate: func(_ context.Context, key, fallback string) string {
			if key == handler.ErrNotFound.Key {
				return "Tarjeta no encontrada"
			}
			return fallback
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/card/99", nil)
	r = r.WithContext(requestid.WithContext(r.Context(), "req-1"))
	w := httptest.NewRecorder()
	eh(handler.NewContext(w, r), handler.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "page: Tarjeta no encontrada id=req-1 retry=/card/99", w.Body.String())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "status=404")
	assert.Contains(t, logs.String(), "component=error_handler")
}

func TestErrorHandler_ServerErrorLogsAtError(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&logs, nil)), handler.ErrorHandlerConfig{ErrorPage: errorPage})

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "db down")
}

func TestErrorHandler_ValidationMessagesAreNotTranslated(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
		ErrorPage: errorPage,
		Translate: func(context.Context, string, string) string { return "translated" },
	})

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/card/new/confirm", nil)),
		validator.ValidationErrors{{Field: "cvv", Message: "CVV required."}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CVV required.")
}

func TestErrorHandler_PlainTextFallback(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadGateway)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "unexpected answer")
}

func TestErrorHandler_DataStarToast(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
		ErrorPage:  errorPage,
		ErrorToast: errorToast,
	})

	r := httptest.NewRequest(http.MethodPost, "/card/format", nil)
	r.Header.Set("Datastar-Request", "true")
	w := httptest.NewRecorder()
	eh(handler.NewContext(w, r), handler.ErrServiceUnavailable)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "#toast-container")
	assert.Contains(t, body, "prepend")
	assert.Contains(t, body, "error: The card service is not reachable")
}

func TestErrorHandler_DataStarWithoutToast(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{ErrorPage: errorPage})

	r := httptest.NewRequest(http.MethodPost, "/card/format", nil)
	r.Header.Set("Datastar-Request", "true")
	w := httptest.NewRecorder()
	eh(handler.NewContext(w, r), handler.ErrNotFound)

	assert.Empty(t, w.Body.String())
}

func TestErrorHandler_DetailOnlyInDevelopment(t *testing.T) {
	t.Parallel()

	var got []handler.ErrorPageParams
	eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			got = append(got, p)
			return errorPage(p)
		},
	})

	for _, env := range []environment.Environment{environment.Development, environment.Production} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(environment.WithContext(r.Context(), env))
		eh(handler.NewContext(httptest.NewRecorder(), r), errors.New("card api: connection refused"))
	}

	require.Len(t, got, 2)
	assert.Equal(t, "card api: connection refused", got[0].Detail)
	assert.Empty(t, got[1].Detail)
}
