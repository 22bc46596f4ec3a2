package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardfront/locales"
	"github.com/dmitrymomot/cardfront/pkg/environment"
	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/svc/cardapi"
)

const listBody = `{"status":200,"message":"ok","data":[{"id":7,"cardholder_name":"Ana Pérez","card_number":"4111111111111111","cvv":"123","brand":"visa","exp_month":6,"exp_year":2025,"background_image_url":"1","created_at":"2024-05-01T10:00:00Z"}]}`

type apiStub struct {
	mu         sync.Mutex
	requestIDs []string
}

func (s *apiStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, r.Header.Get(requestid.Header))
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/":
			_, _ = w.Write([]byte(listBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Card not found","data":null}`))
		}
	})
}

func (s *apiStub) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

func newTestRouter(t *testing.T, apiURL string) http.Handler {
	t.Helper()

	tr, err := locales.NewTranslator(context.Background())
	require.NoError(t, err)

	api, err := cardapi.New(apiURL, cardapi.WithMaxRetries(0))
	require.NoError(t, err)

	return newRouter(routerDeps{
		env:        environment.Development,
		log:        logger.Discard(),
		translator: tr,
		api:        api,
	})
}

func get(h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		r.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRouter(t *testing.T) {
	t.Parallel()

	stub := &apiStub{}
	api := httptest.NewServer(stub.handler())
	t.Cleanup(api.Close)

	h := newTestRouter(t, api.URL+"/api")

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := get(h, "/health/live", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readiness", func(t *testing.T) {
		t.Parallel()
		rec := get(h, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("card list in spanish", func(t *testing.T) {
		t.Parallel()
		rec := get(h, "/", http.Header{
			"Accept-Language": {"es-MX,es;q=0.9"},
			requestid.Header:  {"list-req-1"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "list-req-1", rec.Header().Get(requestid.Header))
		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="es">`)
		assert.Contains(t, body, "Lista de tarjetas")
		assert.Contains(t, body, "41**********1111")
		assert.Contains(t, stub.ids(), "list-req-1")
	})

	t.Run("unknown card", func(t *testing.T) {
		t.Parallel()
		rec := get(h, "/card/9?lang=es", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Tarjeta no encontrada.")
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		rec := get(h, "/nowhere", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Card not found.")
	})
}

func TestRouter_APIDown(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.NotFoundHandler())
	url := api.URL
	api.Close()

	h := newTestRouter(t, url)

	rec := get(h, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(h, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "The card service is not reachable.")
}
