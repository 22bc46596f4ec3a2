package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardfront/pkg/binder"
)

type brand string

type cardRequest struct {
	ID       int    `path:"id"`
	Name     string `form:"cardholder_name" json:"cardholderName"`
	Brand    brand  `form:"brand" json:"brand"`
	Confirm  bool   `form:"confirm"`
	Page     *int   `form:"page"`
	Internal string `form:"-"`
	hidden   string
}

func pathParams(params map[string]string) func(*http.Request, string) string {
	return func(_ *http.Request, name string) string { return params[name] }
}

func TestPath(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/card/7", nil)

	var req cardRequest
	require.NoError(t, binder.Path(pathParams(map[string]string{"id": "7"}))(r, &req))
	assert.Equal(t, 7, req.ID)

	var empty cardRequest
	require.NoError(t, binder.Path(pathParams(nil))(r, &empty))
	assert.Zero(t, empty.ID)

	err := binder.Path(pathParams(map[string]string{"id": "abc"}))(r, &req)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)

	assert.ErrorIs(t, binder.Path(nil)(r, &req), binder.ErrBinderNotApplicable)
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"cardholder_name": {"José Martínez"},
			"brand":           {"visa"},
			"confirm":         {"on"},
			"hidden":          {"nope"},
			"page":            {"3"},
			"Internal":        {"x"},
			"-":               {"x"},
		}
		r := httptest.NewRequest(http.MethodPost, "/card/new", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		var req cardRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "José Martínez", req.Name)
		assert.Equal(t, brand("visa"), req.Brand)
		assert.True(t, req.Confirm)
		assert.Empty(t, req.hidden)
		assert.Empty(t, req.Internal)
		require.NotNil(t, req.Page)
		assert.Equal(t, 3, *req.Page)
	})

	t.Run("query values are not form values", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/?cardholder_name=query", strings.NewReader("brand=visa"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req cardRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Empty(t, req.Name)
	})

	t.Run("not applicable without form body", func(t *testing.T) {
		t.Parallel()
		var req cardRequest

		get := httptest.NewRequest(http.MethodGet, "/card/new", nil)
		assert.ErrorIs(t, binder.Form()(get, &req), binder.ErrBinderNotApplicable)

		js := httptest.NewRequest(http.MethodPost, "/card/format", strings.NewReader(`{}`))
		js.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(js, &req), binder.ErrBinderNotApplicable)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("confirm=maybe"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var req cardRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrFailedToParseForm)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("brand=visa"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var req cardRequest
		assert.ErrorIs(t, binder.Form()(r, req), binder.ErrInvalidTarget)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("reads json body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/card/format",
			strings.NewReader(`{"cardholderName":"Ana","brand":"visa","other":1}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Datastar-Request", "true")

		var req cardRequest
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "Ana", req.Name)
		assert.Equal(t, brand("visa"), req.Brand)
	})

	t.Run("not applicable to plain requests", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/card/format", strings.NewReader(`{}`))
		var req cardRequest
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/card/format", strings.NewReader(`{"brand":`))
		r.Header.Set("Datastar-Request", "true")
		var req cardRequest
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrFailedToParseSignals)
	})
}

type cardFields struct {
	Name string `form:"cardholder_name"`
	CVV  string `form:"cvv"`
}

type confirmRequest struct {
	cardFields
	Fields  cardFields `form:"-"`
	Confirm string     `form:"confirm"`
}

type CardFields struct {
	Name string `form:"cardholder_name"`
	CVV  string `form:"cvv"`
}

type editRequest struct {
	ID int `path:"id"`
	CardFields
}

func TestForm_EmbeddedStruct(t *testing.T) {
	t.Parallel()

	form := url.Values{"cardholder_name": {"Ana"}, "cvv": {"123"}, "confirm": {"yes"}}

	t.Run("unexported embedded is skipped", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/card/new/confirm", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req confirmRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "yes", req.Confirm)
		assert.Empty(t, req.Name)
		assert.Empty(t, req.Fields.Name)
	})

	t.Run("exported embedded is flattened", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/card/edit/3", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req editRequest
		require.NoError(t, binder.Path(pathParams(map[string]string{"id": "3"}))(r, &req))
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, 3, req.ID)
		assert.Equal(t, "Ana", req.Name)
		assert.Equal(t, "123", req.CVV)
	})
}
