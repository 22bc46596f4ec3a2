package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a Templ response.
type TemplOption func(*templResponse)

// WithTarget sets the CSS selector patched on DataStar requests.
func WithTarget(selector string) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithSelector(selector))
	}
}

// WithPatchMode sets how DataStar merges the fragment into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithMode(mode))
	}
}

// WithStatus sets the status of full-page responses, e.g. 422 for a form
// re-rendered with errors. SSE responses always use 200.
func WithStatus(code int) TemplOption {
	return func(t *templResponse) {
		if code > 0 {
			t.status = code
		}
	}
}

type templResponse struct {
	component templ.Component
	status    int
	patch     []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.patch...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an HTML page, or as an element patch over SSE
// for DataStar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := templResponse{component: component}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
