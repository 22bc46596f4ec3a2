package views

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cardfront/handler"
	"github.com/dmitrymomot/cardfront/modules/cards"
	"github.com/dmitrymomot/cardfront/pkg/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// DataStarScript is the client bundle matching the datastar-go SDK version.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

const (
	pageList    = "list"
	pageForm    = "form"
	pageConfirm = "confirm"
	pageDetail  = "detail"
	pageDelete  = "delete"
	pageError   = "error"
)

var pageFiles = map[string]string{
	pageList:    "templates/list.html",
	pageForm:    "templates/form.html",
	pageConfirm: "templates/confirm.html",
	pageDetail:  "templates/detail.html",
	pageDelete:  "templates/delete.html",
	pageError:   "templates/error.html",
}

// Translator resolves a key in the request locale. *i18n.Translator satisfies it.
type Translator interface {
	Tdc(ctx context.Context, key, fallback string, args ...string) string
}

// Renderer renders the embedded pages. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	toast *template.Template
	tr    Translator
}

// New parses the embedded templates. A nil tr renders the English fallbacks.
func New(tr Translator) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles)), tr: tr}
	for name, file := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = t.Lookup("layout")
	}

	toast, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/toast.html")
	if err != nil {
		return nil, fmt.Errorf("parse toast: %w", err)
	}
	r.toast = toast.Lookup("toast")

	return r, nil
}

// MustNew is like New but panics on a template error.
func MustNew(tr Translator) *Renderer {
	r, err := New(tr)
	if err != nil {
		panic(err)
	}
	return r
}

// Cards returns the page set used by the cards module.
func (r *Renderer) Cards() *cards.Views {
	return &cards.Views{
		ListPage:    r.ListPage,
		FormPage:    r.FormPage,
		ConfirmPage: r.ConfirmPage,
		DetailPage:  r.DetailPage,
		DeletePage:  r.DeletePage,
	}
}

func (r *Renderer) ListPage(p cards.ListPageParams) templ.Component {
	return r.page(pageList, p)
}

func (r *Renderer) FormPage(p cards.FormPageParams) templ.Component {
	return r.page(pageForm, p)
}

func (r *Renderer) ConfirmPage(p cards.ConfirmPageParams) templ.Component {
	return r.page(pageConfirm, p)
}

func (r *Renderer) DetailPage(p cards.DetailPageParams) templ.Component {
	return r.page(pageDetail, p)
}

func (r *Renderer) DeletePage(p cards.DeletePageParams) templ.Component {
	return r.page(pageDelete, p)
}

// ErrorPage is the full page used by handler.NewErrorHandler.
func (r *Renderer) ErrorPage(p handler.ErrorPageParams) templ.Component {
	return r.page(pageError, p)
}

// ErrorToast is the fragment patched into #toast-container for DataStar requests.
func (r *Renderer) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return r.render(r.toast, p)
}

func (r *Renderer) page(name string, data any) templ.Component {
	return r.render(r.pages[name], data)
}

func (r *Renderer) render(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.FromGoHTML(t, view{ctx: ctx, tr: r.tr, Data: data}).Render(ctx, w)
	})
}

// view is the template dot: page data plus helpers bound to the request.
type view struct {
	ctx  context.Context
	tr   Translator
	Data any
}

// T translates key in the request locale.
func (v view) T(key, fallback string, args ...string) string {
	if v.tr == nil {
		return fallback
	}
	return v.tr.Tdc(v.ctx, key, fallback, args...)
}

func (v view) Lang() string {
	return i18n.GetLocale(v.ctx)
}

func (v view) Script() string {
	return DataStarScript
}

var funcs = template.FuncMap{
	"signals": formSignals,
}

// formSignals is the initial DataStar signal store of the card form.
func formSignals(p cards.FormPageParams) (string, error) {
	b, err := json.Marshal(map[string]string{
		"cardNumber":    p.Input.CardNumber,
		"expDate":       p.Input.ExpDate,
		"numberPreview": p.NumberPreview,
		"expiryPreview": p.ExpiryPreview,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
