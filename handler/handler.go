package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/cardfront/pkg/binder"
)

// HandlerFunc handles a request already bound into R and returns what to render.
//
//	show := handler.HandlerFunc[showCardRequest](func(ctx handler.Context, req showCardRequest) handler.Response {
//		c, err := api.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Templ(views.Detail(c))
//	})
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to w. A returned error is passed to the ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r.
type Bind func(r *http.Request, v any) error

// ErrorHandler renders binding, handler and rendering failures.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders appends binders, applied in order. Binders returning
// binder.ErrBinderNotApplicable are skipped.
func WithBinders(binders ...Bind) WrapOption {
	return func(c *wrapConfig) {
		c.binders = append(c.binders, binders...)
	}
}

func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler writes a plain-text error with the HTTPError status, or 500.
func defaultErrorHandler(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap adapts h to an http.HandlerFunc: it binds the request, calls h and
// renders the response, sending any failure to the configured ErrorHandler.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, errors.Join(ErrBadRequest, err))
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// errorResponse hands err to the ErrorHandler through Wrap.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that fails with err, so handlers can report errors
// through the same ErrorHandler as binding failures.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
