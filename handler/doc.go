// Package handler turns typed handler functions into http.HandlerFunc values
// for the cardfront pages.
//
// A HandlerFunc receives a Context and a request struct filled by binders from
// pkg/binder, and returns a Response:
//
//	type editCardRequest struct {
//		ID    int        `path:"id"`
//		Input card.Input `form:"-"`
//	}
//
//	r.Get("/card/{id}", handler.Wrap(s.show,
//		handler.WithBinders(binder.Path(chi.URLParam)),
//		handler.WithErrorHandler(errorHandler),
//	))
//
// Responses adapt to the caller. Templ renders a page for normal requests and
// an element patch over SSE for DataStar actions; Redirect sends a 303 or a
// client-side navigation; Signals patches the DataStar signal store.
//
// Every failure (binding, a Response from Error, a rendering error) goes to one
// ErrorHandler. NewErrorHandler classifies it with ClassifyError, logs it and
// renders an error page or a DataStar toast.
package handler
