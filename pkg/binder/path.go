package binder

import (
	"net/http"
)

// Path binds `path` tagged fields using extractor, normally chi.URLParam:
//
//	type showCardRequest struct {
//		ID int `path:"id"`
//	}
//
//	r.Get("/card/{id}", handler.Wrap(h, handler.WithBinders(binder.Path(chi.URLParam))))
//
// Empty parameters leave the field at its zero value.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "path", func(name string) ([]string, bool) {
			if val := extractor(r, name); val != "" {
				return []string{val}, true
			}
			return nil, false
		}, ErrFailedToParsePath)
	}
}
