package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 1 << 20

// Form binds `form` tagged fields from an urlencoded or multipart body.
// Requests without a form body (GET, JSON posts from DataStar) are reported
// as ErrBinderNotApplicable so other binders can run.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return ErrBinderNotApplicable
		}
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		default:
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "form", fromMap(r.PostForm), ErrFailedToParseForm)
	}
}
