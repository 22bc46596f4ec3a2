package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is reported when a HandlerFunc returns nil.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code. Key is a translation key for the
// message shown to the user.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "errors.bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.service_unavailable"}
)
