package binder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// datastarRequestHeader is sent by the DataStar client on every action.
const datastarRequestHeader = "Datastar-Request"

// Signals binds the DataStar signal store into v using its json tags. Only
// requests issued by the DataStar client are considered; others return
// ErrBinderNotApplicable.
//
//	type formatRequest struct {
//		CardNumber string `json:"cardNumber"`
//		ExpDate    string `json:"expDate"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(datastarRequestHeader) != "true" && !r.URL.Query().Has("datastar") {
			return ErrBinderNotApplicable
		}
		if v == nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseSignals, ErrInvalidTarget)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrFailedToParseSignals, err)
		}
		return nil
	}
}
