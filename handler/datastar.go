package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is set to "true" by the DataStar client on actions.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on DataStar GET actions.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchAppend  = datastar.ElementPatchModeAppend
)

// IsDataStar reports whether r was sent by the DataStar client and expects an
// SSE answer rather than a page.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// signalsResponse patches the client's signal store.
type signalsResponse struct {
	signals any
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}
	return datastar.NewSSE(w, r).PatchSignals(data)
}

// Signals returns a Response that merges v (marshalled with its json tags)
// into the DataStar signal store. It always answers with SSE.
//
//	return handler.Signals(map[string]string{"cardNumber": card.FormatNumberInput(req.CardNumber)})
func Signals(v any) Response {
	return signalsResponse{signals: v}
}
