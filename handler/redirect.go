package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect answers with 303 See Other, or with a client-side navigation for
// DataStar requests, which cannot follow HTTP redirects.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}
