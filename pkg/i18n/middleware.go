package i18n

import "net/http"

// Middleware resolves the request language with extr, stores it for GetLocale
// and announces it in Content-Language. Pages differ per language, so the
// response also varies on Accept-Language and Cookie.
//
// A nil extr uses DefaultLangExtractor; an empty result becomes DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			h := w.Header()
			h.Set("Content-Language", lang)
			h.Add("Vary", "Accept-Language")
			h.Add("Vary", "Cookie")
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
