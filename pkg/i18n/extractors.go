package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor returns the language code a request asks for, or "".
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the sources DefaultLangExtractor inspects.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
	Fallback       string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to langs, matching region
// variants to their base language.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// WithFallbackLanguage sets the value returned when no source matches.
func WithFallbackLanguage(lang string) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.Fallback = strings.ToLower(strings.TrimSpace(lang))
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang"
// query parameter, the Language header and Accept-Language. The first
// source yielding a supported language wins.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	m := newMatcher(cfg.SupportedLangs)

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := m.normalize(c.Value); lang != "" {
					return lang
				}
			}
		}
		if cfg.QueryParamName != "" {
			if lang := m.normalize(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}
		if lang := m.normalize(r.Header.Get("Language")); lang != "" {
			return lang
		}
		if header := r.Header.Get("Accept-Language"); header != "" {
			if lang := m.match(acceptedTags(header)...); lang != "" {
				return lang
			}
		}
		return cfg.Fallback
	}
}
