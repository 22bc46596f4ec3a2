package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Translator resolves dot-separated keys against per-language translation trees.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}
	for lang, tree := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil tree for %q", ErrInvalidTranslations, lang)
		}
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage returns the language used when the requested one has no entry.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key. The default
// language is not consulted.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tree, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. Missing keys fall back to the default
// language, then to the key itself unless WithFallbackToKey(false) is set.
//
//	// "card.validation.name_max": "name may not exceed %{max} characters."
//	t.T("en", "card.validation.name_max", "max", "20")
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit fallback used instead of the key.
func (t *Translator) Td(lang, key, fallback string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(fallback, args)
}

// Tc translates key in the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Tdc translates key in the language stored in ctx, using fallback when missing.
func (t *Translator) Tdc(ctx context.Context, key, fallback string, args ...string) string {
	return t.Td(GetLocale(ctx), key, fallback, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookupString(lang, key); ok {
		return s, true
	}
	if lang != t.defaultLang {
		if s, ok := t.lookupString(t.defaultLang, key); ok {
			return s, true
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

func (t *Translator) lookupString(lang, key string) (string, bool) {
	tree, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(tree, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string",
				slog.String("lang", lang),
				slog.String("key", key),
				slog.String("type", fmt.Sprintf("%T", v)),
			)
		}
		return "", false
	}
}

// lookup walks m following the dot-separated parts of key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the matching value from args. Unknown
// placeholders are kept; a trailing odd argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
