package i18n

import (
	"context"
	"log/slog"
)

type localeContextKey struct{}

// SetLocale stores the request language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the stored language, or DefaultLanguage when unset.
func GetLocale(ctx context.Context) string {
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return DefaultLanguage
}

// LoggerExtractor adds the request language as "lang" to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
			return slog.String("lang", locale), true
		}
		return slog.Attr{}, false
	}
}
