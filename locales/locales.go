// Package locales embeds the translation files of the UI.
package locales

import (
	"context"
	"embed"

	"github.com/dmitrymomot/cardfront/pkg/i18n"
)

//go:embed *.yaml
var FS embed.FS

// NewTranslator loads every embedded locale.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), FS, "."), opts...)
}
