// Package i18n translates user-facing strings.
//
// Translations are nested trees keyed by language and addressed with
// dot-separated keys ("card.validation.cvv_required"). They are loaded once
// through a TranslationAdapter, usually an FSAdapter over an embedded
// directory of YAML files, and read concurrently afterwards. Placeholders use
// the %{name} form and are filled from name, value argument pairs.
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//		i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("es", "card.validation.name_max", "max", "20")
//
// Middleware resolves the request language from the lang cookie, the lang
// query parameter, the Language header and Accept-Language, in that order,
// and stores it for Tc, Tdc and GetLocale:
//
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(
//		i18n.WithSupportedLanguages(tr.SupportedLanguages()...),
//	)))
//
// Language tags are parsed with golang.org/x/text/language; region
// variants fall back to their base language ("es-MX" to "es").
package i18n
