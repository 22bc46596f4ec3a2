package i18n

import "errors"

var (
	ErrNilAdapter               = errors.New("i18n: adapter is nil")
	ErrFailedToLoadTranslations = errors.New("i18n: failed to load translations")
	ErrInvalidTranslations      = errors.New("i18n: invalid translations")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse yaml content")

	ErrLoadingCancelled      = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDirectory = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile      = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile     = errors.New("i18n: failed to parse translation file")
	ErrNoTranslationFiles    = errors.New("i18n: no translation files found")
)
