package i18n

import "context"

// Parser turns file content into translation trees keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}
