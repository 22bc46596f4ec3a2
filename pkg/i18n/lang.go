package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better is known about the client.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header length we are willing to parse.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// ParseAcceptLanguage picks the supported language that best satisfies an
// Accept-Language header. Exact tags win over base-language matches across
// the whole list, so "es-MX, en;q=0.8" against [en, es] yields "en".
// Returns defaultLang when nothing matches or the header is unparsable.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	tags := acceptedTags(header)
	if len(tags) == 0 {
		return defaultLang
	}
	if lang := newMatcher(supported).match(tags...); lang != "" {
		return lang
	}
	return defaultLang
}

// acceptedTags returns the header's tags ordered by descending quality.
func acceptedTags(header string) []language.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

// matcher maps BCP 47 tags onto a fixed list of lowercase language codes.
// An empty list accepts any well-formed tag.
type matcher struct {
	supported []string
}

func newMatcher(supported []string) matcher {
	normalized := make([]string, 0, len(supported))
	for _, lang := range supported {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			normalized = append(normalized, lang)
		}
	}
	return matcher{supported: normalized}
}

// normalize validates a raw language code from a cookie, query or header.
func (m matcher) normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	return m.match(tag)
}

// match tries an exact match for every tag first, then a base-language
// match, so quality order is respected within each phase.
func (m matcher) match(tags ...language.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	if len(m.supported) == 0 {
		return strings.ToLower(tags[0].String())
	}
	for _, tag := range tags {
		if code := strings.ToLower(tag.String()); slices.Contains(m.supported, code) {
			return code
		}
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); slices.Contains(m.supported, code) {
			return code
		}
	}
	return ""
}
