package card

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// maxNumberInput is 16 digits plus 3 separators.
	maxNumberInput = 19
	maxExpiryInput = 5

	maskFill = "**********"
	// minMaskable is the shortest input with distinct head and tail segments.
	minMaskable = 6
)

var (
	nonDigit     = regexp.MustCompile(`[^0-9]`)
	nonExpiry    = regexp.MustCompile(`[^0-9/]`)
	everyFour    = regexp.MustCompile(`(.{4})`)
	expirySplice = regexp.MustCompile(`(\d{2})(\d{1,2})`)
)

// StripSpaces removes every whitespace character.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FormatNumberInput normalises a card number while it is being typed:
// digits only, grouped by four, at most 19 characters. It is idempotent.
func FormatNumberInput(raw string) string {
	s := nonDigit.ReplaceAllString(StripSpaces(raw), "")
	s = strings.TrimSpace(everyFour.ReplaceAllString(s, "${1} "))
	return truncate(s, maxNumberInput)
}

// FormatExpiryInput normalises an expiration date while it is being typed:
// digits and "/" only, a slash after the first two digits, at most 5 characters.
func FormatExpiryInput(raw string) string {
	s := nonExpiry.ReplaceAllString(raw, "")
	if loc := expirySplice.FindStringSubmatchIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[2]:loc[3]] + "/" + s[loc[4]:loc[5]] + s[loc[1]:]
	}
	return truncate(s, maxExpiryInput)
}

// MaskNumber renders a card number for lists and detail pages: the first two and
// last four characters with ten asterisks in between, e.g. "41**********1111".
// Inputs shorter than six characters are fully masked, one asterisk per character.
func MaskNumber(raw string) string {
	r := []rune(StripSpaces(raw))
	if len(r) < minMaskable {
		return strings.Repeat("*", len(r))
	}
	return string(r[:2]) + maskFill + string(r[len(r)-4:])
}

// SpaceNumber renders a full card number grouped by four for edit forms.
// Input that already contains a space is only trimmed.
func SpaceNumber(raw string) string {
	if strings.Contains(raw, " ") {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(everyFour.ReplaceAllString(raw, "${1} "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
