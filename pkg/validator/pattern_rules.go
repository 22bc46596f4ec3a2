package validator

import (
	"fmt"
	"regexp"
)

// Matches validates value against a precompiled pattern.
// The empty string is checked like any other value; chain NotEmpty first when
// emptiness needs its own message.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
