package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// TranslationArgs flattens TranslationValues into the key, value, key, value
// form expected by i18n translators. Keys are emitted in sorted order.
func (e ValidationError) TranslationArgs() []string {
	if len(e.TranslationValues) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}
	return args
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// First returns the first error recorded for field.
func (ve ValidationErrors) First(field string) (ValidationError, bool) {
	for _, err := range ve {
		if err.Field == field {
			return err, true
		}
	}
	return ValidationError{}, false
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting a custom message and translation key.
// Existing translation values are kept; extra key/value pairs are merged in.
func (r Rule) WithMessage(key, message string, values ...any) Rule {
	merged := make(map[string]any, len(r.Error.TranslationValues)+len(values)/2)
	for k, v := range r.Error.TranslationValues {
		merged[k] = v
	}
	for i := 0; i+1 < len(values); i += 2 {
		if name, ok := values[i].(string); ok {
			merged[name] = values[i+1]
		}
	}

	r.Error.TranslationKey = key
	r.Error.Message = message
	r.Error.TranslationValues = merged
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// FirstFailure evaluates rules in order and stops at the first one that fails.
func FirstFailure(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}

// ApplyFirst evaluates each chain independently and keeps at most one error per chain:
// the error of its first failing rule. Later rules in a chain are not evaluated once
// one has failed.
//
// Example:
//
//	err := validator.ApplyFirst(
//		[]validator.Rule{validator.NotEmpty("pin", pin), validator.Matches("pin", pin, pinPattern, "4 digits")},
//		[]validator.Rule{validator.NotEmpty("name", name), validator.MaxLenRunes("name", name, 20)},
//	)
func ApplyFirst(chains ...[]Rule) error {
	var errors ValidationErrors

	for _, chain := range chains {
		if err, failed := FirstFailure(chain...); failed {
			errors = append(errors, err)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
