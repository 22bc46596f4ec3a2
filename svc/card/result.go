package card

import (
	"github.com/dmitrymomot/cardfront/pkg/validator"
)

// Result holds the outcome of Validate: at most one error per field.
// The zero value is a valid result with no errors.
type Result struct {
	errs validator.ValidationErrors
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return r.errs.IsEmpty()
}

// Message returns the error message for field, or "" when the field is valid.
func (r Result) Message(field string) string {
	if e, ok := r.errs.First(field); ok {
		return e.Message
	}
	return ""
}

// Error returns the full error for field, including its translation key.
func (r Result) Error(field string) (validator.ValidationError, bool) {
	return r.errs.First(field)
}

// Messages returns a message for every validated field; valid fields map to "".
func (r Result) Messages() map[string]string {
	out := make(map[string]string, len(Fields()))
	for _, f := range Fields() {
		out[f] = r.Message(f)
	}
	return out
}

// Translator resolves a translation key, falling back to the given default message.
type Translator func(key, fallback string, args ...string) string

// Translate is like Messages but resolves each message through t.
func (r Result) Translate(t Translator) map[string]string {
	out := make(map[string]string, len(Fields()))
	for _, f := range Fields() {
		e, ok := r.errs.First(f)
		if !ok {
			out[f] = ""
			continue
		}
		if t == nil {
			out[f] = e.Message
			continue
		}
		out[f] = t(e.TranslationKey, e.Message, e.TranslationArgs()...)
	}
	return out
}

// Err returns the failures as a validator.ValidationErrors error, or nil when valid.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.errs
}
