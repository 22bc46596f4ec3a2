package card

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/cardfront/pkg/validator"
)

const (
	// MaxNameLength is the maximum cardholder name length, in characters.
	MaxNameLength = 20

	// ExpiredCheckYear is the only two-digit year the "card expired" rule looks at.
	// The rule compares against this literal, not against the current year.
	ExpiredCheckYear = 22

	// MinExpiryYear is the lower bound of the accepted two-digit year window.
	MinExpiryYear = 22

	// ExpiryYearWindow is how many years past the current one an expiry may be.
	ExpiryYearWindow = 5
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`)
	numberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
)

// Translation keys of validation messages.
const (
	KeyNameRequired   = "card.validation.name_required"
	KeyNameLetters    = "card.validation.name_letters"
	KeyNameTooLong    = "card.validation.name_too_long"
	KeyNumberRequired = "card.validation.number_required"
	KeyNumberDigits   = "card.validation.number_digits"
	KeyExpRequired    = "card.validation.exp_required"
	KeyExpMonth       = "card.validation.exp_month"
	KeyExpExpired     = "card.validation.exp_expired"
	KeyExpYear        = "card.validation.exp_year"
	KeyExpFormat      = "card.validation.exp_format"
	KeyCVVRequired    = "card.validation.cvv_required"
	KeyCVVDigits      = "card.validation.cvv_digits"
)

// Fields lists validated fields in form order.
func Fields() []string {
	return []string{FieldCardholderName, FieldCardNumber, FieldExpDate, FieldCVV}
}

// Validate checks the form against the card rules as of now.
// Each field reports at most one message: the first failing check.
func Validate(in Input, now time.Time) Result {
	err := validator.ApplyFirst(
		nameRules(in.CardholderName),
		numberRules(in.CardNumber),
		expiryRules(in.ExpDate, now),
		cvvRules(in.CVV),
	)
	return Result{errs: validator.ExtractValidationErrors(err)}
}

func nameRules(raw string) []validator.Rule {
	name := NormalizeName(raw)
	return []validator.Rule{
		validator.NotEmpty(FieldCardholderName, name).
			WithMessage(KeyNameRequired, "cardholder name required."),
		validator.Matches(FieldCardholderName, name, namePattern, "letters and spaces").
			WithMessage(KeyNameLetters, "name may contain only letters and spaces."),
		validator.MaxLenRunes(FieldCardholderName, name, MaxNameLength).
			WithMessage(KeyNameTooLong, fmt.Sprintf("name may not exceed %d characters.", MaxNameLength)),
	}
}

func numberRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.NotEmpty(FieldCardNumber, raw).
			WithMessage(KeyNumberRequired, "card number required."),
		validator.Matches(FieldCardNumber, StripSpaces(raw), numberPattern, "16 digits").
			WithMessage(KeyNumberDigits, "card number must contain only digits and be 16 digits long."),
	}
}

func expiryRules(raw string, now time.Time) []validator.Rule {
	month, year := SplitExpiry(raw)
	currentMonth := float64(now.Month())
	maxYear := now.Year()%100 + ExpiryYearWindow

	return []validator.Rule{
		validator.NotEmpty(FieldExpDate, raw).
			WithMessage(KeyExpRequired, "expiration date required."),
		validator.Between(FieldExpDate, month, 1, 12).
			WithMessage(KeyExpMonth, "must be a valid month (01–12)."),
		{
			Check: func() bool {
				return !(month <= currentMonth && year == ExpiredCheckYear)
			},
			Error: validator.ValidationError{
				Field:          FieldExpDate,
				Message:        "card expired.",
				TranslationKey: KeyExpExpired,
			},
		},
		validator.Between(FieldExpDate, year, MinExpiryYear, float64(maxYear)).
			WithMessage(KeyExpYear, fmt.Sprintf("must be a valid year (%d–%d).", MinExpiryYear, maxYear),
				"min", MinExpiryYear, "max", maxYear),
		{
			Check: func() bool {
				return !math.IsNaN(month) && !math.IsNaN(year)
			},
			Error: validator.ValidationError{
				Field:          FieldExpDate,
				Message:        "invalid expiration date; use mm/yy format.",
				TranslationKey: KeyExpFormat,
			},
		},
	}
}

func cvvRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.NotEmpty(FieldCVV, raw).
			WithMessage(KeyCVVRequired, "CVV required."),
		validator.Matches(FieldCVV, raw, cvvPattern, "3 digits").
			WithMessage(KeyCVVDigits, "CVV must have 3 digits."),
	}
}

// NormalizeName returns the cardholder name in Unicode NFC form, so an accented
// letter typed as base letter plus combining mark counts as one character.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// SplitExpiry splits an "MM/YY" value on "/" and converts both parts the way a
// browser Number() call does: surrounding whitespace is ignored, an empty part is 0
// and a missing or malformed part is NaN. Parts after the second are ignored.
func SplitExpiry(raw string) (month, year float64) {
	parts := strings.Split(raw, "/")
	month = parseNumber(parts[0])
	year = math.NaN()
	if len(parts) > 1 {
		year = parseNumber(parts[1])
	}
	return month, year
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
