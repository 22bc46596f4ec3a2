// Package validator provides small, composable validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a boolean Check with the ValidationError to report when the
// check fails. Rules are evaluated with one of two helpers:
//
//   - Apply runs every rule and aggregates every failure.
//   - ApplyFirst takes one chain of rules per field and reports only the first
//     failure of each chain, which matches forms that show a single message per
//     field.
//
// Both return a ValidationErrors value (or nil) that satisfies the error
// interface, so callers can use errors.As or ExtractValidationErrors to get at
// the field-level details.
//
// # Usage
//
//	err := validator.ApplyFirst(
//		[]validator.Rule{
//			validator.NotEmpty("cvv", cvv).WithMessage("card.validation.cvv_required", "CVV required."),
//			validator.Matches("cvv", cvv, threeDigits, "3 digits").WithMessage("card.validation.cvv_digits", "CVV must have 3 digits."),
//		},
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		msg, _ := verrs.First("cvv")
//		_ = msg.TranslationKey
//	}
//
// WithMessage swaps the default message and translation key for a
// domain-specific one while keeping the rule's check.
//
// The package holds no global state and every helper is safe for concurrent use.
package validator
