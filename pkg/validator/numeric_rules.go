package validator

import "fmt"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Between validates that min <= value <= max.
// The check is written as a rejection of out-of-range values, so a NaN float
// passes; pair it with an explicit NaN rule where that matters.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return !(value < min || value > max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
