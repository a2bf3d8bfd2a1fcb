package validator

import (
	"fmt"
	"regexp"
)

// emailShapeRegex accepts "local@domain.tld": no whitespace or '@' in either
// part and at least one dot after the '@'.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailShape performs a lightweight structural email check. It does not
// attempt RFC 5322 parsing.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "email",
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinDigits validates that value contains at least min ASCII digits.
func MinDigits(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			count := 0
			for i := 0; i < len(value); i++ {
				if value[i] >= '0' && value[i] <= '9' {
					count++
				}
			}
			return count >= min
		},
		Error: ValidationError{
			Field:          field,
			Code:           "min_digits",
			Message:        fmt.Sprintf("must contain at least %d digits", min),
			TranslationKey: "validation.min_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
