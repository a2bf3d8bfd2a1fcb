package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches validates value against a precompiled pattern. Empty values fail.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "pattern",
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// HasPrefix validates that value starts with prefix.
func HasPrefix(field, value, prefix string) Rule {
	return Rule{
		Check: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "prefix",
			Message:        fmt.Sprintf("must start with %s", prefix),
			TranslationKey: "validation.starts_with",
			TranslationValues: map[string]any{
				"field":  field,
				"prefix": prefix,
			},
		},
	}
}
