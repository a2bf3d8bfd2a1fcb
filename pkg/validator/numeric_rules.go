package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Integer validates that a string holds a base-10 integer. Surrounding
// whitespace is ignored.
func Integer(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.Atoi(strings.TrimSpace(value))
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Code:           "integer",
			Message:        "must be a whole number",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// LeadingInteger validates that value starts with a base-10 integer, after
// optional leading whitespace and sign. Trailing text is ignored, so "18.5"
// and "25abc" pass. Use ParseLeadingInt to read the number.
func LeadingInteger(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseLeadingInt(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Code:           "integer",
			Message:        "must be a whole number",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParseLeadingInt reads the integer at the start of s. It skips leading
// whitespace, accepts one '+' or '-' and needs at least one digit. Values
// beyond the int range saturate at math.MaxInt or math.MinInt.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		if n == math.MaxInt {
			return math.MinInt, true
		}
		return -n, true
	}
	return n, true
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Code:           "min",
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Code:           "max",
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
