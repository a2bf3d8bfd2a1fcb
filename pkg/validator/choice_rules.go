package validator

// NotInSet validates that value is not a member of forbidden.
func NotInSet(field, value string, forbidden map[string]struct{}) Rule {
	return Rule{
		Check: func() bool {
			_, found := forbidden[value]
			return !found
		},
		Error: ValidationError{
			Field:          field,
			Code:           "not_in_list",
			Message:        "value is not allowed",
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
