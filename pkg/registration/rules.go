package registration

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/regform/pkg/validator"
)

var (
	asciiNameRegex   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	unicodeNameRegex = regexp.MustCompile(`^[\p{L}\s]+$`)
)

// descriptor holds the constraints of one field. Zero bounds mean "not set".
type descriptor struct {
	required  bool
	minLength int
	maxLength int
	min       int
	max       int
	pattern   *regexp.Regexp
	messages  map[Failure]string
}

// ruleTable returns a fresh rule table. The Validator that owns it never
// writes to it.
func ruleTable(namePattern *regexp.Regexp) map[Field]descriptor {
	return map[Field]descriptor{
		FirstName: {
			required:  true,
			minLength: 2,
			maxLength: 50,
			pattern:   namePattern,
			messages: map[Failure]string{
				FailureRequired:  "First name is required",
				FailureMinLength: "First name must be at least 2 characters",
				FailureMaxLength: "First name cannot exceed 50 characters",
				FailurePattern:   "First name can only contain letters and spaces",
			},
		},
		LastName: {
			required:  true,
			minLength: 2,
			maxLength: 50,
			pattern:   namePattern,
			messages: map[Failure]string{
				FailureRequired:  "Last name is required",
				FailureMinLength: "Last name must be at least 2 characters",
				FailureMaxLength: "Last name cannot exceed 50 characters",
				FailurePattern:   "Last name can only contain letters and spaces",
			},
		},
		Email: {
			required: true,
			messages: map[Failure]string{
				FailureRequired:   "Email address is required",
				FailurePattern:    "Please enter a valid email address",
				FailureDisposable: "Disposable email addresses are not allowed",
			},
		},
		Phone: {
			required:  true,
			minLength: 10,
			messages: map[Failure]string{
				FailureRequired:    "Phone number is required",
				FailurePattern:     "Please enter a valid phone number",
				FailureCountryCode: "Phone number must match the selected country code (%{prefix})",
			},
		},
		Age: {
			min: 18,
			max: 100,
			messages: map[Failure]string{
				FailureMin:     "You must be at least 18 years old",
				FailureMax:     "Age cannot exceed 100 years",
				FailurePattern: "Please enter a valid age",
			},
		},
		Gender: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "Please select your gender",
			},
		},
		Address: {
			minLength: 5,
			maxLength: 200,
			messages: map[Failure]string{
				FailureMinLength: "Address must be at least 5 characters",
				FailureMaxLength: "Address cannot exceed 200 characters",
			},
		},
		Country: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "Please select a country",
			},
		},
		State: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "Please select a state",
			},
		},
		City: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "Please select a city",
			},
		},
		Password: {
			required:  true,
			minLength: 8,
			messages: map[Failure]string{
				FailureRequired:  "Password is required",
				FailureMinLength: "Password must be at least 8 characters",
			},
		},
		ConfirmPassword: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "Please confirm your password",
				FailureMatch:    "Passwords do not match",
			},
		},
		Terms: {
			required: true,
			messages: map[Failure]string{
				FailureRequired: "You must agree to the Terms & Conditions",
			},
		},
	}
}

// rule rebinds a generic validator rule to this field's message for failure.
// params are key/value pairs substituted into "%{key}" placeholders.
func (d descriptor) rule(field Field, failure Failure, r validator.Rule, params ...string) validator.Rule {
	values := make(map[string]any, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		values[params[i]] = params[i+1]
	}

	r.Error = validator.ValidationError{
		Field:             string(field),
		Code:              string(failure),
		Message:           expand(d.messages[failure], params),
		TranslationKey:    translationKey(field, failure),
		TranslationValues: values,
	}
	return r
}

func translationKey(field Field, failure Failure) string {
	return "registration." + string(field) + "." + string(failure)
}

// expand replaces "%{key}" placeholders using key/value pairs.
func expand(tmpl string, params []string) string {
	if len(params) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	pairs := make([]string, 0, len(params))
	for i := 0; i+1 < len(params); i += 2 {
		pairs = append(pairs, "%{"+params[i]+"}", params[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
