package registration

import (
	"github.com/dmitrymomot/regform/pkg/location"
	"github.com/dmitrymomot/regform/pkg/sanitizer"
	"github.com/dmitrymomot/regform/pkg/validator"
)

var defaultRules = ruleTable(asciiNameRegex)

// Validator checks registration form values against the rule table.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	catalog    *location.Catalog
	rules      map[Field]descriptor
	disposable map[string]struct{}
}

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog sets the catalog used to look up the phone prefix of the
// selected country. Defaults to location.Default().
func WithCatalog(c *location.Catalog) Option {
	return func(v *Validator) {
		if c != nil {
			v.catalog = c
		}
	}
}

// WithUnicodeNames lets first and last names contain letters of any script
// instead of ASCII letters only.
func WithUnicodeNames() Option {
	return func(v *Validator) {
		v.rules = ruleTable(unicodeNameRegex)
	}
}

// WithDisposableDomains adds domains to the built-in disposable list.
func WithDisposableDomains(domains ...string) Option {
	return func(v *Validator) {
		v.disposable = newDomainSet(disposableDomains, domains)
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		catalog:    location.Default(),
		rules:      defaultRules,
		disposable: defaultDisposableSet,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Catalog returns the location catalog the validator consults.
func (v *Validator) Catalog() *location.Catalog {
	return v.catalog
}

// ValidateField checks a single value. record supplies the other fields for
// cross-field rules (phone against country, confirmPassword against
// password) and may be nil. Unknown fields are always valid.
func (v *Validator) ValidateField(field Field, value string, record Record) Result {
	d, ok := v.rules[field]
	if !ok {
		return valid()
	}

	if value == "" {
		if d.required {
			return failed(field, d.rule(field, FailureRequired, validator.RequiredString(string(field), value)).Error)
		}
		return valid()
	}

	if ve, failedRule := validator.First(v.fieldRules(field, d, value, record)...); failedRule {
		return failed(field, ve)
	}
	return valid()
}

func (v *Validator) fieldRules(field Field, d descriptor, value string, record Record) []validator.Rule {
	name := string(field)

	switch field {
	case FirstName, LastName:
		return []validator.Rule{
			d.rule(field, FailureMinLength, validator.MinLen(name, value, d.minLength)),
			d.rule(field, FailureMaxLength, validator.MaxLen(name, value, d.maxLength)),
			d.rule(field, FailurePattern, validator.Matches(name, value, d.pattern, "letters and spaces")),
		}

	case Email:
		domain := sanitizer.Apply(value, sanitizer.ExtractEmailDomain, sanitizer.Trim)
		return []validator.Rule{
			d.rule(field, FailurePattern, validator.EmailShape(name, value)),
			d.rule(field, FailureDisposable, validator.NotInSet(name, domain, v.disposable)),
		}

	case Phone:
		cleaned := sanitizer.KeepPhoneChars(value)
		rules := []validator.Rule{
			d.rule(field, FailurePattern, validator.MinDigits(name, cleaned, d.minLength)),
		}
		if prefix, ok := v.catalog.PhonePrefix(record.Get(Country)); ok {
			rules = append(rules, d.rule(field, FailureCountryCode,
				validator.HasPrefix(name, sanitizer.KeepDigits(cleaned), sanitizer.KeepDigits(prefix)),
				"prefix", prefix,
			))
		}
		return rules

	case Age:
		age, _ := validator.ParseLeadingInt(value)
		return []validator.Rule{
			d.rule(field, FailurePattern, validator.LeadingInteger(name, value)),
			d.rule(field, FailureMin, validator.MinNum(name, age, d.min)),
			d.rule(field, FailureMax, validator.MaxNum(name, age, d.max)),
		}

	case Address:
		return []validator.Rule{
			d.rule(field, FailureMinLength, validator.MinLen(name, value, d.minLength)),
			d.rule(field, FailureMaxLength, validator.MaxLen(name, value, d.maxLength)),
		}

	case Password:
		return []validator.Rule{
			d.rule(field, FailureMinLength, validator.MinLen(name, value, d.minLength)),
		}

	case ConfirmPassword:
		return []validator.Rule{
			d.rule(field, FailureMatch, validator.Equal(name, value, record.Get(Password))),
		}
	}

	// gender, country, state, city and terms only need a value.
	return nil
}

// ValidateForm validates every known field present in record independently.
// Absent fields are skipped; use Complete to treat them as empty.
func (v *Validator) ValidateForm(record Record) FormResult {
	fr := FormResult{
		Valid:   true,
		Errors:  make(map[Field]string),
		Results: make(map[Field]Result),
	}

	for _, field := range Fields {
		value, present := record[field]
		if !present {
			continue
		}
		res := v.ValidateField(field, value, record)
		if res.Valid {
			continue
		}
		fr.Valid = false
		fr.Errors[field] = res.Error
		fr.Results[field] = res
	}
	return fr
}

// CanSubmit reports whether every required field is filled and the whole
// form validates.
func (v *Validator) CanSubmit(record Record) bool {
	return RequiredFilled(record) && v.ValidateForm(record).Valid
}

// Strength classifies a password as weak, medium or strong. It is advisory
// and never blocks submission.
func (v *Validator) Strength(password string) validator.PasswordStrength {
	return validator.StrengthOf(password)
}

// Score returns the raw strength score in the range 0..6.
func (v *Validator) Score(password string) int {
	return validator.PasswordScore(password)
}
