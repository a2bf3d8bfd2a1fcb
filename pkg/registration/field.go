package registration

// Field identifies one input of the registration form. Values match the keys
// the UI layer sends.
type Field string

const (
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
	Email           Field = "email"
	Phone           Field = "phone"
	Age             Field = "age"
	Gender          Field = "gender"
	Address         Field = "address"
	Country         Field = "country"
	State           Field = "state"
	City            Field = "city"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	Terms           Field = "terms"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FirstName, LastName, Email, Phone, Age, Gender, Address,
	Country, State, City, Password, ConfirmPassword, Terms,
}

// Known reports whether f is one of the form's fields.
func (f Field) Known() bool {
	return fieldOrder(f) >= 0
}

func (f Field) String() string {
	return string(f)
}

func fieldOrder(f Field) int {
	for i, known := range Fields {
		if known == f {
			return i
		}
	}
	return -1
}

// Failure names the constraint a value violated. Each field maps the failures
// it can produce to a message.
type Failure string

const (
	FailureRequired    Failure = "required"
	FailureMinLength   Failure = "minLength"
	FailureMaxLength   Failure = "maxLength"
	FailurePattern     Failure = "pattern"
	FailureDisposable  Failure = "disposable"
	FailureCountryCode Failure = "countryCode"
	FailureMin         Failure = "min"
	FailureMax         Failure = "max"
	FailureMatch       Failure = "match"
)

// Kind is the error taxonomy a failure belongs to.
type Kind string

const (
	RequiredMissing       Kind = "RequiredMissing"
	LengthOutOfRange      Kind = "LengthOutOfRange"
	PatternMismatch       Kind = "PatternMismatch"
	DisposableDomain      Kind = "DisposableDomain"
	CountryCodeMismatch   Kind = "CountryCodeMismatch"
	NumericRangeViolation Kind = "NumericRangeViolation"
	PasswordMismatch      Kind = "PasswordMismatch"
)

// Kind returns the taxonomy entry of the failure.
func (f Failure) Kind() Kind {
	switch f {
	case FailureRequired:
		return RequiredMissing
	case FailureMinLength, FailureMaxLength:
		return LengthOutOfRange
	case FailureDisposable:
		return DisposableDomain
	case FailureCountryCode:
		return CountryCodeMismatch
	case FailureMin, FailureMax:
		return NumericRangeViolation
	case FailureMatch:
		return PasswordMismatch
	default:
		return PatternMismatch
	}
}
