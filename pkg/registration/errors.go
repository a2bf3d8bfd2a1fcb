package registration

import "errors"

var (
	ErrInvalidForm         = errors.New("registration form is invalid")
	ErrSubmissionFailed    = errors.New("registration submission failed")
	ErrSubmissionCancelled = errors.New("registration submission cancelled")
	ErrInvalidRecordValue  = errors.New("record value must be a string, number, boolean or null")
)

// FormError is returned by Submit when the record does not pass validation.
type FormError struct {
	Result FormResult
}

func (e *FormError) Error() string {
	if err := e.Result.Err(); err != nil {
		return err.Error()
	}
	return ErrInvalidForm.Error()
}

// Unwrap exposes both ErrInvalidForm and the underlying
// validator.ValidationErrors to errors.Is and errors.As.
func (e *FormError) Unwrap() []error {
	return []error{ErrInvalidForm, e.Result.Err()}
}
