// Package registration implements the validation core of the registration
// form: a fixed rule table for every form field, a dispatcher that validates
// one field or a whole record, an advisory password-strength scorer, and a
// submitter that turns a valid record into a receipt.
//
// The UI layer owns rendering. It passes raw field values in and renders the
// returned verdicts; nothing in this package touches presentation state.
//
// # Fields and rules
//
// Field is a closed enumeration of the form's inputs. Each field has one rule
// descriptor built when the Validator is constructed and never mutated
// afterwards. Validation of a single field follows four steps:
//
//  1. Unknown fields are valid.
//  2. A required field with an empty value fails with its "required" message.
//  3. An optional field with an empty value is valid; nothing else runs.
//  4. Otherwise the field-specific checks run in order and the first failure
//     is reported.
//
// Two fields read other values from the record: phone compares its digits
// with the dialling prefix of the selected country, and confirmPassword must
// equal password. The record is always passed explicitly.
//
// # Usage
//
//	v := registration.New()
//
//	res := v.ValidateField(registration.Phone, "+91 98765 43210", registration.Record{
//	    registration.Country: "India",
//	})
//	// res.Valid == true
//
//	form := v.ValidateForm(record)
//	for field, msg := range form.Errors {
//	    fmt.Println(field, msg)
//	}
//
//	v.Strength("Abcdefghijk1!") // strong
//
// # Error Handling
//
// Field failures are verdict values, never errors. Each failure carries a Kind
// from a fixed taxonomy (RequiredMissing, LengthOutOfRange, ...) and the exact
// message from the rule table. FormResult.Err converts a failed form into
// validator.ValidationErrors when an error value is needed. Submit returns
// *FormError for invalid records and wraps sink failures in
// ErrSubmissionFailed.
//
// # Concurrency
//
// Validator is immutable after New and safe for concurrent use. Submitter is
// safe for concurrent use as long as its Sink is.
package registration
