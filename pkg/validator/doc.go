// Package validator provides small, composable validation rules used by the
// registration form: presence and length checks, numeric bounds, pattern and
// format checks, set membership and an advisory password-strength score.
//
// Each rule is a Rule value that pairs a boolean Check function with a
// translation-friendly ValidationError. Rules are evaluated either with Apply,
// which collects every failure into ValidationErrors, or with First, which
// stops at the first failing rule the way a single form field reports one
// message at a time.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NotEmpty("email", email),
//	    validator.EmailShape("email", email),
//	    validator.MinLen("password", password, 8),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
//	if failure, failed := validator.First(rules...); failed {
//	    render(failure.Message)
//	}
//
// Lengths are measured in Unicode code points, not bytes.
//
// # Error Handling
//
// ValidationErrors implements error, so a failed validation can travel through
// ordinary error returns and be recovered with ExtractValidationErrors or
// errors.As.
//
// # Concurrency
//
// The package keeps no mutable state; rules may be built and evaluated from
// any goroutine.
package validator
