// Package binder decodes HTTP requests into typed request structs for
// handler.Wrap.
//
// JSON reads an application/json body with a size limit and rejects unknown
// fields and trailing data. Path fills `path:"..."` fields from router URL
// parameters, typically chi.URLParam. Binders run in the order given to
// handler.WithBinders.
//
// # Error Handling
//
// Every failure wraps one of the sentinel errors in errors.go
// (ErrUnsupportedMediaType, ErrMissingContentType, ErrFailedToParseJSON,
// ErrRequestTooLarge, ErrFailedToParsePath), so callers can map them to
// HTTP status codes with errors.Is.
package binder
