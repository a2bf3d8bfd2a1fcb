// Package sanitizer provides small, stateless helpers for cleaning raw form
// input before it is validated: trimming, case folding, digit extraction for
// phone numbers and email domain extraction.
//
// None of the helpers returns an error; they always fall back to a safe result
// (usually an empty string) when the input has no usable content. Apply chains
// several helpers into one pipeline:
//
//	domain := sanitizer.Apply(raw, sanitizer.ExtractEmailDomain, sanitizer.Trim)
//
// The package depends only on the standard library and is safe for concurrent
// use.
package sanitizer
