// Package handler provides type-safe HTTP handlers for the registration API.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the binders from pkg/binder, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type StrengthRequest struct {
//		Password string `json:"password"`
//	}
//
//	func strength(ctx handler.Context, req StrengthRequest) handler.Response {
//		return handler.JSON(map[string]any{"strength": validator.StrengthOf(req.Password)})
//	}
//
//	r.Post("/password/strength", handler.Wrap(strength,
//		handler.WithBinders[handler.Context, StrengthRequest](binder.JSON()),
//	))
//
// Every JSON response uses the JSONResponse envelope
// {"data": ..., "meta": ..., "error": {"code", "message", "details"}}.
//
// # Error Handling
//
// Binding and rendering errors go to the configured ErrorHandler.
// NewErrorHandler logs them and renders JSONError, which classifies errors
// with StatusOf: HTTPError keeps its code, validator.ValidationErrors become
// 422 with per-field details, binder errors become 400, 413 or 415, and
// anything else is a 500 whose text is not sent to the client.
//
// Decorators wrap HandlerFuncs for cross-cutting concerns; the first one
// given to WithDecorators runs outermost.
package handler
