package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

// NewErrorHandler returns an ErrorHandler that logs the error (warn for 4xx,
// error for 5xx) and renders it with JSONError. The request id, when set, is
// added to the response meta.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.HTTPRequest(r.Method, r.URL.Path, status),
			logger.Component("error_handler"),
		)

		var opts []JSONOption
		if id := requestid.FromContext(r.Context()); id != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"requestId": id}))
		}
		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

// ErrorHandlerFor adapts an ErrorHandler[Context] to a request type so it
// can be passed to WithErrorHandler without spelling out both type
// parameters at every call site.
func ErrorHandlerFor[R any](h ErrorHandler[Context]) WrapOption[Context, R] {
	return WithErrorHandler[Context, R](h)
}
