package signup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the application router.
type RouterOptions struct {
	// Middlewares run for every request, in order.
	Middlewares []func(http.Handler) http.Handler
	// Signup is mounted at the root. Required.
	Signup Mountable
	// Prefix mounts Signup below a path such as "/api".
	Prefix string
}

// Router builds the top-level router. Unknown routes and methods get JSON
// errors instead of chi's plain-text defaults.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "/"
	}
	r.Mount(prefix, opts.Signup.Handle())

	return r
}
