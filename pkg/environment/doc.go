// Package environment names the deployment environments the registration
// service runs in and carries the active one through context.Context.
//
// Parse maps the APP_ENV value (including the short aliases "dev", "stage"
// and "prod") onto one of Development, Staging or Production. Middleware
// attaches the environment to every request context, FromContext and the
// Is* predicates read it back, and LoggerExtractor exposes it to
// pkg/logger as an "env" attribute.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Missing values resolve to the zero value; nothing in this package returns
// an error.
package environment
