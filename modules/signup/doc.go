// Package signup exposes the registration form core over HTTP.
//
// Routes (relative to where the service is mounted):
//
//	GET  /locations/countries
//	GET  /locations/countries/{country}/states
//	GET  /locations/countries/{country}/states/{state}/cities
//	GET  /locations/countries/{country}/phone
//	POST /validate/{field}
//	POST /validate
//	POST /password/strength
//	POST /register
//	GET  /translations/{lang}
//
// Every response uses the handler.JSONResponse envelope. Validation messages
// are translated with pkg/i18n from the locale negotiated by i18n.Middleware;
// the English rule-table message is used when a translation is missing.
//
// # Usage
//
//	translator, err := signup.NewTranslator(ctx)
//	if err != nil {
//		return err
//	}
//	v := registration.New(registration.WithCatalog(catalog))
//	svc := signup.NewService(v, registration.NewSubmitter(v), translator,
//		signup.WithLogger(log),
//	)
//
//	r := signup.Router(signup.RouterOptions{
//		Signup:      svc,
//		Middlewares: []func(http.Handler) http.Handler{requestid.Middleware, i18n.Middleware(translator)},
//	})
//
// # Error Handling
//
// Malformed bodies are rendered by the configured handler.ErrorHandler
// (400, 413 or 415). Unknown countries, states and fields are 404. A record
// that fails validation on POST /register is 422 with per-field messages in
// error.details; a submission that could not be stored is 500 with the
// retry message.
package signup
