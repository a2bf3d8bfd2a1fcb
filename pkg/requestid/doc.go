// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed "X-Request-ID" header sent by the client
// or generates a new UUID, stores the id in the request context and echoes it
// in the response header. FromContext reads it back; LoggerExtractor adds it
// to every log record written through pkg/logger.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Malformed ids (empty, longer than 128 bytes, or containing characters other
// than letters, digits, '-' and '_') are replaced silently.
package requestid
